package game

import (
	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// Player is the mouse controlled by the user.
type Player struct {
	Pos         vmath.Vec2
	Radius      float64
	HitCooldown float64 // seconds of invulnerability remaining

	// Trail holds the most recent positions, oldest first, capped at
	// constants.TrailLength. Visual only.
	Trail []vmath.Vec2

	// LastMove is the last non-zero movement direction, used for facing.
	LastMove vmath.Vec2

	AnimTime   float64
	AnimIndex  int
	FrameCount int // sprite frames available, 0 when drawing procedurally
}

// NewPlayer creates a player at pos with the given collision radius.
func NewPlayer(pos vmath.Vec2, radius float64) *Player {
	return &Player{
		Pos:      pos,
		Radius:   radius,
		Trail:    make([]vmath.Vec2, 0, constants.TrailLength),
		LastMove: vmath.Vec2{X: 1, Y: 0},
	}
}

// Update advances the player by one step. move is the combined directional
// input; it is normalized here so diagonal speed equals axial speed.
func (p *Player) Update(move vmath.Vec2, dt float64) {
	if !move.IsZero() {
		move = move.Normalize()
		p.LastMove = move
	}
	p.Pos = p.Pos.Add(move.Scale(constants.PlayerSpeed * dt))
	p.Pos = p.Pos.Clamp(
		p.Radius, constants.ScreenWidth-p.Radius,
		p.Radius+constants.HUDMargin, constants.ScreenHeight-p.Radius,
	)

	if p.HitCooldown > 0 {
		p.HitCooldown -= dt
		if p.HitCooldown < 0 {
			p.HitCooldown = 0
		}
	}

	p.Trail = append(p.Trail, p.Pos)
	if len(p.Trail) > constants.TrailLength {
		p.Trail = p.Trail[1:]
	}

	if p.FrameCount > 0 {
		if !move.IsZero() {
			p.AnimTime += dt
			if p.AnimTime >= constants.AnimFrameTime {
				p.AnimTime = 0
				p.AnimIndex = (p.AnimIndex + 1) % p.FrameCount
			}
		} else {
			p.AnimTime = 0
			p.AnimIndex = 0
		}
	}
}

// CanTakeHit reports whether the player is currently vulnerable.
func (p *Player) CanTakeHit() bool {
	return p.HitCooldown <= 0
}

// MarkHit starts the invulnerability window.
func (p *Player) MarkHit() {
	p.HitCooldown = constants.InvulnTime
}
