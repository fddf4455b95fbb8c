package game

import (
	"math/rand"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// Hazard is a roaming cat. It bounces elastically off the playfield walls
// and costs the player a life on contact.
type Hazard struct {
	Pos  vmath.Vec2
	Size float64
	Vel  vmath.Vec2
}

// NewHazard creates a hazard at pos with a random direction and a speed
// drawn uniformly from [speedMin, speedMax].
func NewHazard(pos vmath.Vec2, speedMin, speedMax float64, rng *rand.Rand) *Hazard {
	return &Hazard{
		Pos:  pos,
		Size: constants.HazardSize,
		Vel:  randomVelocity(speedMin, speedMax, rng),
	}
}

func randomVelocity(speedMin, speedMax float64, rng *rand.Rand) vmath.Vec2 {
	for {
		v := vmath.Vec2{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		}
		// Reject near-zero samples so normalization stays stable.
		if v.LengthSq() > 0.1 {
			speed := speedMin + rng.Float64()*(speedMax-speedMin)
			return v.Normalize().Scale(speed)
		}
	}
}

// Update integrates position and reflects off the playfield walls. Each axis
// is checked independently in the same step, so a corner hit can flip both
// components at once. Speed magnitude is preserved, only signs flip.
func (h *Hazard) Update(dt float64) {
	h.Pos = h.Pos.Add(h.Vel.Scale(dt))
	bounced := false
	if h.Pos.X < h.Size || h.Pos.X > constants.ScreenWidth-h.Size {
		h.Vel = h.Vel.ReflectAxisX()
		bounced = true
	}
	if h.Pos.Y < h.Size+constants.HUDMargin || h.Pos.Y > constants.ScreenHeight-h.Size {
		h.Vel = h.Vel.ReflectAxisY()
		bounced = true
	}
	if bounced {
		h.Pos = h.Pos.Clamp(
			h.Size, constants.ScreenWidth-h.Size,
			h.Size+constants.HUDMargin, constants.ScreenHeight-h.Size,
		)
	}
}

// NudgeAwayFrom pushes the hazard a fixed distance along the separation
// vector from point, preventing an immediate re-trigger against the player.
func (h *Hazard) NudgeAwayFrom(point vmath.Vec2, rng *rand.Rand) {
	dir := h.Pos.Sub(point)
	if dir.IsZero() {
		dir = vmath.Vec2{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		}
	}
	h.Pos = h.Pos.Add(dir.Normalize().Scale(constants.HazardNudgeDistance))
}
