package effects

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// System owns all transient visuals for one game instance.
type System struct {
	Particles []Particle
	Floaters  []FloatingText

	shakeTimer float64
	rng        *rand.Rand
}

// NewSystem creates an effects system using the given random source.
func NewSystem(rng *rand.Rand) *System {
	return &System{
		Particles: make([]Particle, 0, 256),
		Floaters:  make([]FloatingText, 0, 16),
		rng:       rng,
	}
}

// Update integrates and prunes all effects. Called once per frame in every
// game phase.
func (s *System) Update(dt float64) {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]

	alive = 0
	for i := range s.Floaters {
		f := &s.Floaters[i]
		f.Life -= dt
		if f.Life <= 0 {
			continue
		}
		f.Pos.Y -= constants.FloaterRiseSpeed * dt
		s.Floaters[alive] = s.Floaters[i]
		alive++
	}
	s.Floaters = s.Floaters[:alive]

	if s.shakeTimer > 0 {
		s.shakeTimer -= dt
		if s.shakeTimer < 0 {
			s.shakeTimer = 0
		}
	}
}

// EmitCollect spawns the pickup burst and score floater, plus a combo
// floater when a chain is running.
func (s *System) EmitCollect(pos vmath.Vec2, points, combo int) {
	s.burst(pos, constants.CollectParticleCount, 80, 160, 0.4, constants.ColorGold, 3)
	s.Floaters = append(s.Floaters, FloatingText{
		Pos:   pos,
		Text:  fmt.Sprintf("+%d", points),
		Color: constants.ColorGold,
		Life:  constants.FloaterLifetime,
	})
	if combo >= 2 {
		s.Floaters = append(s.Floaters, FloatingText{
			Pos:   pos.Add(vmath.Vec2{Y: -18}),
			Text:  fmt.Sprintf("Combo x%d", combo),
			Color: constants.ColorItem,
			Life:  constants.FloaterLifetime,
		})
	}
}

// EmitHit spawns the hazard-hit burst and starts the camera shake.
func (s *System) EmitHit(pos vmath.Vec2) {
	s.burst(pos, constants.HitParticleCount, 120, 220, 0.5, constants.ColorHazard, 4)
	s.shakeTimer = constants.ShakeDuration
}

// burst emits count particles radially with speeds in [speedMin, speedMax].
func (s *System) burst(pos vmath.Vec2, count int, speedMin, speedMax, lifetime float64, clr color.RGBA, size float64) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := speedMin + s.rng.Float64()*(speedMax-speedMin)
		s.Particles = append(s.Particles, Particle{
			Pos:   pos,
			Vel:   vmath.FromAngle(angle).Scale(speed),
			Life:  lifetime,
			Total: lifetime,
			Color: clr,
			Size:  size,
		})
	}
}

// ShakeOffset returns this frame's camera shake offset: a fresh random
// vector scaled by the remaining shake fraction. Zero when no shake runs.
func (s *System) ShakeOffset() vmath.Vec2 {
	if s.shakeTimer <= 0 {
		return vmath.Vec2{}
	}
	power := s.shakeTimer / constants.ShakeDuration
	return vmath.Vec2{
		X: (s.rng.Float64()*2 - 1) * constants.ShakeStrength * power,
		Y: (s.rng.Float64()*2 - 1) * constants.ShakeStrength * power,
	}
}

// Shaking reports whether a camera shake is in progress.
func (s *System) Shaking() bool {
	return s.shakeTimer > 0
}

// Clear drops all live effects. Used on full run resets.
func (s *System) Clear() {
	s.Particles = s.Particles[:0]
	s.Floaters = s.Floaters[:0]
	s.shakeTimer = 0
}
