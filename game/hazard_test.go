package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

func TestHazardReflectsOffRightWall(t *testing.T) {
	h := NewHazard(vmath.Vec2{X: constants.ScreenWidth - constants.HazardSize - 1, Y: 300}, 150, 150, testRNG())
	h.Vel = vmath.Vec2{X: 200, Y: 50}
	speed := h.Vel.Length()

	h.Update(dt)

	assert.Less(t, h.Vel.X, 0.0, "perpendicular component flipped")
	assert.Equal(t, 50.0, h.Vel.Y, "parallel component unchanged")
	assert.InDelta(t, speed, h.Vel.Length(), 1e-9, "speed magnitude preserved")
	assert.LessOrEqual(t, h.Pos.X, constants.ScreenWidth-h.Size, "position re-clamped into bounds")
}

func TestHazardReflectsOffTopWithHUDMargin(t *testing.T) {
	h := NewHazard(vmath.Vec2{X: 450, Y: constants.HazardSize + constants.HUDMargin + 1}, 150, 150, testRNG())
	h.Vel = vmath.Vec2{X: 30, Y: -200}

	h.Update(dt)

	assert.Greater(t, h.Vel.Y, 0.0)
	assert.GreaterOrEqual(t, h.Pos.Y, h.Size+constants.HUDMargin)
}

func TestHazardCornerFlipsBothAxesInOneStep(t *testing.T) {
	// Deep in the bottom-right corner, moving outward on both axes: the
	// per-axis checks run independently in the same step.
	h := NewHazard(vmath.Vec2{
		X: constants.ScreenWidth - constants.HazardSize - 1,
		Y: constants.ScreenHeight - constants.HazardSize - 1,
	}, 150, 150, testRNG())
	h.Vel = vmath.Vec2{X: 180, Y: 180}
	speed := h.Vel.Length()

	h.Update(dt)

	assert.Less(t, h.Vel.X, 0.0)
	assert.Less(t, h.Vel.Y, 0.0)
	assert.InDelta(t, speed, h.Vel.Length(), 1e-9)
}

func TestHazardStaysInBoundsLongTerm(t *testing.T) {
	rng := testRNG()
	h := NewHazard(vmath.Vec2{X: 450, Y: 300}, 190, 260, rng)
	for i := 0; i < 120*constants.TicksPerSecond; i++ {
		h.Update(dt)
		assert.GreaterOrEqual(t, h.Pos.X, h.Size)
		assert.LessOrEqual(t, h.Pos.X, constants.ScreenWidth-h.Size)
		assert.GreaterOrEqual(t, h.Pos.Y, h.Size+constants.HUDMargin)
		assert.LessOrEqual(t, h.Pos.Y, constants.ScreenHeight-h.Size)
	}
}

func TestNudgeAwayFromCoincidentPoint(t *testing.T) {
	h := NewHazard(vmath.Vec2{X: 450, Y: 300}, 150, 150, testRNG())
	point := h.Pos

	h.NudgeAwayFrom(point, testRNG())

	d := h.Pos.Distance(point)
	if math.Abs(d-constants.HazardNudgeDistance) > 1e-9 {
		t.Errorf("nudge moved %v, want %v", d, constants.HazardNudgeDistance)
	}
}

func TestRandomVelocityWithinSpeedRange(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 200; i++ {
		v := randomVelocity(120, 170, rng)
		speed := v.Length()
		assert.GreaterOrEqual(t, speed, 120.0-1e-9)
		assert.LessOrEqual(t, speed, 170.0+1e-9)
	}
}
