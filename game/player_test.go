package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

func TestPlayerStaysInBounds(t *testing.T) {
	p := NewPlayer(vmath.Vec2{X: 10, Y: 10}, constants.PlayerFallbackRadius)

	directions := []vmath.Vec2{
		{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1},
		{X: -1, Y: -1}, {X: 1, Y: 1},
	}
	for _, dir := range directions {
		for i := 0; i < 60*constants.TicksPerSecond; i++ {
			p.Update(dir, dt)
		}
		assert.GreaterOrEqual(t, p.Pos.X, p.Radius)
		assert.LessOrEqual(t, p.Pos.X, constants.ScreenWidth-p.Radius)
		assert.GreaterOrEqual(t, p.Pos.Y, p.Radius+constants.HUDMargin)
		assert.LessOrEqual(t, p.Pos.Y, constants.ScreenHeight-p.Radius)
	}
}

func TestPlayerDiagonalSpeedEqualsAxial(t *testing.T) {
	axial := NewPlayer(vmath.Vec2{X: 450, Y: 300}, constants.PlayerFallbackRadius)
	diag := NewPlayer(vmath.Vec2{X: 450, Y: 300}, constants.PlayerFallbackRadius)

	axial.Update(vmath.Vec2{X: 1, Y: 0}, dt)
	diag.Update(vmath.Vec2{X: 1, Y: 1}, dt)

	axialDist := axial.Pos.Distance(vmath.Vec2{X: 450, Y: 300})
	diagDist := diag.Pos.Distance(vmath.Vec2{X: 450, Y: 300})
	assert.InDelta(t, axialDist, diagDist, 1e-9)
}

func TestPlayerTrailBounded(t *testing.T) {
	p := NewPlayer(vmath.Vec2{X: 450, Y: 300}, constants.PlayerFallbackRadius)
	for i := 0; i < constants.TrailLength*3; i++ {
		p.Update(vmath.Vec2{X: 1, Y: 0}, dt)
	}
	assert.Equal(t, constants.TrailLength, len(p.Trail))
	// Most recent position is last.
	assert.Equal(t, p.Pos, p.Trail[len(p.Trail)-1])
}

func TestPlayerCooldownFloorsAtZero(t *testing.T) {
	p := NewPlayer(vmath.Vec2{X: 450, Y: 300}, constants.PlayerFallbackRadius)
	p.MarkHit()
	assert.False(t, p.CanTakeHit())

	steps := int(constants.InvulnTime/dt) + 2
	for i := 0; i < steps; i++ {
		p.Update(vmath.Vec2{}, dt)
	}
	assert.True(t, p.CanTakeHit())
	assert.Equal(t, 0.0, p.HitCooldown)
}

func TestPlayerFacingFollowsLastMove(t *testing.T) {
	p := NewPlayer(vmath.Vec2{X: 450, Y: 300}, constants.PlayerFallbackRadius)
	p.Update(vmath.Vec2{X: -1, Y: 0}, dt)
	assert.Less(t, p.LastMove.X, 0.0)

	// Idle input keeps the previous facing.
	p.Update(vmath.Vec2{}, dt)
	assert.Less(t, p.LastMove.X, 0.0)
}

func TestPlayerAnimationAdvancesOnlyWhileMoving(t *testing.T) {
	p := NewPlayer(vmath.Vec2{X: 450, Y: 300}, constants.PlayerFallbackRadius)
	p.FrameCount = 4

	frameTime := float64(constants.AnimFrameTime)
	steps := int(frameTime/dt) + 1
	for i := 0; i < steps; i++ {
		p.Update(vmath.Vec2{X: 1, Y: 0}, dt)
	}
	assert.Equal(t, 1, p.AnimIndex)

	p.Update(vmath.Vec2{}, dt)
	assert.Equal(t, 0, p.AnimIndex, "idle resets the animation")
}
