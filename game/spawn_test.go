package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

func TestSpawnItemsRespectMargins(t *testing.T) {
	r := newTestRun(2) // Hard: the most crowded preset
	for _, item := range r.Items {
		assert.GreaterOrEqual(t, item.Pos.X, float64(constants.ItemSpawnMargin))
		assert.LessOrEqual(t, item.Pos.X, float64(constants.ScreenWidth-constants.ItemSpawnMargin))
		assert.GreaterOrEqual(t, item.Pos.Y, float64(constants.ItemSpawnTopMargin))
		assert.LessOrEqual(t, item.Pos.Y, float64(constants.ScreenHeight-constants.ItemSpawnMargin))
	}
}

func TestSpawnItemsRespectDistances(t *testing.T) {
	r := newTestRun(1)
	for i, item := range r.Items {
		assert.GreaterOrEqual(t, item.Pos.Distance(r.Player.Pos), constants.ItemMinPlayerDistance)
		for j, other := range r.Items {
			if i == j {
				continue
			}
			assert.GreaterOrEqual(t, item.Pos.Distance(other.Pos),
				item.Radius+other.Radius+constants.ItemSpacingPad)
		}
		for _, h := range r.Hazards {
			assert.GreaterOrEqual(t, item.Pos.Distance(h.Pos),
				h.Size+item.Radius+constants.ItemHazardPad)
		}
	}
}

func TestSpawnHazardsRespectSpacing(t *testing.T) {
	r := newTestRun(2)
	for i, a := range r.Hazards {
		for j, b := range r.Hazards {
			if i == j {
				continue
			}
			assert.GreaterOrEqual(t, a.Pos.Distance(b.Pos), constants.HazardMinSpacing)
		}
	}
}

func TestSpawnDegradesUnderImpossibleConstraints(t *testing.T) {
	r := newTestRun(0)
	r.Items = nil

	// Fill the field with hazards so almost no item placement can clear the
	// hazard padding. The spawner must settle for a partial set, not hang.
	r.Hazards = nil
	for x := 0.0; x < constants.ScreenWidth; x += 40 {
		for y := float64(constants.HUDMargin); y < constants.ScreenHeight; y += 40 {
			h := NewHazard(vmath.Vec2{X: x, Y: y}, 150, 150, r.rng)
			h.Vel = vmath.Vec2{}
			r.Hazards = append(r.Hazards, h)
		}
	}

	r.spawnItems(8)
	assert.Less(t, len(r.Items), 8, "budget exhaustion accepts a partial set")
}

func TestItemWobblePhaseInRange(t *testing.T) {
	r := newTestRun(0)
	for _, item := range r.Items {
		assert.GreaterOrEqual(t, item.Wobble, 0.0)
		assert.Less(t, item.Wobble, 6.2831854)
	}
}
