package game

import (
	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// spawnItems places up to count items by rejection sampling. Candidates too
// close to the player, another item, or a hazard are resampled within a
// bounded attempt budget; when the budget runs out the partial set stands.
func (r *Run) spawnItems(count int) {
	attempts := 0
	for len(r.Items) < count && attempts < count*constants.ItemSpawnAttemptsPerCount {
		attempts++
		pos := vmath.Vec2{
			X: float64(constants.ItemSpawnMargin + r.rng.Intn(constants.ScreenWidth-2*constants.ItemSpawnMargin)),
			Y: float64(constants.ItemSpawnTopMargin + r.rng.Intn(constants.ScreenHeight-constants.ItemSpawnTopMargin-constants.ItemSpawnMargin)),
		}
		if pos.Distance(r.Player.Pos) < constants.ItemMinPlayerDistance {
			continue
		}
		if r.tooCloseToItem(pos) || r.tooCloseToHazard(pos) {
			continue
		}
		r.Items = append(r.Items, NewItem(pos, r.itemRadius, r.rng))
	}
}

func (r *Run) tooCloseToItem(pos vmath.Vec2) bool {
	for _, item := range r.Items {
		if pos.Distance(item.Pos) < item.Radius+r.itemRadius+constants.ItemSpacingPad {
			return true
		}
	}
	return false
}

func (r *Run) tooCloseToHazard(pos vmath.Vec2) bool {
	for _, h := range r.Hazards {
		if pos.Distance(h.Pos) < h.Size+r.itemRadius+constants.ItemHazardPad {
			return true
		}
	}
	return false
}

// spawnHazards places up to count hazards away from the player and from each
// other, with the same bounded-attempt degradation as spawnItems.
func (r *Run) spawnHazards(count int, speedMin, speedMax float64) {
	attempts := 0
	for len(r.Hazards) < count && attempts < count*constants.HazardSpawnAttemptsPerCount {
		attempts++
		pos := vmath.Vec2{
			X: float64(constants.HazardSpawnMarginX + r.rng.Intn(constants.ScreenWidth-2*constants.HazardSpawnMarginX)),
			Y: float64(constants.HazardSpawnMarginTop + r.rng.Intn(constants.ScreenHeight-constants.HazardSpawnMarginTop-constants.HazardSpawnMarginBottom)),
		}
		if pos.Distance(r.Player.Pos) < constants.HazardMinPlayerDistance {
			continue
		}
		if r.hazardTooClose(pos) {
			continue
		}
		r.Hazards = append(r.Hazards, NewHazard(pos, speedMin, speedMax, r.rng))
	}
}

func (r *Run) hazardTooClose(pos vmath.Vec2) bool {
	for _, h := range r.Hazards {
		if pos.Distance(h.Pos) < constants.HazardMinSpacing {
			return true
		}
	}
	return false
}
