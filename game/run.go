// Package game holds the Mouse Dash simulation: run state, entities, the
// per-step update, collision and combo resolution, and spawn placement.
// It is pure logic with no rendering dependencies and is deterministic
// under an injected random source.
package game

import (
	"math/rand"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// EventKind discriminates simulation events surfaced to the orchestrator.
type EventKind uint8

const (
	// EventPickup fires once per collected item.
	EventPickup EventKind = iota

	// EventHit fires when a hazard costs the player a life.
	EventHit

	// EventGameOver fires exactly once when time or lives run out.
	EventGameOver
)

// Event is a notable simulation occurrence from a single step. The
// orchestrator turns these into effects, sounds, and persistence.
type Event struct {
	Kind   EventKind
	Pos    vmath.Vec2
	Points int // pickup score including combo bonus
	Combo  int // combo count after this pickup
}

// Run is the complete state of one game run. The Run owns all entity
// collections; entities hold no references back.
type Run struct {
	Score      int
	Lives      int
	TimeLeft   float64
	Combo      int
	ComboTimer float64

	// Elapsed drives bobbing and other time-based animation.
	Elapsed float64

	DifficultyIndex int
	Over            bool

	Player  *Player
	Items   []*Item
	Hazards []*Hazard

	itemRadius float64
	rng        *rand.Rand
}

// NewRun creates a fresh run for the given difficulty. playerRadius and
// itemRadius come from the loaded sprites, or the fallback constants when
// no assets are present.
func NewRun(difficultyIndex int, playerRadius, itemRadius float64, rng *rand.Rand) *Run {
	diff := constants.Difficulties[difficultyIndex]
	r := &Run{
		Lives:           diff.Lives,
		TimeLeft:        diff.Time,
		DifficultyIndex: difficultyIndex,
		Player: NewPlayer(vmath.Vec2{
			X: constants.ScreenWidth / 2,
			Y: constants.ScreenHeight / 2,
		}, playerRadius),
		itemRadius: itemRadius,
		rng:        rng,
	}
	r.spawnHazards(diff.Hazards, diff.HazardSpeedMin, diff.HazardSpeedMax)
	r.spawnItems(diff.Items)
	return r
}

// Difficulty returns the preset this run was started with.
func (r *Run) Difficulty() constants.Difficulty {
	return constants.Difficulties[r.DifficultyIndex]
}
