package game

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/mouse-dash/vmath"
)

// Item is a collectible piece of cheese.
type Item struct {
	Pos    vmath.Vec2
	Radius float64

	// Wobble is a per-item phase offset so bobbing animations desynchronize.
	Wobble float64
}

// NewItem creates an item at pos with a random bobbing phase.
func NewItem(pos vmath.Vec2, radius float64, rng *rand.Rand) *Item {
	return &Item{
		Pos:    pos,
		Radius: radius,
		Wobble: rng.Float64() * 2 * math.Pi,
	}
}
