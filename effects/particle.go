// Package effects manages the transient visuals: particles, floating text,
// and camera shake. Effects update every frame in every phase so death and
// pause animations finish playing out.
package effects

import (
	"image/color"

	"github.com/lixenwraith/mouse-dash/vmath"
)

// Particle is a short-lived colored dot moving on a straight line.
type Particle struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Life  float64 // seconds remaining
	Total float64 // starting lifetime, drives the alpha fade
	Color color.RGBA
	Size  float64
}

// Alpha returns the render opacity in [0, 1] from the remaining lifetime.
func (p *Particle) Alpha() float64 {
	if p.Life <= 0 {
		return 0
	}
	a := p.Life / p.Total
	if a > 1 {
		a = 1
	}
	return a
}
