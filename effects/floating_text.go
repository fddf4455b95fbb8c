package effects

import (
	"image/color"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// FloatingText is a score or combo readout that drifts upward and fades.
type FloatingText struct {
	Pos   vmath.Vec2
	Text  string
	Color color.RGBA
	Life  float64 // seconds remaining, also the fade driver
}

// Alpha returns the render opacity in [0, 1] from the remaining lifetime.
func (f *FloatingText) Alpha() float64 {
	a := f.Life / constants.FloaterLifetime
	if a < 0 {
		return 0
	}
	if a > 1 {
		a = 1
	}
	return a
}
