package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/mouse-dash/constants"
)

// BuildBackground renders the static playfield backdrop once: a vertical
// top-to-bottom gradient with a faint checkerboard floor pattern below the
// HUD strip.
func BuildBackground() *ebiten.Image {
	bg := ebiten.NewImage(constants.ScreenWidth, constants.ScreenHeight)

	top := constants.ColorBackgroundTop
	bottom := constants.ColorBackgroundBottom
	for y := 0; y < constants.ScreenHeight; y++ {
		blend := float64(y) / constants.ScreenHeight
		clr := color.RGBA{
			R: uint8(float64(top.R)*(1-blend) + float64(bottom.R)*blend),
			G: uint8(float64(top.G)*(1-blend) + float64(bottom.G)*blend),
			B: uint8(float64(top.B)*(1-blend) + float64(bottom.B)*blend),
			A: 255,
		}
		FillRect(bg, 0, float64(y), constants.ScreenWidth, 1, clr)
	}

	const tile = 60
	shade := color.NRGBA{255, 255, 255, 12}
	for x := 0; x < constants.ScreenWidth; x += tile {
		for y := constants.HUDMargin; y < constants.ScreenHeight; y += tile {
			if (x/tile+y/tile)%2 == 0 {
				FillRect(bg, float64(x), float64(y), tile, tile, shade)
			}
		}
	}
	return bg
}
