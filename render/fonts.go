package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/lixenwraith/mouse-dash/constants"
)

// Fonts bundles the three text sizes the HUD and menus use.
type Fonts struct {
	Small font.Face
	Big   font.Face
	Huge  font.Face
}

// LoadFonts builds the embedded Go Regular faces.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	small, err := face(constants.FontSizeSmall)
	if err != nil {
		return nil, err
	}
	big, err := face(constants.FontSizeBig)
	if err != nil {
		return nil, err
	}
	huge, err := face(constants.FontSizeHuge)
	if err != nil {
		return nil, err
	}
	return &Fonts{Small: small, Big: big, Huge: huge}, nil
}

// DrawText draws s with its top-left baseline-adjusted to (x, y).
func DrawText(dst *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(dst, s, face, int(x), int(y)-bounds.Min.Y, clr)
}

// DrawTextCentered draws s horizontally centered on cx with its top at y.
func DrawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	w := float64(bounds.Dx())
	DrawText(dst, s, face, cx-w/2, y, clr)
}

// DrawTextCenteredAlpha is DrawTextCentered with an opacity in [0, 1],
// centered on both axes at (cx, cy). Used by floating score text.
func DrawTextCenteredAlpha(dst *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.RGBA, alpha float64) {
	bounds := text.BoundString(face, s)
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	DrawText(dst, s, face, cx-w/2, cy-h/2, WithAlpha(clr, alpha))
}

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string, face font.Face) float64 {
	return float64(text.BoundString(face, s).Dx())
}
