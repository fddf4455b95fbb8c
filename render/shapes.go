// Package render wraps the low-level ebiten drawing primitives the game
// uses: filled shapes, alpha text at fixed sizes, and the static background.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the 1×1 texture source for path fills, inset from a 3×3
// image to dodge bleeding at the texel edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// FillCircle draws a filled antialiased circle.
func FillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeCircle draws a circle outline.
func StrokeCircle(dst *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// FillRect draws a filled axis-aligned rectangle.
func FillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// FillRoundedRect draws a filled rectangle with rounded corners, composed
// from a cross of rectangles and four corner circles.
func FillRoundedRect(dst *ebiten.Image, x, y, w, h, radius float64, clr color.Color) {
	if radius*2 > w {
		radius = w / 2
	}
	if radius*2 > h {
		radius = h / 2
	}
	FillRect(dst, x+radius, y, w-2*radius, h, clr)
	FillRect(dst, x, y+radius, radius, h-2*radius, clr)
	FillRect(dst, x+w-radius, y+radius, radius, h-2*radius, clr)
	FillCircle(dst, x+radius, y+radius, radius, clr)
	FillCircle(dst, x+w-radius, y+radius, radius, clr)
	FillCircle(dst, x+radius, y+h-radius, radius, clr)
	FillCircle(dst, x+w-radius, y+h-radius, radius, clr)
}

// StrokeLine draws a line segment of the given width.
func StrokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// FillTriangle draws a filled triangle through the vector path machinery.
func FillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.Color) {
	var p vector.Path
	p.MoveTo(float32(x0), float32(y0))
	p.LineTo(float32(x1), float32(y1))
	p.LineTo(float32(x2), float32(y2))
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// WithAlpha scales a color's opacity by alpha in [0, 1].
func WithAlpha(clr color.RGBA, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(alpha * float64(clr.A))}
}
