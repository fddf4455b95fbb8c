// Package asset loads the optional sprite art. Everything here is best
// effort: a missing or unreadable file leaves the matching field nil and
// the renderer falls back to procedural shapes.
package asset

import (
	"image"
	"image/draw"
)

// SliceSheet cuts a sprite sheet into tileSize×tileSize frames, row-major.
// Tiles that are fully transparent are dropped, as are partial tiles at the
// sheet edges.
func SliceSheet(sheet image.Image, tileSize int) []image.Image {
	bounds := sheet.Bounds()
	cols := bounds.Dx() / tileSize
	rows := bounds.Dy() / tileSize
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	var frames []image.Image
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			rect := image.Rect(
				bounds.Min.X+col*tileSize,
				bounds.Min.Y+row*tileSize,
				bounds.Min.X+(col+1)*tileSize,
				bounds.Min.Y+(row+1)*tileSize,
			)
			if rect.Max.X > bounds.Max.X || rect.Max.Y > bounds.Max.Y {
				continue
			}
			frame := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
			draw.Draw(frame, frame.Bounds(), sheet, rect.Min, draw.Src)
			if frameEmpty(frame) {
				continue
			}
			frames = append(frames, frame)
		}
	}
	return frames
}

// frameEmpty reports whether every pixel is fully transparent.
func frameEmpty(frame *image.RGBA) bool {
	for i := 3; i < len(frame.Pix); i += 4 {
		if frame.Pix[i] != 0 {
			return false
		}
	}
	return true
}
