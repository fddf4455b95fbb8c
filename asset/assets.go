package asset

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/mouse-dash/constants"
)

// spriteDirs are the directories searched for art, in order.
var spriteDirs = []string{"sprite_mouse", "sprites"}

// Assets holds the optional pre-rendered sprites. Any field may be nil or
// empty; the game must function with zero provided assets.
type Assets struct {
	Cheese      *ebiten.Image
	MouseFrames []*ebiten.Image
}

// Load scans the sprite directories under baseDir. Failures of any kind
// leave the corresponding asset absent.
func Load(baseDir string) *Assets {
	a := &Assets{}

	for _, dir := range spriteDirs {
		if img := tryLoadImage(filepath.Join(baseDir, dir, "cheese.png")); img != nil {
			a.Cheese = ebiten.NewImageFromImage(img)
			break
		}
	}

	for _, dir := range spriteDirs {
		frames := loadMouseFrames(filepath.Join(baseDir, dir))
		if len(frames) > 0 {
			a.MouseFrames = frames
			break
		}
	}

	return a
}

// PlayerRadius returns the player collision radius implied by the loaded
// frames, or the procedural fallback.
func (a *Assets) PlayerRadius() float64 {
	if len(a.MouseFrames) == 0 {
		return constants.PlayerFallbackRadius
	}
	return float64(a.MouseFrames[0].Bounds().Dx()) * constants.PlayerSpriteScale / 2
}

// ItemRadius returns the item collision radius implied by the cheese
// sprite, or the procedural fallback.
func (a *Assets) ItemRadius() float64 {
	if a.Cheese == nil {
		return constants.ItemFallbackRadius
	}
	return float64(a.Cheese.Bounds().Dx()) * constants.ItemSpriteScale / 2
}

func tryLoadImage(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	return img
}

// loadMouseFrames finds the first usable sheet in dir and slices it.
// Files named like the mouse sheet sort first; cheese.png is skipped.
func loadMouseFrames(dir string) []*ebiten.Image {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var candidates []string
	for _, e := range entries {
		name := strings.ToLower(e.Name())
		if e.IsDir() || !strings.HasSuffix(name, ".png") || name == "cheese.png" {
			continue
		}
		candidates = append(candidates, e.Name())
	}
	sort.Slice(candidates, func(i, j int) bool {
		iMouse := strings.Contains(strings.ToLower(candidates[i]), "mouse")
		jMouse := strings.Contains(strings.ToLower(candidates[j]), "mouse")
		if iMouse != jMouse {
			return iMouse
		}
		return strings.ToLower(candidates[i]) < strings.ToLower(candidates[j])
	})

	for _, name := range candidates {
		sheet := tryLoadImage(filepath.Join(dir, name))
		if sheet == nil {
			continue
		}
		sliced := SliceSheet(sheet, constants.SpriteTile)
		if len(sliced) == 0 {
			continue
		}
		frames := make([]*ebiten.Image, len(sliced))
		for i, f := range sliced {
			frames[i] = ebiten.NewImageFromImage(f)
		}
		return frames
	}
	return nil
}
