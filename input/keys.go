package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/mouse-dash/vmath"
)

// intentKeys maps each discrete intent to its key bindings, in the order
// intents are reported when several keys land on the same frame.
var intentKeys = []struct {
	intent Intent
	keys   []ebiten.Key
}{
	{IntentQuit, []ebiten.Key{ebiten.KeyQ}},
	{IntentPauseToggle, []ebiten.Key{ebiten.KeyP}},
	{IntentRestart, []ebiten.Key{ebiten.KeyR}},
	{IntentConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
	{IntentMenu, []ebiten.Key{ebiten.KeyM}},
	{IntentDifficultyPrev, []ebiten.Key{ebiten.KeyArrowUp}},
	{IntentDifficultyNext, []ebiten.Key{ebiten.KeyArrowDown}},
	{IntentDifficulty1, []ebiten.Key{ebiten.KeyDigit1}},
	{IntentDifficulty2, []ebiten.Key{ebiten.KeyDigit2}},
	{IntentDifficulty3, []ebiten.Key{ebiten.KeyDigit3}},
}

// Intents returns the discrete intents whose keys were pressed this frame.
// Escape is context-dependent; the engine interprets it per phase.
func Intents() []Intent {
	var out []Intent
	for _, binding := range intentKeys {
		for _, key := range binding.keys {
			if inpututil.IsKeyJustPressed(key) {
				out = append(out, binding.intent)
				break
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		out = append(out, IntentEscape)
	}
	return out
}

// MoveVector reads the held movement keys (arrows and WASD) and combines
// them into a raw direction vector. Opposite keys cancel; the caller
// normalizes, so diagonals move at axial speed.
func MoveVector() vmath.Vec2 {
	var v vmath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		v.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		v.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		v.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		v.Y++
	}
	return v
}
