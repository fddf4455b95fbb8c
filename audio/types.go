// Package audio synthesizes and plays the game's sound effects with beep.
// No sample assets are shipped; every sound is generated from oscillators.
package audio

// SoundType identifies a synthesized effect.
type SoundType int

const (
	// SoundPickup is the bell played on an item pickup.
	SoundPickup SoundType = iota

	// SoundCombo is the blip layered on pickups that extend a combo.
	SoundCombo

	// SoundHit is the thud played when a hazard lands a hit.
	SoundHit

	// SoundGameOver is the two-note descent at the end of a run.
	SoundGameOver

	soundTypeCount
)
