package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// Audio Timing
const (
	// SampleRate is the synthesis and playback sample rate
	SampleRate = 44100

	// SpeakerBufferLength is the speaker buffer duration; short keeps
	// effects in sync with their on-screen events
	SpeakerBufferLength = 50 * time.Millisecond
)

// AudioConfig controls synthesis volumes and the enable switch.
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock configuration.
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.7,
		EffectVolumes: map[SoundType]float64{
			SoundPickup:   0.8,
			SoundCombo:    0.6,
			SoundHit:      0.9,
			SoundGameOver: 0.8,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables.
// Unparsable values keep their defaults.
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("MOUSE_DASH_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100
	if volume := os.Getenv("MOUSE_DASH_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Per-effect volumes from JSON, e.g. {"pickup":0.5,"hit":1.0}
	if effectVols := os.Getenv("MOUSE_DASH_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if v, ok := volumes["pickup"]; ok {
				cfg.EffectVolumes[SoundPickup] = v
			}
			if v, ok := volumes["combo"]; ok {
				cfg.EffectVolumes[SoundCombo] = v
			}
			if v, ok := volumes["hit"]; ok {
				cfg.EffectVolumes[SoundHit] = v
			}
			if v, ok := volumes["gameover"]; ok {
				cfg.EffectVolumes[SoundGameOver] = v
			}
		}
	}

	return cfg
}
