package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Engine plays synthesized effects through the beep speaker. When the
// speaker cannot be opened it runs in silent mode; every Play call then
// becomes a no-op rather than an error.
type Engine struct {
	config *AudioConfig

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu sync.RWMutex // protects config
}

// NewEngine creates an audio engine with the given (or env-loaded) config.
func NewEngine(cfg ...*AudioConfig) *Engine {
	config := LoadAudioConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	e := &Engine{config: config}
	e.muted.Store(!config.Enabled)
	return e
}

// Start opens the speaker. A failed open is not an error; the engine simply
// stays silent for the rest of the process.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	rate := beep.SampleRate(SampleRate)
	if err := speaker.Init(rate, rate.N(SpeakerBufferLength)); err != nil {
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	e.running.Store(true)
	return nil
}

// Stop closes the speaker.
func (e *Engine) Stop() {
	if !e.running.Load() {
		return
	}
	e.running.Store(false)
	if !e.silentMode.Load() {
		speaker.Close()
	}
}

// SetMuted toggles effect playback without closing the speaker.
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// Play queues the given effect on the speaker mixer. Safe to call from the
// frame loop; mixing happens on the speaker goroutine.
func (e *Engine) Play(st SoundType) {
	e.PlayCombo(st, 0)
}

// PlayCombo is Play with the combo level threaded through for SoundCombo.
func (e *Engine) PlayCombo(st SoundType, combo int) {
	if !e.running.Load() || e.silentMode.Load() || e.muted.Load() {
		return
	}

	e.mu.RLock()
	cfg := e.config
	e.mu.RUnlock()

	var s beep.Streamer
	switch st {
	case SoundPickup:
		s = CreatePickupSound(cfg)
	case SoundCombo:
		s = CreateComboSound(cfg, combo)
	case SoundHit:
		s = CreateHitSound(cfg)
	case SoundGameOver:
		s = CreateGameOverSound(cfg)
	}
	if s == nil {
		return
	}
	speaker.Play(s)
}
