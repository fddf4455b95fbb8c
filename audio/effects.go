package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so zero volume becomes a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreatePickupSound generates a short two-harmonic ding for item pickups
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	dur := 120 * time.Millisecond

	// Fundamental (A5)
	fund := NewOscillator(880.0, dur, WaveSine, rate)
	fundShaped := NewEnvelope(fund, dur, 5*time.Millisecond, 90*time.Millisecond, rate)

	// Harmonic (octave up)
	over := NewOscillator(1760.0, dur, WaveSine, rate)
	overShaped := NewEnvelope(over, dur, 5*time.Millisecond, 60*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	vol := cfg.EffectVolumes[SoundPickup] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateComboSound generates a rising square blip, pitched by combo level.
// The pitch climbs a semitone-ish step per level and plateaus at the cap.
func CreateComboSound(cfg *AudioConfig, combo int) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	dur := 80 * time.Millisecond

	if combo > 8 {
		combo = 8
	}
	freq := 520.0 * math.Pow(1.06, float64(combo))

	osc := NewOscillator(freq, dur, WaveSquare, rate)
	shaped := NewEnvelope(osc, dur, 3*time.Millisecond, 50*time.Millisecond, rate)

	vol := cfg.EffectVolumes[SoundCombo] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateHitSound generates a low saw thud for hazard hits
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	dur := 220 * time.Millisecond

	osc := NewOscillator(110.0, dur, WaveSaw, rate)
	shaped := NewEnvelope(osc, dur, 2*time.Millisecond, 160*time.Millisecond, rate)

	vol := cfg.EffectVolumes[SoundHit] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateGameOverSound generates a two-note falling sequence
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(SampleRate)

	n1 := NewOscillator(392.0, 180*time.Millisecond, WaveSquare, rate) // G4
	n1Shaped := NewEnvelope(n1, 180*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, rate)

	n2 := NewOscillator(261.63, 320*time.Millisecond, WaveSquare, rate) // C4
	n2Shaped := NewEnvelope(n2, 320*time.Millisecond, 5*time.Millisecond, 220*time.Millisecond, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.EffectVolumes[SoundGameOver] * cfg.MasterVolume
	return newVolume(sequence, vol)
}
