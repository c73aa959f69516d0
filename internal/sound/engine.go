// Package sound synthesizes an optional engine hum that rises in pitch as
// the gauge counts up. It is presentation-side only: the rendering core
// never depends on it.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// DefaultSampleRate is used when the host has no preference.
const DefaultSampleRate = beep.SampleRate(44100)

const (
	idleHz = 70.0  // pitch at zero speed
	maxHz  = 220.0 // pitch at full scale
	volume = 0.15
)

// EngineTone is a beep.Streamer producing a continuous sine tone. The
// frequency is updated from the game loop once per frame while the speaker
// goroutine streams, so access is guarded by a mutex.
type EngineTone struct {
	sampleRate beep.SampleRate

	mu    sync.RWMutex
	freq  float64
	phase float64
}

// NewEngineTone returns a tone idling at the zero-speed pitch.
func NewEngineTone(sr beep.SampleRate) *EngineTone {
	return &EngineTone{
		sampleRate: sr,
		freq:       idleHz,
	}
}

// SetProgress maps gauge progress in [0, 1] onto the pitch range. Values
// outside the range are clamped.
func (e *EngineTone) SetProgress(p float64) {
	p = clamp01(p)
	e.mu.Lock()
	e.freq = idleHz + p*(maxHz-idleHz)
	e.mu.Unlock()
}

// Freq returns the current tone frequency in Hz.
func (e *EngineTone) Freq() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.freq
}

// Stream fills samples with the sine tone. It never drains: the tone plays
// until the speaker is closed.
func (e *EngineTone) Stream(samples [][2]float64) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	step := 2 * math.Pi * e.freq / float64(e.sampleRate)
	for i := range samples {
		v := volume * math.Sin(e.phase)
		samples[i][0] = v
		samples[i][1] = v
		e.phase += step
	}
	// Keep the phase bounded so precision does not degrade over time.
	e.phase = math.Mod(e.phase, 2*math.Pi)

	return len(samples), true
}

func (e *EngineTone) Err() error { return nil }

// Start initializes the speaker and begins playing the tone. Callers treat
// a failure as "no sound", not as a fatal error.
func Start(e *EngineTone) error {
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(e)
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
