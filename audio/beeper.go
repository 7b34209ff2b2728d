// Package audio provides a minimal tone generator for terminal
// applications that want audible feedback without shipping samples.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Beeper plays short sine blips through the system speaker. All
// methods are safe for concurrent use. A Beeper that failed to
// initialize (or was never initialized) stays silent instead of
// erroring on every call.
type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBeeper constructs an uninitialized Beeper.
func NewBeeper() *Beeper {
	return &Beeper{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Failure leaves the Beeper in
// silent mode; callers may treat the error as informational.
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Beep schedules a sine tone of the given frequency and duration.
// Silent when uninitialized or when the frequency is rejected.
func (b *Beeper) Beep(freq float64, duration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	b.mixer.Add(beep.Take(sampleRate.N(duration), tone))
}

// Cleanup stops all scheduled tones and returns to silent mode.
func (b *Beeper) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	b.mixer.Clear()
	b.initialized = false
}
