package app

import (
	"time"

	"github.com/lixenwraith/termrun/core"
	"github.com/lixenwraith/termrun/keyboard"
)

// State is the per-run handle passed to the frame callback: the stop
// flag, frame timing, and the keyboard.
type State struct {
	token    *core.CancelToken
	keyboard *keyboard.Keyboard

	dt   time.Duration
	step uint64
}

func newState() *State {
	return &State{token: core.NewCancelToken()}
}

// Stop requests loop termination. The loop observes it at the top of
// the next iteration; background observers within their poll interval.
func (s *State) Stop() {
	s.token.Stop()
}

// IsRunning reports whether the loop should keep iterating.
func (s *State) IsRunning() bool {
	return s.token.IsRunning()
}

// DT returns the duration of the previous frame's work, excluding the
// pacing sleep.
func (s *State) DT() time.Duration {
	return s.dt
}

// Step returns the number of completed frames.
func (s *State) Step() uint64 {
	return s.step
}

// Keyboard returns the keyboard engine. Valid once Run has started.
func (s *State) Keyboard() *keyboard.Keyboard {
	return s.keyboard
}
