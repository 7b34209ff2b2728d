package keyboard

import "time"

// FocusSource yields the instants at which bytes arrived on the
// terminal's own input stream. Terminal input is focus-proof (only the
// focused application receives it) but decodes key identity poorly, so
// the engine uses it purely as corroborating timestamps for the
// device-derived stream.
type FocusSource interface {
	// Wait blocks until input arrives, an internal poll interval
	// elapses, or stop is closed. It returns the arrival instant and
	// true when input was seen.
	Wait(stop <-chan struct{}) (time.Time, bool)

	// Close releases the underlying descriptor state.
	Close() error
}
