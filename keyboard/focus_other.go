//go:build !unix

package keyboard

import "time"

type stubFocus struct{}

func newStdinFocus() FocusSource {
	return stubFocus{}
}

func (stubFocus) Wait(stop <-chan struct{}) (time.Time, bool) {
	select {
	case <-stop:
	case <-time.After(10 * time.Millisecond):
	}
	return time.Time{}, false
}

func (stubFocus) Close() error { return nil }
