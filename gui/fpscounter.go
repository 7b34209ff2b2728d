// Package gui holds small ready-made UI helpers for frame-based
// terminal applications.
package gui

import "time"

// FPSCounter measures the achieved frame rate. Call Update once per
// frame; Count returns the number of frames completed during the last
// full second.
type FPSCounter struct {
	fps     uint
	stamp   time.Time
	frames  uint
	nowFunc func() time.Time
}

// NewFPSCounter constructs a counter. The first Count values are zero
// until a full second of frames has been observed.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{nowFunc: time.Now, stamp: time.Now()}
}

// Update registers one completed frame.
func (f *FPSCounter) Update() {
	now := f.nowFunc()
	f.frames++
	if now.Sub(f.stamp) > time.Second {
		f.fps = f.frames
		f.stamp = now
		f.frames = 0
	}
}

// Count returns the most recently measured frame rate.
func (f *FPSCounter) Count() uint {
	return f.fps
}
