package app

import "time"

// Config holds the runtime settings. Values chain builder-style:
//
//	app.NewWithConfig(app.NewConfig().WithFPS(60))
type Config struct {
	// FPS caps the frame rate. 0 means uncapped (best-effort max rate).
	FPS uint

	// CorrelationWindow overrides the keyboard engine's default
	// correlation window when > 0.
	CorrelationWindow time.Duration
}

// NewConfig returns the default configuration: 30 FPS, default
// correlation window.
func NewConfig() Config {
	return Config{FPS: 30}
}

// WithFPS returns a copy with the frame cap set.
func (c Config) WithFPS(fps uint) Config {
	c.FPS = fps
	return c
}

// WithCorrelationWindow returns a copy with the keyboard correlation
// window set.
func (c Config) WithCorrelationWindow(d time.Duration) Config {
	c.CorrelationWindow = d
	return c
}

func (c Config) frameBudget() time.Duration {
	if c.FPS == 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}
