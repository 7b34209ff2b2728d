package core

import "sync/atomic"

// CancelToken is a shared run/stop flag passed to every worker that
// must observe cancellation. Only atomic load/store, no locking.
type CancelToken struct {
	running atomic.Bool
}

// NewCancelToken returns a token in the running state.
func NewCancelToken() *CancelToken {
	t := &CancelToken{}
	t.running.Store(true)
	return t
}

// Run sets the token to the running state.
func (t *CancelToken) Run() {
	t.running.Store(true)
}

// Stop clears the running state. Workers observe it on their next
// iteration; teardown latency is bounded by their poll interval.
func (t *CancelToken) Stop() {
	t.running.Store(false)
}

// IsRunning reports whether the token is in the running state.
func (t *CancelToken) IsRunning() bool {
	return t.running.Load()
}
