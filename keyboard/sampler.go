package keyboard

// Sampler reports the complete OS-wide set of currently held keys.
// Samples carry accurate key identity with sub-frame latency but are
// focus-blind: they include keys held in any application, which is why
// sampled transitions must pass the Reconciler before surfacing.
//
// Implementations must tolerate being called on a ~1ms cadence.
type Sampler interface {
	// Sample returns the keys currently held anywhere on the system.
	// The returned slice is only valid until the next call.
	Sample() []Key

	// Close releases any underlying device handles.
	Close() error
}
