// Package keyboard reconstructs a trustworthy press/release event
// stream for a raw-mode terminal application by correlating two flawed
// observation sources: an OS-wide key-state sampler (accurate identity,
// focus-blind) and the terminal's own input stream (focus-proof, poor
// identity). Neither source alone is usable; their agreement within a
// bounded time window is.
package keyboard

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/termrun/core"
)

const (
	// sampleInterval is the device observer's polling cadence. Must stay
	// well under the correlation window or transitions expire unseen.
	sampleInterval = time.Millisecond

	// eventBuffer sizes the accepted-event channel. The consumer drains
	// it every frame; filling it means the frame loop has stalled for
	// hundreds of events, which is treated as an invariant breach.
	eventBuffer = 256

	focusBuffer = 64
)

// Options configures a Keyboard. The zero value selects the platform
// device sampler, the stdin focus source, and the default correlation
// window.
type Options struct {
	// CorrelationWindow overrides DefaultCorrelationWindow when > 0.
	CorrelationWindow time.Duration

	// Sampler overrides the platform device sampler. Required on
	// platforms without one.
	Sampler Sampler

	// Focus overrides the stdin focus source.
	Focus FocusSource
}

// Keyboard owns the two observer goroutines and the reconciler, and
// exposes the per-frame consumption surface. Consume, Events, and
// KeysDown must be called from a single goroutine (the frame loop).
type Keyboard struct {
	events chan KeyEvent

	batch   []KeyEvent
	scratch []KeyEvent
	down    map[Key]uint64
	stamp   uint64

	token      *core.CancelToken
	stopCh     chan struct{}
	deviceDone chan struct{}
	focusDone  chan struct{}
	stopOnce   sync.Once

	sampler Sampler
	focus   FocusSource
	window  time.Duration
}

// New starts both observers and returns a running engine. It fails when
// no device sampler is available and none was injected.
func New(opts Options) (*Keyboard, error) {
	sampler := opts.Sampler
	if sampler == nil {
		var err error
		sampler, err = NewDeviceSampler()
		if err != nil {
			return nil, fmt.Errorf("keyboard: %w", err)
		}
	}

	focus := opts.Focus
	if focus == nil {
		focus = newStdinFocus()
	}

	k := &Keyboard{
		events:     make(chan KeyEvent, eventBuffer),
		down:       make(map[Key]uint64),
		token:      core.NewCancelToken(),
		stopCh:     make(chan struct{}),
		deviceDone: make(chan struct{}),
		focusDone:  make(chan struct{}),
		sampler:    sampler,
		focus:      focus,
		window:     opts.CorrelationWindow,
	}

	focusCh := make(chan time.Time, focusBuffer)
	core.Go(func() { k.focusLoop(focusCh) })
	core.Go(func() { k.deviceLoop(NewReconciler(k.window), focusCh) })
	return k, nil
}

// focusLoop forwards input arrival instants to the device loop.
func (k *Keyboard) focusLoop(focusCh chan time.Time) {
	defer close(k.focusDone)

	for k.token.IsRunning() {
		at, ok := k.focus.Wait(k.stopCh)
		if !ok {
			continue
		}
		select {
		case focusCh <- at:
		default:
			// Full; only the most recent instant matters, so make room.
			select {
			case <-focusCh:
			default:
			}
			select {
			case focusCh <- at:
			default:
			}
		}
	}
}

// deviceLoop samples OS-wide key state on a fixed cadence, turns state
// differences into timestamped transitions, feeds them and any focus
// instants to the reconciler, and emits whatever it accepts.
func (k *Keyboard) deviceLoop(rec *Reconciler, focusCh <-chan time.Time) {
	defer close(k.deviceDone)

	ticker := time.NewTicker(sampleInterval)
	defer ticker.Stop()

	prev := make(map[Key]bool)
	cur := make(map[Key]bool)

	for k.token.IsRunning() {
		select {
		case <-k.stopCh:
			return
		case <-ticker.C:
		}

		now := time.Now()
		for key := range cur {
			delete(cur, key)
		}
		for _, key := range k.sampler.Sample() {
			cur[key] = true
		}
		for key := range cur {
			if !prev[key] {
				rec.AddSignal(KeyEvent{Kind: Pressed, Key: key}, now)
			}
		}
		for key := range prev {
			if !cur[key] {
				rec.AddSignal(KeyEvent{Kind: Released, Key: key}, now)
			}
		}
		prev, cur = cur, prev

	drain:
		for {
			select {
			case at := <-focusCh:
				rec.NoteFocus(at)
			default:
				break drain
			}
		}

		for _, ev := range rec.Sweep(now) {
			k.emit(ev)
		}
	}
}

func (k *Keyboard) emit(ev KeyEvent) {
	select {
	case k.events <- ev:
	default:
		panic("keyboard: event channel overflow, consumer stalled")
	}
}

// Consume drains every event accepted since the previous call and
// resolves them into this frame's batch: presses first, then releases.
// A press for a key already down is swallowed (presses are
// edge-triggered); a release for a key not down is swallowed. Each
// fresh press records a monotonically increasing stamp so held keys
// keep their press order.
func (k *Keyboard) Consume() []KeyEvent {
	k.batch = k.batch[:0]
	k.scratch = k.scratch[:0]

collect:
	for {
		select {
		case ev := <-k.events:
			k.scratch = append(k.scratch, ev)
		default:
			break collect
		}
	}

	for _, ev := range k.scratch {
		if ev.Kind != Pressed {
			continue
		}
		if _, held := k.down[ev.Key]; held {
			continue
		}
		k.stamp++
		k.down[ev.Key] = k.stamp
		k.batch = append(k.batch, ev)
	}
	for _, ev := range k.scratch {
		if ev.Kind != Released {
			continue
		}
		if _, held := k.down[ev.Key]; !held {
			continue
		}
		delete(k.down, ev.Key)
		k.batch = append(k.batch, ev)
	}
	return k.batch
}

// Events returns the batch produced by the most recent Consume. The
// slice is reused across frames.
func (k *Keyboard) Events() []KeyEvent {
	return k.batch
}

// KeysDown returns the currently held keys ordered oldest press first.
func (k *Keyboard) KeysDown() []Key {
	keys := make([]Key, 0, len(k.down))
	for key := range k.down {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return k.down[keys[i]] < k.down[keys[j]]
	})
	return keys
}

// Stop shuts both observers down and blocks until they have exited.
// Teardown latency is bounded by the observers' poll intervals. Safe to
// call more than once.
func (k *Keyboard) Stop() {
	k.stopOnce.Do(func() {
		k.token.Stop()
		close(k.stopCh)
		<-k.deviceDone
		<-k.focusDone
		k.sampler.Close()
		k.focus.Close()
	})
}
