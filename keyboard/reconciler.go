package keyboard

import "time"

// DefaultCorrelationWindow is the tolerance used to match a
// device-observed key transition to a focus-confirming input
// timestamp. Empirically chosen; tunable through Config.
const DefaultCorrelationWindow = 20 * time.Millisecond

type pendingSignal struct {
	ev KeyEvent
	at time.Time
}

// Reconciler correlates two flawed observation streams into one
// trustworthy event stream. Device-derived transitions carry accurate
// key identity but are focus-blind; focus confirmations prove the user
// interacted with this terminal but decode poorly. A transition is
// accepted once a focus confirmation lands within the correlation
// window on either side of it, and dropped silently once it ages past
// the window uncorroborated.
//
// The reconciler is a plain data structure with no concurrency of its
// own; the device observer drives it from a single goroutine.
type Reconciler struct {
	window    time.Duration
	pending   []pendingSignal
	lastFocus time.Time
	focusSeen bool
}

// NewReconciler constructs a reconciler with the given correlation
// window. A zero or negative window falls back to the default.
func NewReconciler(window time.Duration) *Reconciler {
	if window <= 0 {
		window = DefaultCorrelationWindow
	}
	return &Reconciler{window: window}
}

// Window returns the configured correlation window.
func (r *Reconciler) Window() time.Duration {
	return r.window
}

// AddSignal appends a device-derived transition tagged with its
// arrival instant.
func (r *Reconciler) AddSignal(ev KeyEvent, at time.Time) {
	r.pending = append(r.pending, pendingSignal{ev: ev, at: at})
}

// NoteFocus records a focus confirmation instant. Only the most recent
// instant matters.
func (r *Reconciler) NoteFocus(at time.Time) {
	if !r.focusSeen || at.After(r.lastFocus) {
		r.lastFocus = at
		r.focusSeen = true
	}
}

// Pending returns the number of uncorroborated signals still held.
func (r *Reconciler) Pending() int {
	return len(r.pending)
}

// Sweep resolves the pending list against the latest focus instant:
// signals within the window of it (in either temporal direction) are
// accepted and returned in arrival order; signals older than the
// window are dropped as belonging to an unfocused application; the
// rest stay pending awaiting a later focus confirmation.
func (r *Reconciler) Sweep(now time.Time) []KeyEvent {
	if len(r.pending) == 0 {
		return nil
	}

	var accepted []KeyEvent
	keep := r.pending[:0]
	for _, s := range r.pending {
		if r.focusSeen && absDelta(s.at, r.lastFocus) <= r.window {
			accepted = append(accepted, s.ev)
			continue
		}
		if now.Sub(s.at) > r.window {
			continue // Expired without corroboration
		}
		keep = append(keep, s)
	}
	r.pending = keep
	return accepted
}

func absDelta(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
