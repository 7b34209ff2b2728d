package keyboard

import (
	"testing"
	"time"
)

func TestSweepAcceptsSignalNearFocusInstant(t *testing.T) {
	base := time.Now()
	r := NewReconciler(20 * time.Millisecond)

	// Focus before the signal, inside the window.
	r.NoteFocus(base)
	r.AddSignal(KeyEvent{Kind: Pressed, Key: KeyA}, base.Add(15*time.Millisecond))

	got := r.Sweep(base.Add(16 * time.Millisecond))
	if len(got) != 1 || got[0].Key != KeyA || got[0].Kind != Pressed {
		t.Fatalf("expected accepted Pressed(A), got %v", got)
	}
}

func TestSweepAcceptsSignalBeforeFocusInstant(t *testing.T) {
	base := time.Now()
	r := NewReconciler(20 * time.Millisecond)

	// Signal first, focus confirmation arrives afterwards. The window
	// tolerance applies in both temporal directions.
	r.AddSignal(KeyEvent{Kind: Pressed, Key: KeyB}, base)
	if got := r.Sweep(base.Add(5 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("signal accepted without corroboration: %v", got)
	}

	r.NoteFocus(base.Add(12 * time.Millisecond))
	got := r.Sweep(base.Add(13 * time.Millisecond))
	if len(got) != 1 || got[0].Key != KeyB {
		t.Fatalf("expected accepted Pressed(B), got %v", got)
	}
}

func TestSweepDropsExpiredSignalSilently(t *testing.T) {
	base := time.Now()
	r := NewReconciler(20 * time.Millisecond)

	r.AddSignal(KeyEvent{Kind: Pressed, Key: KeyC}, base)
	if got := r.Sweep(base.Add(30 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("uncorroborated signal leaked: %v", got)
	}
	if r.Pending() != 0 {
		t.Fatalf("expired signal still pending: %d", r.Pending())
	}

	// A focus instant arriving after expiry resurrects nothing.
	r.NoteFocus(base.Add(31 * time.Millisecond))
	if got := r.Sweep(base.Add(32 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("dropped signal came back: %v", got)
	}
}

func TestSweepDeliversEachSignalOnce(t *testing.T) {
	base := time.Now()
	r := NewReconciler(20 * time.Millisecond)

	r.NoteFocus(base)
	r.AddSignal(KeyEvent{Kind: Pressed, Key: KeyD}, base)

	if got := r.Sweep(base.Add(time.Millisecond)); len(got) != 1 {
		t.Fatalf("expected one accepted event, got %v", got)
	}
	if got := r.Sweep(base.Add(2 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("signal delivered twice: %v", got)
	}
}

func TestSweepPreservesArrivalOrder(t *testing.T) {
	base := time.Now()
	r := NewReconciler(20 * time.Millisecond)

	r.AddSignal(KeyEvent{Kind: Pressed, Key: KeyA}, base)
	r.AddSignal(KeyEvent{Kind: Released, Key: KeyB}, base.Add(time.Millisecond))
	r.AddSignal(KeyEvent{Kind: Pressed, Key: KeyC}, base.Add(2*time.Millisecond))
	r.NoteFocus(base.Add(time.Millisecond))

	got := r.Sweep(base.Add(3 * time.Millisecond))
	want := []Key{KeyA, KeyB, KeyC}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), got)
	}
	for i, key := range want {
		if got[i].Key != key {
			t.Fatalf("event %d: expected %v, got %v", i, key, got[i].Key)
		}
	}
}

func TestSweepKeepsFreshSignalPendingWithoutFocus(t *testing.T) {
	base := time.Now()
	r := NewReconciler(20 * time.Millisecond)

	r.AddSignal(KeyEvent{Kind: Pressed, Key: KeyE}, base)
	if got := r.Sweep(base.Add(10 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("signal accepted without focus: %v", got)
	}
	if r.Pending() != 1 {
		t.Fatalf("fresh signal not retained: pending=%d", r.Pending())
	}
}

func TestZeroWindowFallsBackToDefault(t *testing.T) {
	if w := NewReconciler(0).Window(); w != DefaultCorrelationWindow {
		t.Fatalf("expected default window, got %v", w)
	}
}
