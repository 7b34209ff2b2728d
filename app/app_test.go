package app

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/termrun/keyboard"
	"github.com/lixenwraith/termrun/terminal"
)

// fakeBackend satisfies terminal.Backend without touching a real tty.
type fakeBackend struct {
	w, h    int
	initErr error
	inited  bool
	finied  bool
	onFini  func()
	out     bytes.Buffer
}

func (b *fakeBackend) Init() error {
	if b.initErr != nil {
		return b.initErr
	}
	b.inited = true
	return nil
}

func (b *fakeBackend) Fini() {
	b.finied = true
	if b.onFini != nil {
		b.onFini()
	}
}

func (b *fakeBackend) Size() (int, int) { return b.w, b.h }

func (b *fakeBackend) Write(p []byte) (int, error) { return b.out.Write(p) }

type idleSampler struct {
	onClose func()
}

func (s idleSampler) Sample() []keyboard.Key { return nil }

func (s idleSampler) Close() error {
	if s.onClose != nil {
		s.onClose()
	}
	return nil
}

type idleFocus struct{}

func (idleFocus) Wait(stop <-chan struct{}) (time.Time, bool) {
	select {
	case <-stop:
	case <-time.After(time.Millisecond):
	}
	return time.Time{}, false
}

func (idleFocus) Close() error { return nil }

func newTestApp(cfg Config, backend terminal.Backend) *App {
	return &App{
		config: cfg,
		state:  newState(),
		window: terminal.NewWindowWith(backend),
		kbOpts: keyboard.Options{Sampler: idleSampler{}, Focus: idleFocus{}},
	}
}

func TestLoopRunsExactlyUntilStop(t *testing.T) {
	backend := &fakeBackend{w: 20, h: 5}
	a := newTestApp(NewConfig().WithFPS(10), backend)

	calls := 0
	start := time.Now()
	err := a.Run(func(s *State, _ *terminal.Window) {
		calls++
		if calls == 3 {
			s.Stop()
		}
	})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected exactly 3 callback invocations, got %d", calls)
	}
	if a.state.Step() != 3 {
		t.Fatalf("expected step counter 3, got %d", a.state.Step())
	}
	if !backend.finied {
		t.Fatal("terminal not restored after stop")
	}
	// 3 frames at a 100ms budget, with generous slack for CI.
	if elapsed > 900*time.Millisecond {
		t.Fatalf("loop overran its budget: %v", elapsed)
	}
}

func TestKeyboardStopsBeforeTerminalRestore(t *testing.T) {
	var order []string
	backend := &fakeBackend{w: 20, h: 5}
	backend.onFini = func() { order = append(order, "terminal") }

	a := newTestApp(NewConfig().WithFPS(0), backend)
	a.kbOpts.Sampler = idleSampler{onClose: func() { order = append(order, "keyboard") }}

	err := a.Run(func(s *State, _ *terminal.Window) {
		s.Stop()
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(order) != 2 || order[0] != "keyboard" || order[1] != "terminal" {
		t.Fatalf("expected keyboard to stop before the terminal restore, got %v", order)
	}
}

func TestPanicInCallbackRestoresTerminalThenRepanics(t *testing.T) {
	backend := &fakeBackend{w: 20, h: 5}
	a := newTestApp(NewConfig().WithFPS(0), backend)
	a.ackReader = bufio.NewReader(strings.NewReader("\n"))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("panic did not propagate")
		}
		if r != "boom" {
			t.Fatalf("panic value changed in flight: %v", r)
		}
		if !backend.finied {
			t.Fatal("terminal not restored before panic propagated")
		}
	}()

	a.Run(func(s *State, _ *terminal.Window) {
		panic("boom")
	})
}

func TestRunFailsFastWhenWindowCannotOpen(t *testing.T) {
	backend := &fakeBackend{w: 20, h: 5, initErr: errors.New("not a tty")}
	a := newTestApp(NewConfig(), backend)

	err := a.Run(func(s *State, _ *terminal.Window) {
		t.Fatal("callback ran despite failed setup")
	})
	if err == nil {
		t.Fatal("expected setup error")
	}
}

func TestUncappedConfigHasNoBudget(t *testing.T) {
	if b := NewConfig().WithFPS(0).frameBudget(); b != 0 {
		t.Fatalf("expected zero budget, got %v", b)
	}
	if b := NewConfig().frameBudget(); b != time.Second/30 {
		t.Fatalf("expected 33ms default budget, got %v", b)
	}
}

func TestConfigBuilderChains(t *testing.T) {
	cfg := NewConfig().WithFPS(60).WithCorrelationWindow(5 * time.Millisecond)
	if cfg.FPS != 60 || cfg.CorrelationWindow != 5*time.Millisecond {
		t.Fatalf("builder lost a field: %+v", cfg)
	}
}
