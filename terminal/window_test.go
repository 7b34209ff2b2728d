package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/termrun/spatial"
)

type testBackend struct {
	w, h    int
	initErr error
	inits   int
	finis   int
	out     bytes.Buffer
}

func (b *testBackend) Init() error {
	if b.initErr != nil {
		return b.initErr
	}
	b.inits++
	return nil
}

func (b *testBackend) Fini() { b.finis++ }

func (b *testBackend) Size() (int, int) { return b.w, b.h }

func (b *testBackend) Write(p []byte) (int, error) { return b.out.Write(p) }

func TestOpenEntersAlternateScreenAndHidesCursor(t *testing.T) {
	b := &testBackend{w: 10, h: 4}
	w := NewWindowWith(b)

	if err := w.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	out := b.out.String()
	for _, seq := range []string{"\x1b[?1049h", "\x1b[?25l", "\x1b[?7l"} {
		if !strings.Contains(out, seq) {
			t.Fatalf("missing setup sequence %q", seq)
		}
	}
}

func TestOpenFailsFastOnBackendError(t *testing.T) {
	b := &testBackend{w: 10, h: 4, initErr: errors.New("not a tty")}
	w := NewWindowWith(b)

	if err := w.Open(); err == nil {
		t.Fatal("expected setup error")
	}
	if b.out.Len() != 0 {
		t.Fatal("sequences written despite failed setup")
	}
}

func TestCloseReversesOpenAndIsIdempotent(t *testing.T) {
	b := &testBackend{w: 10, h: 4}
	w := NewWindowWith(b)
	if err := w.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}

	w.Close()
	w.Close()

	out := b.out.String()
	for _, seq := range []string{"\x1b[?1049l", "\x1b[?25h", "\x1b[?7h"} {
		if !strings.Contains(out, seq) {
			t.Fatalf("missing teardown sequence %q", seq)
		}
	}
	if b.finis != 1 {
		t.Fatalf("expected exactly one backend Fini, got %d", b.finis)
	}
}

func TestClearAdoptsNewTerminalSize(t *testing.T) {
	b := &testBackend{w: 10, h: 4}
	w := NewWindowWith(b)

	w.Canvas().SetCell(spatial.XY(0, 0), Cell{Rune: 'x', Foreground: Red})

	// Terminal grew between frames.
	b.w, b.h = 12, 6
	w.Clear()

	if w.Size() != spatial.XY(12, 6) {
		t.Fatalf("canvas did not adopt live size: %v", w.Size())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 12; x++ {
			cell, _ := w.Canvas().Cell(spatial.XY(x, y))
			if cell != DefaultCell() {
				t.Fatalf("residual content at (%d,%d): %+v", x, y, cell)
			}
		}
	}
}

func TestClearWithoutResizeResetsInPlace(t *testing.T) {
	b := &testBackend{w: 10, h: 4}
	w := NewWindowWith(b)
	gen := w.Canvas().Generation()

	w.Canvas().SetCell(spatial.XY(3, 2), Cell{Rune: 'x'})
	w.Clear()

	if w.Canvas().Generation() != gen {
		t.Fatal("clear reallocated without a size change")
	}
	cell, _ := w.Canvas().Cell(spatial.XY(3, 2))
	if cell != DefaultCell() {
		t.Fatalf("cell not reset: %+v", cell)
	}
}

func TestDrawDropsFrameOnSizeMismatch(t *testing.T) {
	b := &testBackend{w: 10, h: 4}
	w := NewWindowWith(b)
	if err := w.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	b.out.Reset()

	// Resize lands between Clear and Draw.
	b.w = 9
	w.Draw()

	if b.out.Len() != 0 {
		t.Fatal("mismatched frame was presented")
	}
}

func TestDrawBeforeOpenIsNoOp(t *testing.T) {
	b := &testBackend{w: 10, h: 4}
	w := NewWindowWith(b)
	w.Draw()
	if b.out.Len() != 0 {
		t.Fatal("draw wrote without an open window")
	}
}

func TestEmergencyResetWritesRecoverySequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m", "\x1b[?7h", "\x1bc"} {
		if !strings.Contains(out, seq) {
			t.Fatalf("missing recovery sequence %q", seq)
		}
	}
}
