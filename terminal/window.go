// Package terminal owns the display surface: a cell grid presented to
// the terminal through a single-pass, style-coalescing command stream,
// plus the raw-mode lifecycle around it.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/termrun/spatial"
)

// Window exposes a Canvas and writes its content to the terminal. It
// is exclusively owned by the runtime and must only be used from the
// frame loop's goroutine.
type Window struct {
	canvas  *Canvas
	backend Backend
	output  *outputBuffer

	opened bool
	closed bool
}

// NewWindow constructs a window sized to the live terminal, targeting
// the process's own terminal.
func NewWindow() *Window {
	return NewWindowWith(newBackend())
}

// NewWindowWith wires a window to an arbitrary backend. Tests and
// embedders inject fakes through this path.
func NewWindowWith(b Backend) *Window {
	w, h := b.Size()
	return &Window{
		canvas:  NewCanvas(spatial.XY(w, h), DefaultCell()),
		backend: b,
		output:  newOutputBuffer(backendWriter{b}),
	}
}

// backendWriter adapts a Backend to io.Writer for the output buffer.
type backendWriter struct {
	b Backend
}

func (bw backendWriter) Write(p []byte) (int, error) {
	return bw.b.Write(p)
}

// Canvas returns the window's canvas.
func (w *Window) Canvas() *Canvas {
	return w.canvas
}

// Size returns the canvas dimension.
func (w *Window) Size() spatial.Vec2 {
	return w.canvas.Dimension()
}

// Open switches to the alternate screen buffer, hides the cursor and
// enables raw input mode so every keystroke reaches the input engine.
// Setup failure is unrecoverable and returned immediately.
func (w *Window) Open() error {
	if w.opened {
		return nil
	}

	if err := w.backend.Init(); err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	buf := w.output.writer
	buf.Write(csiAltScreenEnter)
	buf.Write(csiSGR0)
	buf.Write(csiCursorHide)
	buf.Write(csiAutoWrapOff)
	w.output.resetState(w.canvas.DefaultCell())
	if err := buf.Flush(); err != nil {
		w.backend.Fini()
		return fmt.Errorf("open window: %w", err)
	}

	w.opened = true
	w.closed = false
	return nil
}

// Close reverses Open unconditionally: cursor shown, alternate screen
// left, attributes reset, raw mode restored. Safe to call twice.
func (w *Window) Close() {
	if !w.opened || w.closed {
		return
	}

	buf := w.output.writer
	buf.Write(csiCursorShow)
	buf.Write(csiSGR0)
	buf.Write(csiAutoWrapOn)
	buf.Write(csiAltScreenExit)
	buf.Flush()

	w.backend.Fini()
	w.closed = true
	w.opened = false
}

// Clear re-queries the live terminal dimension. On change the canvas
// is reallocated wholesale and filled with the default cell; otherwise
// every cell is reset in place.
func (w *Window) Clear() {
	tw, th := w.backend.Size()
	live := spatial.XY(tw, th)
	if live != w.canvas.Dimension() {
		w.canvas.realloc(live)
		return
	}
	w.canvas.Clear()
}

// Draw presents the canvas: one diff pass, one flush. A frame whose
// canvas no longer matches the live terminal size is dropped; the next
// Clear picks up the new dimension.
func (w *Window) Draw() {
	if !w.opened || w.closed {
		return
	}

	tw, th := w.backend.Size()
	if spatial.XY(tw, th) != w.canvas.Dimension() {
		return
	}

	w.output.present(w.canvas)
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call from panic recovery when Close cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
