package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")
	csiHome = []byte("\x1b[H")
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: ?7l disables wrapping so the bottom-right corner write
	// does not scroll the screen
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// 8-bit indexed color prefixes, followed by N and 'm'
	csiFg256 = []byte("\x1b[38;5;")
	csiBg256 = []byte("\x1b[48;5;")

	// Weight
	csiBold   = []byte("\x1b[1m")
	csiNoBold = []byte("\x1b[22m")
)

// writeInt writes a small non-negative integer without allocation.
// Terminal values are 0-255 common, 0-999 typical max.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeFg emits a foreground color selection sequence.
func writeFg(w *bufio.Writer, c Color) {
	w.Write(csiFg256)
	writeInt(w, int(c.Code()))
	w.WriteByte('m')
}

// writeBg emits a background color selection sequence.
func writeBg(w *bufio.Writer, c Color) {
	w.Write(csiBg256)
	writeInt(w, int(c.Code()))
	w.WriteByte('m')
}

// writeWeight emits a weight change sequence.
func writeWeight(w *bufio.Writer, weight Weight) {
	if weight == Bold {
		w.Write(csiBold)
	} else {
		w.Write(csiNoBold)
	}
}
