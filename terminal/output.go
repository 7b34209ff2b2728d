package terminal

import (
	"bufio"
	"io"
)

// outputBuffer turns a canvas into terminal commands. All commands for
// one frame are accumulated in a single buffered writer and flushed
// with one Flush call, bounding output volume and syscall count
// regardless of grid size or frame rate.
type outputBuffer struct {
	writer *bufio.Writer
}

func newOutputBuffer(w io.Writer) *outputBuffer {
	return &outputBuffer{
		writer: bufio.NewWriterSize(w, 131072), // 128KB buffer
	}
}

// present writes the whole canvas in one row-major pass. A color or
// weight command is emitted only when the cell differs from the
// immediately preceding cell in this same pass; there is no retained
// previous-frame buffer. The rune itself is always emitted.
func (o *outputBuffer) present(c *Canvas) {
	w := o.writer
	dim := c.Dimension()
	cells := c.cells()

	o.resetState(c.DefaultCell())

	last := c.DefaultCell()
	for y := 0; y < dim.Y; y++ {
		// Auto-wrap is disabled while the window is open, so each row
		// is addressed explicitly
		writeCursorPos(w, 0, y)
		row := cells[y*dim.X : (y+1)*dim.X]
		for _, cell := range row {
			if cell.Weight != last.Weight {
				writeWeight(w, cell.Weight)
			}
			if cell.Foreground != last.Foreground {
				writeFg(w, cell.Foreground)
			}
			if cell.Background != last.Background {
				writeBg(w, cell.Background)
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
			}
			last = cell
		}
	}

	o.resetState(c.DefaultCell())
	w.Flush()
}

// resetState pins the style state to the default cell and reparks the
// cursor at the origin. The weight must be pinned explicitly: SGR0
// leaves the terminal plain, and the diff pass seeds its comparison
// state with the full default cell.
func (o *outputBuffer) resetState(def Cell) {
	w := o.writer
	w.Write(csiSGR0)
	writeWeight(w, def.Weight)
	writeFg(w, def.Foreground)
	writeBg(w, def.Background)
	w.Write(csiHome)
}

// writeCursorPos writes a cursor positioning sequence (0-indexed input).
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
