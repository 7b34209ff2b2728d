package terminal

import (
	"github.com/lixenwraith/termrun/spatial"
)

// Cell is the full display state of one character position. Copied by
// value; it has no identity beyond its position in a Canvas.
type Cell struct {
	Weight     Weight
	Foreground Color
	Background Color
	Rune       rune
}

// DefaultCell returns a plain white-on-black space.
func DefaultCell() Cell {
	return Cell{
		Weight:     Plain,
		Foreground: White,
		Background: Black,
		Rune:       ' ',
	}
}

// Canvas holds the cell grid for a single frame. The backing slice is
// row-major (cells[y*w + x]) and always exactly w*h long; a dimension
// change reallocates it wholesale, never resizes it in place.
type Canvas struct {
	data        []Cell
	dimension   spatial.Vec2
	defaultCell Cell

	// generation increments on every reallocation so that frame-scoped
	// drawing contexts can detect a resize underneath them
	generation uint64
}

// NewCanvas constructs a canvas of the given dimension with every cell
// set to the default cell.
func NewCanvas(dimension spatial.Vec2, defaultCell Cell) *Canvas {
	c := &Canvas{defaultCell: defaultCell}
	c.realloc(dimension)
	return c
}

// realloc replaces the backing slice for a new dimension and fills it
// with the default cell. Previous content is discarded.
func (c *Canvas) realloc(dimension spatial.Vec2) {
	if dimension.X < 0 {
		dimension.X = 0
	}
	if dimension.Y < 0 {
		dimension.Y = 0
	}
	c.data = make([]Cell, dimension.X*dimension.Y)
	c.dimension = dimension
	c.generation++
	c.Clear()
}

// Resize reallocates the canvas for a new dimension, discarding all
// content. Resizing to the current dimension still reallocates.
func (c *Canvas) Resize(dimension spatial.Vec2) {
	c.realloc(dimension)
}

// Dimension returns the canvas size.
func (c *Canvas) Dimension() spatial.Vec2 {
	return c.dimension
}

// Generation returns the reallocation counter. It changes exactly when
// the backing slice is replaced.
func (c *Canvas) Generation() uint64 {
	return c.generation
}

// Contains reports whether pos lies within the canvas. Negative
// components are always outside.
func (c *Canvas) Contains(pos spatial.Vec2) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < c.dimension.X && pos.Y < c.dimension.Y
}

// Cell returns the cell at pos. The second result is false when pos is
// outside the canvas.
func (c *Canvas) Cell(pos spatial.Vec2) (Cell, bool) {
	if !c.Contains(pos) {
		return Cell{}, false
	}
	return c.data[pos.Y*c.dimension.X+pos.X], true
}

// SetCell writes the cell at pos. Out-of-bounds writes are silent
// no-ops returning false; upstream drawing logic legitimately computes
// off-grid coordinates.
func (c *Canvas) SetCell(pos spatial.Vec2, cell Cell) bool {
	if !c.Contains(pos) {
		return false
	}
	c.data[pos.Y*c.dimension.X+pos.X] = cell
	return true
}

// CellPtr returns a pointer to the cell at pos for in-place mutation,
// or nil when pos is outside the canvas.
func (c *Canvas) CellPtr(pos spatial.Vec2) *Cell {
	if !c.Contains(pos) {
		return nil
	}
	return &c.data[pos.Y*c.dimension.X+pos.X]
}

// Fill sets every cell to the given cell.
func (c *Canvas) Fill(cell Cell) {
	if len(c.data) == 0 {
		return
	}
	c.data[0] = cell
	for filled := 1; filled < len(c.data); filled *= 2 {
		copy(c.data[filled:], c.data[:filled])
	}
}

// Clear resets every cell to the default cell.
func (c *Canvas) Clear() {
	c.Fill(c.defaultCell)
}

// DefaultCell returns the cell used for fill, clear and resize.
func (c *Canvas) DefaultCell() Cell {
	return c.defaultCell
}

// SetDefaultCell replaces the default cell used by Clear and resize.
func (c *Canvas) SetDefaultCell(cell Cell) {
	c.defaultCell = cell
}

// cells exposes the backing slice to the output pass.
func (c *Canvas) cells() []Cell {
	return c.data
}
