package terminal

import (
	"testing"

	"github.com/lixenwraith/termrun/spatial"
)

func TestSetCellOutOfBoundsIsNoOp(t *testing.T) {
	c := NewCanvas(spatial.XY(4, 3), DefaultCell())
	red := Cell{Foreground: Red, Background: Black, Rune: 'x'}

	for _, pos := range []spatial.Vec2{
		spatial.XY(4, 0), spatial.XY(0, 3), spatial.XY(-1, 0),
		spatial.XY(0, -1), spatial.XY(100, 100),
	} {
		if c.SetCell(pos, red) {
			t.Fatalf("write at %v reported success", pos)
		}
	}

	// No neighbor corruption: every in-bounds cell still default.
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell, ok := c.Cell(spatial.XY(x, y))
			if !ok || cell != DefaultCell() {
				t.Fatalf("cell (%d,%d) corrupted: %+v", x, y, cell)
			}
		}
	}
}

func TestCellOutOfBoundsReturnsFalse(t *testing.T) {
	c := NewCanvas(spatial.XY(2, 2), DefaultCell())
	if _, ok := c.Cell(spatial.XY(2, 0)); ok {
		t.Fatal("out-of-bounds read reported ok")
	}
	if ptr := c.CellPtr(spatial.XY(0, 2)); ptr != nil {
		t.Fatal("out-of-bounds CellPtr returned non-nil")
	}
}

func TestFillAndClear(t *testing.T) {
	c := NewCanvas(spatial.XY(5, 4), DefaultCell())
	block := Cell{Foreground: Green, Background: Blue, Rune: '#'}

	c.Fill(block)
	cell, _ := c.Cell(spatial.XY(4, 3))
	if cell != block {
		t.Fatalf("fill missed a cell: %+v", cell)
	}

	c.Clear()
	cell, _ = c.Cell(spatial.XY(4, 3))
	if cell != DefaultCell() {
		t.Fatalf("clear missed a cell: %+v", cell)
	}
}

func TestResizeDiscardsContentAndBumpsGeneration(t *testing.T) {
	c := NewCanvas(spatial.XY(3, 3), DefaultCell())
	c.SetCell(spatial.XY(1, 1), Cell{Rune: 'x', Foreground: Red})
	gen := c.Generation()

	c.Resize(spatial.XY(5, 2))

	if c.Generation() == gen {
		t.Fatal("generation unchanged after resize")
	}
	if c.Dimension() != spatial.XY(5, 2) {
		t.Fatalf("wrong dimension after resize: %v", c.Dimension())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			cell, _ := c.Cell(spatial.XY(x, y))
			if cell != DefaultCell() {
				t.Fatalf("residual content at (%d,%d): %+v", x, y, cell)
			}
		}
	}
}

func TestNegativeDimensionClampsToEmpty(t *testing.T) {
	c := NewCanvas(spatial.XY(-3, 4), DefaultCell())
	if d := c.Dimension(); d.X != 0 {
		t.Fatalf("negative width not clamped: %v", d)
	}
}

func TestSetDefaultCellAffectsClear(t *testing.T) {
	c := NewCanvas(spatial.XY(2, 2), DefaultCell())
	dim := Cell{Foreground: Grey, Background: Black, Rune: '.'}
	c.SetDefaultCell(dim)
	c.Clear()

	cell, _ := c.Cell(spatial.XY(1, 1))
	if cell != dim {
		t.Fatalf("clear ignored new default: %+v", cell)
	}
}
