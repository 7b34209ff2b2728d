package drawing

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termrun/spatial"
	"github.com/lixenwraith/termrun/terminal"
)

// Pencil writes styled characters to a canvas. It carries an origin,
// foreground, background and weight; positions passed to Draw* methods
// are relative to the origin, and every mutator returns the receiver
// for chaining:
//
//	drawing.NewPencil(window.Canvas()).
//		SetForeground(terminal.Blue).
//		DrawRect(drawing.DoubleLines(), spatial.Zero(), size).
//		DrawText("score", spatial.XY(2, 0))
//
// A Pencil is frame-scoped: it captures the canvas generation at
// construction and panics when drawn through after the canvas was
// reallocated by a resize. Create a fresh Pencil each frame.
type Pencil struct {
	canvas     *terminal.Canvas
	generation uint64

	origin     spatial.Vec2
	foreground terminal.Color
	background terminal.Color
	weight     terminal.Weight
}

// NewPencil constructs a pencil over the canvas, styled with the
// canvas's default cell.
func NewPencil(canvas *terminal.Canvas) *Pencil {
	def := canvas.DefaultCell()
	return &Pencil{
		canvas:     canvas,
		generation: canvas.Generation(),
		foreground: def.Foreground,
		background: def.Background,
		weight:     def.Weight,
	}
}

func (p *Pencil) drawCell(pos spatial.Vec2, r rune) {
	if p.canvas.Generation() != p.generation {
		panic("drawing: canvas reallocated under an active pencil")
	}
	if cell := p.canvas.CellPtr(pos); cell != nil {
		cell.Rune = r
		cell.Foreground = p.foreground
		cell.Background = p.background
		cell.Weight = p.weight
	}
}

// Origin returns the current origin.
func (p *Pencil) Origin() spatial.Vec2 {
	return p.origin
}

// Dimension returns the drawable space past the current origin.
func (p *Pencil) Dimension() spatial.Vec2 {
	return p.canvas.Dimension().Sub(p.origin)
}

// Foreground returns the current foreground color.
func (p *Pencil) Foreground() terminal.Color {
	return p.foreground
}

// Background returns the current background color.
func (p *Pencil) Background() terminal.Color {
	return p.background
}

// Weight returns the current weight.
func (p *Pencil) Weight() terminal.Weight {
	return p.weight
}

// SetOrigin replaces the origin.
func (p *Pencil) SetOrigin(pos spatial.Vec2) *Pencil {
	p.origin = pos
	return p
}

// MoveOrigin displaces the origin.
func (p *Pencil) MoveOrigin(displacement spatial.Vec2) *Pencil {
	p.origin = p.origin.Add(displacement)
	return p
}

// SetForeground replaces the foreground color.
func (p *Pencil) SetForeground(c terminal.Color) *Pencil {
	p.foreground = c
	return p
}

// SetBackground replaces the background color.
func (p *Pencil) SetBackground(c terminal.Color) *Pencil {
	p.background = c
	return p
}

// SetWeight replaces the weight.
func (p *Pencil) SetWeight(w terminal.Weight) *Pencil {
	p.weight = w
	return p
}

// DrawChar draws a single character at pos.
func (p *Pencil) DrawChar(r rune, pos spatial.Vec2) *Pencil {
	p.drawCell(p.origin.Add(pos), r)
	return p
}

// DrawText draws a string starting at pos, advancing rightwards by each
// rune's display width and wrapping at the canvas width onto the next
// row.
func (p *Pencil) DrawText(text string, pos spatial.Vec2) *Pencil {
	width := p.canvas.Dimension().X
	if width <= 0 {
		return p
	}
	x := p.origin.X + pos.X
	y := p.origin.Y + pos.Y
	for _, r := range text {
		if x >= 0 {
			p.drawCell(spatial.XY(x%width, y+x/width), r)
		} else {
			p.drawCell(spatial.XY(x, y), r)
		}
		x += runewidth.RuneWidth(r)
	}
	return p
}

// DrawCenteredText draws a string horizontally centered on pos.
func (p *Pencil) DrawCenteredText(text string, pos spatial.Vec2) *Pencil {
	return p.DrawText(text, pos.Sub(spatial.X(runewidth.StringWidth(text)/2)))
}

// DrawRightAlignedText draws a string ending at pos.
func (p *Pencil) DrawRightAlignedText(text string, pos spatial.Vec2) *Pencil {
	return p.DrawText(text, pos.Sub(spatial.X(runewidth.StringWidth(text))))
}

// DrawVLine draws size copies of r extending downwards from pos.
func (p *Pencil) DrawVLine(r rune, pos spatial.Vec2, size int) *Pencil {
	start := p.origin.Add(pos)
	for i := 0; i < size; i++ {
		p.drawCell(start.Add(spatial.Y(i)), r)
	}
	return p
}

// DrawHLine draws size copies of r extending rightwards from pos.
func (p *Pencil) DrawHLine(r rune, pos spatial.Vec2, size int) *Pencil {
	start := p.origin.Add(pos)
	for i := 0; i < size; i++ {
		p.drawCell(start.Add(spatial.X(i)), r)
	}
	return p
}

// DrawRect draws an empty rectangle whose top-left corner sits at pos.
// dimension includes the border, so the enclosed space is two smaller
// in each direction.
func (p *Pencil) DrawRect(cs RectCharset, pos spatial.Vec2, dimension spatial.Vec2) *Pencil {
	return p.MoveOrigin(pos).
		DrawHLine(cs.Top, spatial.X(0), dimension.X-1).
		DrawHLine(cs.Bottom, spatial.XY(0, dimension.Y-1), dimension.X-1).
		DrawVLine(cs.Left, spatial.Y(0), dimension.Y-1).
		DrawVLine(cs.Right, spatial.XY(dimension.X-1, 0), dimension.Y-1).
		DrawChar(cs.TopLeft, spatial.Zero()).
		DrawChar(cs.TopRight, spatial.X(dimension.X-1)).
		DrawChar(cs.BottomLeft, spatial.Y(dimension.Y-1)).
		DrawChar(cs.BottomRight, dimension.Sub(spatial.XY(1, 1))).
		MoveOrigin(pos.Neg())
}

// DrawFilledRect draws a dimension-sized block of fill characters whose
// top-left corner sits at pos.
func (p *Pencil) DrawFilledRect(fill rune, pos spatial.Vec2, dimension spatial.Vec2) *Pencil {
	for i := 0; i < dimension.X; i++ {
		p.DrawVLine(fill, pos.Add(spatial.X(i)), dimension.Y)
	}
	return p
}

// DrawAnimator draws the animator's current frame at pos and advances
// its counter.
func (p *Pencil) DrawAnimator(a *Animator, pos spatial.Vec2) *Pencil {
	return p.DrawText(a.accessFrame(), pos)
}
