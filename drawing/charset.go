// Package drawing provides shape and text helpers over a canvas: a
// chaining Pencil carrying origin and style, box-drawing charsets, and
// a small frame animator.
package drawing

import "fmt"

// RectCharset holds the eight glyphs needed to draw a rectangle of any
// size: the four edges and the four corners.
type RectCharset struct {
	Top         rune
	Bottom      rune
	Left        rune
	Right       rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// NewRectCharset builds a charset from the first eight runes of s, in
// the order top, bottom, left, right, top-left, top-right, bottom-left,
// bottom-right. Fewer than eight runes is a construction error; a
// charset can never fail later at draw time.
func NewRectCharset(s string) (RectCharset, error) {
	runes := []rune(s)
	if len(runes) < 8 {
		return RectCharset{}, fmt.Errorf("rect charset needs 8 runes, got %d", len(runes))
	}
	return RectCharset{
		Top:         runes[0],
		Bottom:      runes[1],
		Left:        runes[2],
		Right:       runes[3],
		TopLeft:     runes[4],
		TopRight:    runes[5],
		BottomLeft:  runes[6],
		BottomRight: runes[7],
	}, nil
}

func mustCharset(s string) RectCharset {
	cs, err := NewRectCharset(s)
	if err != nil {
		panic(err)
	}
	return cs
}

// SimpleLines draws single-line rectangles:
//
//	┌──────┐
//	│      │
//	└──────┘
func SimpleLines() RectCharset {
	return mustCharset("──││┌┐└┘")
}

// SimpleRoundLines draws single-line rectangles with rounded corners:
//
//	╭──────╮
//	│      │
//	╰──────╯
func SimpleRoundLines() RectCharset {
	return mustCharset("──││╭╮╰╯")
}

// DoubleLines draws double-line rectangles:
//
//	╔══════╗
//	║      ║
//	╚══════╝
func DoubleLines() RectCharset {
	return mustCharset("══║║╔╗╚╝")
}
