package terminal

// Color is an 8-bit xterm palette color. Named constants cover the
// common cases; Xterm wraps an arbitrary palette index.
type Color uint8

const (
	Black     Color = 16
	White     Color = 231
	Grey      Color = 244
	DarkGrey  Color = 238
	LightGrey Color = 250
	Red       Color = 196
	Green     Color = 46
	Blue      Color = 21
	Cyan      Color = 51
	Yellow    Color = 226
	Magenta   Color = 201
)

// Xterm returns the color for an arbitrary 8-bit palette index.
func Xterm(code uint8) Color {
	return Color(code)
}

// Code returns the xterm palette index of the color.
func (c Color) Code() uint8 {
	return uint8(c)
}

// Weight is the font weight of a cell.
type Weight uint8

const (
	Plain Weight = iota
	Bold
)
