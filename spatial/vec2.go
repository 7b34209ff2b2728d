// Package spatial provides the Vec2 type used to address positions on
// the terminal screen. The origin is the top-left corner with Y
// increasing downwards.
package spatial

// Vec2 is a two-dimensional integer vector with value semantics.
type Vec2 struct {
	X, Y int
}

// Zero returns the (0, 0) vector.
func Zero() Vec2 {
	return Vec2{}
}

// XY constructs a Vec2 from both coordinates.
func XY(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// X constructs a Vec2 with only the x-coordinate set.
func X(x int) Vec2 {
	return Vec2{X: x}
}

// Y constructs a Vec2 with only the y-coordinate set.
func Y(y int) Vec2 {
	return Vec2{Y: y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add returns v + o componentwise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o componentwise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the componentwise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the componentwise quotient of v and o.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Scale returns v scaled by n.
func (v Vec2) Scale(n int) Vec2 {
	return Vec2{X: v.X * n, Y: v.Y * n}
}

// DivScale returns v divided by n.
func (v Vec2) DivScale(n int) Vec2 {
	return Vec2{X: v.X / n, Y: v.Y / n}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Clear zeroes both components in place.
func (v *Vec2) Clear() {
	v.X = 0
	v.Y = 0
}
