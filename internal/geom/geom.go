// Package geom provides the small 2D vector and rectangle types shared by
// the scene model and the label fader.
package geom

import "math"

// Vec2 represents a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Rect is an axis-aligned rectangle stored as a center point and a
// half-extent. The half-extent stays fixed while the center moves.
type Rect struct {
	Center Vec2
	Half   Vec2
}

// RectAt creates a rectangle centered on p with the given half-extent.
func RectAt(p, half Vec2) Rect {
	return Rect{Center: p, Half: half}
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{r.Center.X - r.Half.X, r.Center.Y - r.Half.Y}
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{r.Center.X + r.Half.X, r.Center.Y + r.Half.Y}
}

// Intersects reports whether r and o overlap on both axes.
func (r Rect) Intersects(o Rect) bool {
	return math.Abs(r.Center.X-o.Center.X) < r.Half.X+o.Half.X &&
		math.Abs(r.Center.Y-o.Center.Y) < r.Half.Y+o.Half.Y
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	return math.Abs(p.X-r.Center.X) <= r.Half.X &&
		math.Abs(p.Y-r.Center.Y) <= r.Half.Y
}
