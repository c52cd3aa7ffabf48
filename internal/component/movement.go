// internal/component/movement.go
package component

// Position хранит точку на поле
type Position struct {
	X, Y float64
}

// Rect is an axis-aligned box with its origin in the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect builds a square box of the given size around (cx, cy).
func CenteredRect(cx, cy, size float64) Rect {
	return Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

// Intersects reports whether the two boxes overlap.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point lies inside the box.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the centre point of the box.
func (r Rect) Center() Position {
	return Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
