// Package core provides the small shared vocabulary of the game: board
// geometry, the cell buffer renderers draw into, and the input events the
// platform layer forwards to the simulation. It has no third-party imports
// so the simulation stays pure and testable.
package core

// Rect is an axis-aligned bounding box in board units.
// Edges are half-open: a rect covers [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Scale maps a rectangle from board units into a target grid, where one
// grid cell covers sx × sy board units. The result always keeps at least
// one cell in each dimension so thin objects stay visible.
func (r Rect) Scale(sx, sy float64) Rect {
	x0 := int(float64(r.X) / sx)
	y0 := int(float64(r.Y) / sy)
	x1 := int(float64(r.Right()) / sx)
	y1 := int(float64(r.Bottom()) / sy)
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// ClampF limits val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
