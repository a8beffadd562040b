// Package core provides the fundamental types shared by the simulation and
// the platform layer: geometry, the screen buffer, input frames, and the
// runtime configuration handed to a match. It has no external dependencies
// (especially no Bubble Tea) so game logic stays pure and testable.
package core

// FRect is an axis-aligned rectangle in world units, anchored at its top-left
// corner. The simulation runs in continuous world coordinates; the render
// pass projects them onto the character screen.
type FRect struct {
	X, Y float64
	W, H float64
}

// NewFRect creates a rectangle with the given position and dimensions.
func NewFRect(x, y, w, h float64) FRect {
	return FRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r FRect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether the two rectangles overlap. Rectangles that merely
// touch along an edge do not overlap.
func (r FRect) Overlaps(other FRect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Rect is an axis-aligned rectangle in screen cells, used by drawing helpers.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a cell rectangle with the given position and dimensions.
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

// Clamp restricts an integer to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 to [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
