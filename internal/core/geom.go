// Package core provides fundamental types shared by the simulation and the
// frontends. It has no terminal or window dependencies so game logic stays
// pure and testable.
package core

import "math"

// Box is an axis-aligned rectangle in board units, described by its edges.
// Y grows downward.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAt creates a box from its top-left corner and dimensions.
func BoxAt(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Offset returns the box moved by (dx, dy).
func (b Box) Offset(dx, dy float64) Box {
	return Box{Left: b.Left + dx, Top: b.Top + dy, Right: b.Right + dx, Bottom: b.Bottom + dy}
}

// Span is a horizontal interval [Left, Right].
type Span struct {
	Left, Right float64
}

// Width returns the length of the interval.
func (s Span) Width() float64 {
	return s.Right - s.Left
}

// Fits reports whether the box lies strictly inside the span.
// Touching either edge does not fit.
func (s Span) Fits(b Box) bool {
	return b.Left > s.Left && b.Right < s.Right
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
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

// CellRect projects a box in board units onto screen cells of the given
// size. Origin and extent are rounded to the nearest cell; the result is at
// least one cell in each direction.
func CellRect(b Box, cellW, cellH float64) Rect {
	return Rect{
		X: int(math.Round(b.Left / cellW)),
		Y: int(math.Round(b.Top / cellH)),
		W: Max(int(math.Round(b.Width()/cellW)), 1),
		H: Max(int(math.Round(b.Height()/cellH)), 1),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
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
