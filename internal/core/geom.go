// Package core provides the value types shared by games and the terminal
// platform: screen buffers, input frames, geometry and runtime settings.
// It has no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// RectAround returns a w×h rectangle whose center is (cx, cy).
func RectAround(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) is inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// ShrinkRows drops top rows from the top and bottom rows from the bottom.
// The height never goes below zero.
func (r Rect) ShrinkRows(top, bottom int) Rect {
	r.Y += top
	r.H = max(r.H-top-bottom, 0)
	return r
}

// Aspect returns width over height measured in square units, where one
// cell is cellAspect times taller than it is wide. An empty rect gives 0.
func (r Rect) Aspect(cellAspect float64) float64 {
	if r.Empty() {
		return 0
	}
	return float64(r.W) / cellAspect / float64(r.H)
}

// Viewport converts the rectangle to float coordinates.
func (r Rect) Viewport() Viewport {
	return NewViewport(V(float64(r.X), float64(r.Y)), V(float64(r.W), float64(r.H)))
}
