package core

import "fmt"

// Viewport is a float rectangle given by its top-left corner and size.
// The camera uses it to map level space onto screen cells.
type Viewport struct {
	TopLeft Vec2
	Size    Vec2
}

// NewViewport creates a viewport from its corner and size.
func NewViewport(topLeft, size Vec2) Viewport {
	return Viewport{TopLeft: topLeft, Size: size}
}

// ViewportAround creates a viewport of the given size centered on center.
func ViewportAround(center, size Vec2) Viewport {
	return Viewport{TopLeft: center.Sub(size.Scale(0.5)), Size: size}
}

// String formats the corner and size.
func (r Viewport) String() string {
	return fmt.Sprintf("Viewport(top_left:%v,size:%v)", r.TopLeft, r.Size)
}

// Center returns the middle point.
func (r Viewport) Center() Vec2 {
	return r.TopLeft.Add(r.Size.Scale(0.5))
}

// BottomRight returns the corner opposite TopLeft.
func (r Viewport) BottomRight() Vec2 {
	return r.TopLeft.Add(r.Size)
}

// Contains reports whether p lies inside, edges on the right and bottom
// excluded.
func (r Viewport) Contains(p Vec2) bool {
	br := r.BottomRight()
	return p.X >= r.TopLeft.X && p.X < br.X && p.Y >= r.TopLeft.Y && p.Y < br.Y
}

// WithAspectRatio resizes the viewport to the ratio, keeping its center.
func (r Viewport) WithAspectRatio(ratio float64, mode FitMode) Viewport {
	return ViewportAround(r.Center(), r.Size.WithAspectRatio(ratio, mode))
}

// ToLocal maps p into unit coordinates: TopLeft is (0,0) and BottomRight
// is (1,1).
func (r Viewport) ToLocal(p Vec2) Vec2 {
	d := p.Sub(r.TopLeft)
	return Vec2{X: d.X / r.Size.X, Y: d.Y / r.Size.Y}
}

// FromLocal is the inverse of ToLocal.
func (r Viewport) FromLocal(p Vec2) Vec2 {
	return r.TopLeft.Add(p.Mul(r.Size))
}

// ApproxEqual compares both corners within eps.
func (r Viewport) ApproxEqual(o Viewport, eps float64) bool {
	return r.TopLeft.ApproxEqual(o.TopLeft, eps) && r.Size.ApproxEqual(o.Size, eps)
}

// LerpViewport interpolates corner and size separately.
func LerpViewport(a, b Viewport, t float64) Viewport {
	return Viewport{
		TopLeft: Lerp(a.TopLeft, b.TopLeft, t),
		Size:    Lerp(a.Size, b.Size, t),
	}
}
