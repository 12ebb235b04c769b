package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector of float64 components. It is used for camera math
// only; gameplay positions are integer cells.
type Vec2 struct {
	X, Y float64
}

// Common vectors.
var (
	Vec2Zero = Vec2{}
	Vec2One  = Vec2{1, 1}
	Vec2Half = Vec2{0.5, 0.5}
)

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromRadians returns the unit vector at the given angle.
func VecFromRadians(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// String formats v as Vec2(x,y).
func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g,%g)", v.X, v.Y)
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Perp returns v rotated a quarter turn.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns v rotated by rad radians.
func (v Vec2) Rotate(rad float64) Vec2 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// MagSq returns the squared length of v.
func (v Vec2) MagSq() float64 {
	return v.Dot(v)
}

// Mag returns the length of v.
func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Radians returns the angle of v from the positive X axis.
func (v Vec2) Radians() float64 {
	return math.Atan2(v.Y, v.X)
}

// ApproxEqual compares components within eps.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) < eps && math.Abs(v.Y-o.Y) < eps
}

// Floor returns the integer cell containing v.
func (v Vec2) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// FitMode selects how WithAspectRatio reaches the target ratio.
type FitMode uint8

const (
	// FitGrow enlarges one side so the result covers the original.
	FitGrow FitMode = iota
	// FitShrink reduces one side so the result fits inside the original.
	FitShrink
)

// WithAspectRatio returns a size with X/Y equal to ratio, changing only one
// component according to mode.
func (v Vec2) WithAspectRatio(ratio float64, mode FitMode) Vec2 {
	if v.Y == 0 || ratio <= 0 {
		return v
	}
	wider := v.X/v.Y > ratio
	if wider == (mode == FitGrow) {
		return Vec2{X: v.X, Y: v.X / ratio}
	}
	return Vec2{X: v.Y * ratio, Y: v.Y}
}
