// Package puzzle holds the elephant push-puzzle rules.
// It is UI-agnostic and deterministic: every World is an immutable snapshot
// and every transition returns a new World or reports a rejection.
package puzzle

import "fmt"

// Coord is a cell address on the level grid.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the component-wise difference c - other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	return c.Add(d.Delta())
}

// Dir is one of the four unit directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs lists every direction in clockwise order starting at Up.
var Dirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the unit offset of the direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{X: 0, Y: -1}
	case DirRight:
		return Coord{X: 1, Y: 0}
	case DirDown:
		return Coord{X: 0, Y: 1}
	case DirLeft:
		return Coord{X: -1, Y: 0}
	default:
		return Coord{}
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Valid reports whether d is one of the four directions.
func (d Dir) Valid() bool {
	return d <= DirLeft
}

// DirFromDelta returns the direction whose unit offset equals delta.
func DirFromDelta(delta Coord) (Dir, bool) {
	for _, d := range Dirs {
		if d.Delta() == delta {
			return d, true
		}
	}
	return 0, false
}
