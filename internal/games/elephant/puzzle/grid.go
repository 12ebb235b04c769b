package puzzle

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a fixed-size rectangle of cells stored in row-major order:
// index = y*W + x. A Grid is never modified after construction, so
// snapshots share grids freely.
type Grid[T any] struct {
	w     int
	h     int
	cells []T
}

// NewGrid builds a w×h grid, filling every cell with fill(coord).
func NewGrid[T any](w, h int, fill func(Coord) T) *Grid[T] {
	g := &Grid[T]{
		w:     w,
		h:     h,
		cells: make([]T, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = fill(C(x, y))
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.h
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Get returns the cell at c, or def when c is out of bounds.
func (g *Grid[T]) Get(c Coord, def T) T {
	if !g.InBounds(c) {
		return def
	}
	return g.cells[c.Y*g.w+c.X]
}

// All yields every cell with its coordinate, row by row.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(C(i%g.w, i/g.w), v) {
				return
			}
		}
	}
}

// Find yields the coordinates of matching cells in row-major order, each
// paired with its 0-based match index.
func (g *Grid[T]) Find(pred func(T) bool) iter.Seq2[Coord, int] {
	return func(yield func(Coord, int) bool) {
		n := 0
		for c, v := range g.All() {
			if !pred(v) {
				continue
			}
			if !yield(c, n) {
				return
			}
			n++
		}
	}
}

// Map returns a grid of the same shape with fn applied to every cell.
func Map[T, U any](g *Grid[T], fn func(Coord, T) U) *Grid[U] {
	out := &Grid[U]{
		w:     g.w,
		h:     g.h,
		cells: make([]U, len(g.cells)),
	}
	for i, v := range g.cells {
		out.cells[i] = fn(C(i%g.w, i/g.w), v)
	}
	return out
}

// GridEqual returns true if two grids have the same shape and contents.
func GridEqual[T comparable](a, b *Grid[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.w != b.w || a.h != b.h {
		return false
	}
	for i, v := range a.cells {
		if v != b.cells[i] {
			return false
		}
	}
	return true
}

// FormatError reports malformed level text.
type FormatError struct {
	Line    int // 1-based line number, 0 when not tied to a line
	Message string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("level format: line %d: %s", e.Line, e.Message)
	}
	return "level format: " + e.Message
}

// FromASCII builds a rune grid from text, one cell per rune and one row per
// line. Every line must have the same number of runes.
func FromASCII(text string) (*Grid[rune], error) {
	if text == "" {
		return nil, &FormatError{Message: "empty level"}
	}

	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSuffix(line, "\r"))
	}

	w := len(rows[0])
	if w == 0 {
		return nil, &FormatError{Line: 1, Message: "empty row"}
	}
	for i, row := range rows {
		if len(row) != w {
			return nil, &FormatError{
				Line:    i + 1,
				Message: fmt.Sprintf("row has %d cells, expected %d", len(row), w),
			}
		}
	}

	return NewGrid(w, len(rows), func(c Coord) rune {
		return rows[c.Y][c.X]
	}), nil
}
