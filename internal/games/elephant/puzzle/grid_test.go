package puzzle

import (
	"errors"
	"testing"
)

func TestGridGet(t *testing.T) {
	g := NewGrid(3, 2, func(c Coord) int { return c.Y*10 + c.X })

	tests := []struct {
		coord Coord
		want  int
	}{
		{C(0, 0), 0},
		{C(2, 0), 2},
		{C(1, 1), 11},
		{C(-1, 0), -1},
		{C(3, 0), -1},
		{C(0, 2), -1},
		{C(0, -5), -1},
	}

	for _, tt := range tests {
		if got := g.Get(tt.coord, -1); got != tt.want {
			t.Errorf("Get(%v) = %d, want %d", tt.coord, got, tt.want)
		}
	}
}

func TestGridMapPreservesShape(t *testing.T) {
	g := NewGrid(4, 3, func(c Coord) int { return c.X + c.Y })
	m := Map(g, func(c Coord, v int) bool { return v%2 == 0 })

	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("Map shape = %dx%d, want 4x3", m.Width(), m.Height())
	}
	for c, v := range m.All() {
		if want := (c.X+c.Y)%2 == 0; v != want {
			t.Errorf("Map at %v = %v, want %v", c, v, want)
		}
	}
}

func TestGridFindOrderAndIndex(t *testing.T) {
	g, err := FromASCII("a.a\n.a.\naa.")
	if err != nil {
		t.Fatalf("FromASCII: %v", err)
	}

	want := []Coord{C(0, 0), C(2, 0), C(1, 1), C(0, 2), C(1, 2)}
	var got []Coord
	for c, n := range g.Find(func(r rune) bool { return r == 'a' }) {
		if n != len(got) {
			t.Errorf("match %v has index %d, want %d", c, n, len(got))
		}
		got = append(got, c)
	}

	if len(got) != len(want) {
		t.Fatalf("Find returned %d matches, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGridFindStopsEarly(t *testing.T) {
	g := NewGrid(5, 5, func(Coord) bool { return true })

	count := 0
	for range g.Find(func(v bool) bool { return v }) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("iteration count = %d, want 3", count)
	}
}

func TestFromASCII(t *testing.T) {
	g, err := FromASCII("ab\r\ncd")
	if err != nil {
		t.Fatalf("FromASCII: %v", err)
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", g.Width(), g.Height())
	}
	if got := g.Get(C(1, 1), 0); got != 'd' {
		t.Errorf("Get(1,1) = %q, want 'd'", got)
	}

	// Multi-byte runes count as one cell.
	g, err = FromASCII("①.\n.❶")
	if err != nil {
		t.Fatalf("FromASCII unicode: %v", err)
	}
	if g.Width() != 2 {
		t.Errorf("unicode width = %d, want 2", g.Width())
	}
}

func TestFromASCIIErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"empty", "", 0},
		{"empty first row", "\nab", 1},
		{"ragged", "abc\nab\nabc", 2},
		{"trailing newline", "ab\nab\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromASCII(tt.text)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("FromASCII(%q) error = %v, want *FormatError", tt.text, err)
			}
			if fe.Line != tt.line {
				t.Errorf("line = %d, want %d", fe.Line, tt.line)
			}
		})
	}
}

func TestGridEqual(t *testing.T) {
	a, _ := FromASCII("ab\ncd")
	b, _ := FromASCII("ab\ncd")
	c, _ := FromASCII("ab\ncx")
	d, _ := FromASCII("abcd")

	if !GridEqual(a, b) {
		t.Error("identical grids should be equal")
	}
	if GridEqual(a, c) {
		t.Error("grids with different cells should differ")
	}
	if GridEqual(a, d) {
		t.Error("grids with different shapes should differ")
	}
}
