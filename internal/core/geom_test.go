package core

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 15}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(10, 5, 6, 4)
	if r != (Rect{X: 7, Y: 3, W: 6, H: 4}) {
		t.Errorf("RectAround = %+v", r)
	}
	if r.Right() != 13 || r.Bottom() != 7 {
		t.Errorf("edges = %d,%d, expected 13,7", r.Right(), r.Bottom())
	}
}

func TestRectShrinkRows(t *testing.T) {
	tests := []struct {
		name        string
		r           Rect
		top, bottom int
		expected    Rect
	}{
		{"hud and footer", Rect{W: 80, H: 24}, 1, 1, Rect{Y: 1, W: 80, H: 22}},
		{"no change", Rect{X: 2, Y: 3, W: 4, H: 5}, 0, 0, Rect{X: 2, Y: 3, W: 4, H: 5}},
		{"too short", Rect{W: 10, H: 1}, 1, 1, Rect{Y: 1, W: 10, H: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.ShrinkRows(tc.top, tc.bottom); got != tc.expected {
				t.Errorf("ShrinkRows(%d, %d) = %+v, expected %+v", tc.top, tc.bottom, got, tc.expected)
			}
		})
	}
}

func TestRectAspect(t *testing.T) {
	r := Rect{W: 80, H: 20}
	if got := r.Aspect(2); got != 2 {
		t.Errorf("Aspect(2) = %f, expected 2", got)
	}
	if got := (Rect{W: 80}).Aspect(2); got != 0 {
		t.Errorf("empty Aspect = %f, expected 0", got)
	}
}

func TestRectCentered(t *testing.T) {
	outer := Rect{W: 20, H: 10}
	if inner := outer.Centered(6, 4); inner != (Rect{X: 7, Y: 3, W: 6, H: 4}) {
		t.Errorf("Centered(6, 4) = %+v", inner)
	}

	big := outer.Centered(30, 10)
	if big.X != -5 || big.W != 30 {
		t.Errorf("oversized Centered = %+v", big)
	}
}

func TestRectViewport(t *testing.T) {
	v := Rect{X: 1, Y: 2, W: 3, H: 4}.Viewport()
	want := NewViewport(V(1, 2), V(3, 4))
	if !v.ApproxEqual(want, 1e-9) {
		t.Errorf("Viewport() = %v, want %v", v, want)
	}
}
