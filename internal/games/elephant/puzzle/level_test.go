package puzzle

import (
	"errors"
	"strings"
	"testing"
)

const sampleLevel = `
xxxxxxxxxxxx
x..........x
x.ef.c..①..x
x....##....x
x..c....1..x
x.....❷.2..x
x.②...xx...x
x..........x
xxxxxxxxxxxx
`

func mustParse(t *testing.T, text string) *World {
	t.Helper()
	w, err := ParseLevel(text)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	return w
}

func TestParseSampleLevel(t *testing.T) {
	w := mustParse(t, sampleLevel)

	if w.Layout().Width() != 12 || w.Layout().Height() != 9 {
		t.Errorf("size = %dx%d, want 12x9", w.Layout().Width(), w.Layout().Height())
	}
	if w.Butt() != C(2, 2) {
		t.Errorf("butt = %v, want (2,2)", w.Butt())
	}
	if w.Facing() != DirRight {
		t.Errorf("facing = %v, want Right", w.Facing())
	}
	if w.Head() != C(3, 2) {
		t.Errorf("head = %v, want (3,2)", w.Head())
	}

	wantCrates := []Crate{{Pos: C(5, 2)}, {Pos: C(3, 4)}, {Pos: C(6, 5)}}
	crates := w.Crates()
	if len(crates) != len(wantCrates) {
		t.Fatalf("crates = %v, want %v", crates, wantCrates)
	}
	for i := range wantCrates {
		if crates[i] != wantCrates[i] {
			t.Errorf("crate %d = %v, want %v", i, crates[i], wantCrates[i])
		}
	}

	wantTargets := []Target{
		{Pos: C(8, 2), Door: 1},
		{Pos: C(6, 5), Door: 2},
		{Pos: C(2, 6), Door: 2},
	}
	targets := w.Targets()
	if len(targets) != len(wantTargets) {
		t.Fatalf("targets = %v, want %v", targets, wantTargets)
	}
	for i := range wantTargets {
		if targets[i] != wantTargets[i] {
			t.Errorf("target %d = %v, want %v", i, targets[i], wantTargets[i])
		}
	}

	cells := []struct {
		coord Coord
		tree  bool
		water bool
		door  int
	}{
		{C(0, 0), false, true, 0},
		{C(1, 1), false, false, 0},
		{C(5, 3), true, false, 0},
		{C(8, 4), false, false, 1},
		{C(8, 5), false, false, 2},
		{C(6, 6), false, true, 0},
		{C(2, 2), false, false, 0}, // the elephant stands on land
		{C(-1, 4), false, true, 0},
	}
	for _, c := range cells {
		if got := w.TreeAt(c.coord); got != c.tree {
			t.Errorf("TreeAt(%v) = %v, want %v", c.coord, got, c.tree)
		}
		if got := w.WaterAt(c.coord); got != c.water {
			t.Errorf("WaterAt(%v) = %v, want %v", c.coord, got, c.water)
		}
		if got := w.DoorAt(c.coord); got != c.door {
			t.Errorf("DoorAt(%v) = %d, want %d", c.coord, got, c.door)
		}
	}

	if !w.DoorsClosed(1) {
		t.Error("door 1 should start closed")
	}
	if !w.DoorsClosed(2) {
		t.Error("door 2 should start closed: only one of its targets is covered")
	}
	if w.Solved() {
		t.Error("sample level should not start solved")
	}
}

func TestParseLevelFacing(t *testing.T) {
	tests := []struct {
		text   string
		facing Dir
	}{
		{"ef", DirRight},
		{"fe", DirLeft},
		{"e\nf", DirDown},
		{"f\ne", DirUp},
	}

	for _, tt := range tests {
		w := mustParse(t, tt.text)
		if w.Facing() != tt.facing {
			t.Errorf("ParseLevel(%q) facing = %v, want %v", tt.text, w.Facing(), tt.facing)
		}
		if w.Head() != w.Butt().Step(w.Facing()) {
			t.Errorf("ParseLevel(%q) head %v is not butt+facing", tt.text, w.Head())
		}
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		message string
	}{
		{"missing butt", "..f", "missing"},
		{"missing head", "e..", "missing"},
		{"duplicate butt", "ef.\ne..", "duplicate"},
		{"duplicate head", "eff", "duplicate"},
		{"head not adjacent", "e.f", "not adjacent"},
		{"head diagonal", "e.\n.f", "not adjacent"},
		{"ragged rows", "ef.\n..", "cells"},
		{"unknown glyph", "ef?", "unknown glyph"},
		{"zero door", "ef0", "unknown glyph"},
		{"empty", "\n\n", "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel(tt.text)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("ParseLevel(%q) error = %v, want *FormatError", tt.text, err)
			}
			if !strings.Contains(fe.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", fe.Error(), tt.message)
			}
		})
	}
}

func TestParseLevelCrateOnTarget(t *testing.T) {
	w := mustParse(t, "ef❸.3")

	if !w.CrateAt(C(2, 0)) {
		t.Error("filled target should place a crate")
	}
	if w.DoorsClosed(3) {
		t.Error("door 3 should start open")
	}
	if !w.Solved() {
		t.Error("level with every target covered should report solved")
	}
}

func TestGlyphHelpers(t *testing.T) {
	if got := TargetGlyph(3, false); got != '③' {
		t.Errorf("TargetGlyph(3, false) = %q, want '③'", got)
	}
	if got := TargetGlyph(9, true); got != '❾' {
		t.Errorf("TargetGlyph(9, true) = %q, want '❾'", got)
	}
	if got := DoorGlyph(7); got != '7' {
		t.Errorf("DoorGlyph(7) = %q, want '7'", got)
	}
	if got := DoorGlyph(0); got != '?' {
		t.Errorf("DoorGlyph(0) = %q, want '?'", got)
	}
}
