package puzzle

import (
	"fmt"
	"strings"
)

// Level glyphs.
const (
	GlyphTree  = '#'
	GlyphVoid  = 'x'
	GlyphLand  = '.'
	GlyphCrate = 'c'
	GlyphButt  = 'e'
	GlyphHead  = 'f'
)

const (
	targetBase      = '①' // U+2460, targets ①..⑨
	targetCrateBase = '❶' // U+2776, targets ❶..❾ with a crate placed on them
	maxDoorIndex    = 9
)

// doorIndex returns the door index for a door digit, or 0.
func doorIndex(r rune) int {
	if r >= '1' && r <= '9' {
		return int(r - '0')
	}
	return 0
}

// targetIndex returns the door index bound to a target glyph and whether the
// glyph also places a crate. index is 0 when r is not a target.
func targetIndex(r rune) (index int, withCrate bool) {
	switch {
	case r >= targetBase && r < targetBase+maxDoorIndex:
		return int(r-targetBase) + 1, false
	case r >= targetCrateBase && r < targetCrateBase+maxDoorIndex:
		return int(r-targetCrateBase) + 1, true
	}
	return 0, false
}

// TargetGlyph returns the glyph of a target bound to door index, filled when
// covered.
func TargetGlyph(index int, covered bool) rune {
	if index < 1 || index > maxDoorIndex {
		return '?'
	}
	if covered {
		return targetCrateBase + rune(index-1)
	}
	return targetBase + rune(index-1)
}

// DoorGlyph returns the digit used for door index.
func DoorGlyph(index int) rune {
	if index < 1 || index > maxDoorIndex {
		return '?'
	}
	return '0' + rune(index)
}

func knownGlyph(r rune) bool {
	switch r {
	case GlyphTree, GlyphVoid, GlyphLand, GlyphCrate, GlyphButt, GlyphHead:
		return true
	}
	if doorIndex(r) > 0 {
		return true
	}
	idx, _ := targetIndex(r)
	return idx > 0
}

// ParseLevel builds the initial world from level text. Leading and trailing
// blank lines are ignored.
func ParseLevel(text string) (*World, error) {
	cells, err := FromASCII(strings.Trim(text, "\r\n"))
	if err != nil {
		return nil, err
	}

	for c, r := range cells.All() {
		if !knownGlyph(r) {
			return nil, &FormatError{
				Line:    c.Y + 1,
				Message: fmt.Sprintf("unknown glyph %q at column %d", r, c.X+1),
			}
		}
	}

	butt, err := findSingle(cells, GlyphButt)
	if err != nil {
		return nil, err
	}
	head, err := findSingle(cells, GlyphHead)
	if err != nil {
		return nil, err
	}
	facing, ok := DirFromDelta(head.Sub(butt))
	if !ok {
		return nil, &FormatError{
			Line:    head.Y + 1,
			Message: fmt.Sprintf("head %s is not adjacent to butt %s", head, butt),
		}
	}

	layout := &Layout{
		Trees: Map(cells, func(_ Coord, r rune) bool { return r == GlyphTree }),
		Land:  Map(cells, func(_ Coord, r rune) bool { return r != GlyphVoid }),
		Doors: Map(cells, func(_ Coord, r rune) int { return doorIndex(r) }),
	}

	var crates []Crate
	for c, r := range cells.All() {
		if r == GlyphCrate {
			crates = append(crates, Crate{Pos: c})
			continue
		}
		idx, withCrate := targetIndex(r)
		if idx == 0 {
			continue
		}
		layout.Targets = append(layout.Targets, Target{Pos: c, Door: idx})
		if withCrate {
			crates = append(crates, Crate{Pos: c})
		}
	}

	return NewWorld(layout, crates, butt, facing), nil
}

// findSingle returns the position of the only cell holding glyph.
func findSingle(cells *Grid[rune], glyph rune) (Coord, error) {
	var pos Coord
	found := false
	for c, n := range cells.Find(func(r rune) bool { return r == glyph }) {
		if n > 0 {
			return Coord{}, &FormatError{
				Line:    c.Y + 1,
				Message: fmt.Sprintf("duplicate %q, first at %s", glyph, pos),
			}
		}
		pos, found = c, true
	}
	if !found {
		return Coord{}, &FormatError{Message: fmt.Sprintf("missing %q", glyph)}
	}
	return pos, nil
}
