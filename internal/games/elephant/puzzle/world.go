package puzzle

import "slices"

// Crate is a pushable box. A crate pushed onto water sinks: it becomes
// InWater, fills the hole as walkable ground and is never pushed again.
type Crate struct {
	Pos     Coord
	InWater bool
}

// Target is a pressure plate bound to the doors sharing its index.
type Target struct {
	Pos  Coord
	Door int // door index, 1-9
}

// Layout is the static part of a level. It is built once per level and
// shared by every World derived from it.
type Layout struct {
	Trees   *Grid[bool]
	Land    *Grid[bool]
	Doors   *Grid[int] // 0 means no door
	Targets []Target
}

// Width returns the level width in cells.
func (l *Layout) Width() int {
	return l.Land.Width()
}

// Height returns the level height in cells.
func (l *Layout) Height() int {
	return l.Land.Height()
}

// Equal returns true if both layouts describe the same level.
func (l *Layout) Equal(other *Layout) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	return GridEqual(l.Trees, other.Trees) &&
		GridEqual(l.Land, other.Land) &&
		GridEqual(l.Doors, other.Doors) &&
		slices.Equal(l.Targets, other.Targets)
}

// World is an immutable snapshot of a level in play.
type World struct {
	layout *Layout
	crates []Crate
	butt   Coord
	facing Dir
}

// NewWorld assembles a world. The crates slice is copied.
func NewWorld(layout *Layout, crates []Crate, butt Coord, facing Dir) *World {
	return &World{
		layout: layout,
		crates: slices.Clone(crates),
		butt:   butt,
		facing: facing,
	}
}

// Layout returns the shared static level data.
func (w *World) Layout() *Layout {
	return w.layout
}

// Crates returns a copy of the crate list.
func (w *World) Crates() []Crate {
	return slices.Clone(w.crates)
}

// Targets returns the level's targets.
func (w *World) Targets() []Target {
	return slices.Clone(w.layout.Targets)
}

// Butt returns the elephant's anchor cell.
func (w *World) Butt() Coord {
	return w.butt
}

// Head returns the elephant's head cell, always Butt stepped by Facing.
func (w *World) Head() Coord {
	return w.butt.Step(w.facing)
}

// Facing returns the elephant's orientation.
func (w *World) Facing() Dir {
	return w.facing
}

// dryCrateAt returns the index of the non-submerged crate at c, or -1.
func (w *World) dryCrateAt(c Coord) int {
	for i, cr := range w.crates {
		if !cr.InWater && cr.Pos == c {
			return i
		}
	}
	return -1
}

// CrateAt reports whether a non-submerged crate sits on c.
func (w *World) CrateAt(c Coord) bool {
	return w.dryCrateAt(c) >= 0
}

// TreeAt reports whether c holds a tree.
func (w *World) TreeAt(c Coord) bool {
	return w.layout.Trees.Get(c, false)
}

// DoorAt returns the door index at c, or 0.
func (w *World) DoorAt(c Coord) int {
	return w.layout.Doors.Get(c, 0)
}

// WaterAt reports whether c is water. Cells outside the level are water; a
// sunken crate turns its water cell into ground.
func (w *World) WaterAt(c Coord) bool {
	if w.layout.Land.Get(c, false) {
		return false
	}
	for _, cr := range w.crates {
		if cr.InWater && cr.Pos == c {
			return false
		}
	}
	return true
}

// DoorsClosed reports whether doors with the given index block movement.
// They are open only when every bound target is covered; an index with no
// targets never opens.
func (w *World) DoorsClosed(index int) bool {
	bound := false
	for _, t := range w.layout.Targets {
		if t.Door != index {
			continue
		}
		bound = true
		if !w.CrateAt(t.Pos) {
			return true
		}
	}
	return !bound
}

// ObstacleAt reports whether c blocks movement: a tree or a closed door.
// Cells outside the level are open.
func (w *World) ObstacleAt(c Coord) bool {
	if w.TreeAt(c) {
		return true
	}
	door := w.DoorAt(c)
	return door > 0 && w.DoorsClosed(door)
}

// PushAt resolves something at pos being shoved in dir. It fails when pos is
// an obstacle, or when a crate there cannot move into the next cell.
// Crates never push other crates. With nothing to push the receiver itself
// is returned.
func (w *World) PushAt(pos Coord, dir Dir) (*World, bool) {
	if w.ObstacleAt(pos) {
		return nil, false
	}

	i := w.dryCrateAt(pos)
	if i < 0 {
		return w, true
	}

	dst := pos.Step(dir)
	if w.ObstacleAt(dst) || w.CrateAt(dst) {
		return nil, false
	}

	crates := slices.Clone(w.crates)
	crates[i] = Crate{Pos: dst, InWater: w.WaterAt(dst)}

	return &World{
		layout: w.layout,
		crates: crates,
		butt:   w.butt,
		facing: w.facing,
	}, true
}

// withElephant returns a copy with a new pose. The crate list is shared
// since neither world ever writes to it.
func (w *World) withElephant(butt Coord, facing Dir) *World {
	return &World{
		layout: w.layout,
		crates: w.crates,
		butt:   butt,
		facing: facing,
	}
}

// CheckElephantPos reports whether the elephant stands legally: its butt is
// not in water and neither of its cells is an obstacle. The head may hang
// over water.
func (w *World) CheckElephantPos() bool {
	if w.WaterAt(w.butt) {
		return false
	}
	return !w.ObstacleAt(w.butt) && !w.ObstacleAt(w.Head())
}

// AfterInput applies one directional input and returns the resulting world.
// The input moves the elephant forward when it matches the facing, backward
// when it is the opposite, and otherwise rotates the head around the butt.
// The receiver is never modified; ok is false when the move is rejected.
func (w *World) AfterInput(dir Dir) (next *World, ok bool) {
	if !dir.Valid() {
		return nil, false
	}

	switch dir {
	case w.facing:
		next, ok = w.PushAt(w.Head().Step(dir), dir)
		if !ok {
			return nil, false
		}
		next = next.withElephant(w.butt.Step(dir), w.facing)

	case w.facing.Opposite():
		next, ok = w.PushAt(w.butt.Step(dir), dir)
		if !ok {
			return nil, false
		}
		next = next.withElephant(w.butt.Step(dir), w.facing)

	default:
		// The head sweeps through the diagonal cell, then lands beside the butt.
		next, ok = w.PushAt(w.Head().Step(dir), dir)
		if !ok {
			return nil, false
		}
		next, ok = next.PushAt(w.butt.Step(dir), w.facing.Opposite())
		if !ok {
			return nil, false
		}
		next = next.withElephant(w.butt, dir)
	}

	if !next.CheckElephantPos() {
		return nil, false
	}
	return next, true
}

// Solved reports whether every target is covered by a crate.
// A level without targets is never solved.
func (w *World) Solved() bool {
	if len(w.layout.Targets) == 0 {
		return false
	}
	for _, t := range w.layout.Targets {
		if !w.CrateAt(t.Pos) {
			return false
		}
	}
	return true
}

// Equal reports structural equality of two worlds.
func (w *World) Equal(other *World) bool {
	if w == other {
		return true
	}
	if w == nil || other == nil {
		return false
	}
	return w.butt == other.butt &&
		w.facing == other.facing &&
		slices.Equal(w.crates, other.crates) &&
		w.layout.Equal(other.layout)
}
