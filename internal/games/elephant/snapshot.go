package elephant

import (
	"github.com/vovakirdan/tusk/internal/core"
	"github.com/vovakirdan/tusk/internal/games/elephant/puzzle"
)

// Snapshot is the read-only view of the game handed to renderers and tests.
type Snapshot struct {
	Tick       uint64
	LevelID    string
	LevelTitle string
	LevelIndex int // 0-based position in the campaign
	LevelCount int
	Par        int

	Width  int
	Height int
	Trees  *puzzle.Grid[bool]
	Land   *puzzle.Grid[bool]
	Doors  *puzzle.Grid[int]
	// DoorOpen maps every door index present in the level to its state.
	DoorOpen map[int]bool

	Crates  []puzzle.Crate
	Targets []puzzle.Target
	Butt    puzzle.Coord
	Head    puzzle.Coord
	Facing  puzzle.Dir

	Moves    int
	Solved   bool
	Finished bool

	// Camera is the level box grown to the board's aspect ratio.
	Camera core.Viewport
}

// Snapshot captures the current world. ok is false when no level is loaded.
func (g *Game) Snapshot() (snap Snapshot, ok bool) {
	w := g.World()
	if w == nil {
		return Snapshot{}, false
	}
	layout := w.Layout()

	open := make(map[int]bool)
	for _, idx := range layout.Doors.All() {
		if idx > 0 {
			open[idx] = !w.DoorsClosed(idx)
		}
	}

	cam, _ := g.camera()
	return Snapshot{
		Tick:       g.tick,
		LevelID:    g.level.ID,
		LevelTitle: g.level.Title(),
		LevelIndex: g.index,
		LevelCount: len(g.levels),
		Par:        g.level.Par,

		Width:    layout.Width(),
		Height:   layout.Height(),
		Trees:    layout.Trees,
		Land:     layout.Land,
		Doors:    layout.Doors,
		DoorOpen: open,

		Crates:  w.Crates(),
		Targets: w.Targets(),
		Butt:    w.Butt(),
		Head:    w.Head(),
		Facing:  w.Facing(),

		Moves:    g.seq.History().Moves(),
		Solved:   g.solved,
		Finished: g.finished,

		Camera: cam,
	}, true
}
