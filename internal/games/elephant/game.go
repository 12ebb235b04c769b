// Package elephant adapts the puzzle rules to the terminal platform: it turns
// input frames into queued commands, walks a campaign of levels and draws the
// current world into a core.Screen.
package elephant

import (
	"sync"

	"github.com/vovakirdan/tusk/internal/core"
	"github.com/vovakirdan/tusk/internal/games/elephant/levels"
	"github.com/vovakirdan/tusk/internal/games/elephant/puzzle"
	"github.com/vovakirdan/tusk/internal/registry"
)

// GameID is the registry id of the elephant game.
const GameID = "elephant"

// Setup is the process-wide configuration used by registry-created games.
type Setup struct {
	Levels []levels.Level // empty means the embedded packs
	Theme  Theme
}

var (
	setupMu sync.RWMutex
	setup   = Setup{Theme: DefaultTheme()}
)

// Configure replaces the setup used by games created from now on.
func Configure(s Setup) {
	setupMu.Lock()
	defer setupMu.Unlock()
	setup = s
}

func currentSetup() Setup {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return setup
}

func init() {
	registry.Register(GameID, func() registry.Game {
		s := currentSetup()
		return New(s.Levels, s.Theme)
	})
}

// Game implements the elephant push-puzzle campaign.
type Game struct {
	levels []levels.Level
	theme  Theme
	start  string

	index    int
	level    levels.Level
	seq      *puzzle.Sequencer
	err      error // layout error of the current level
	tick     uint64
	solved   bool
	reported bool // a solve of this level load was already reported
	finished bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game over the given levels. With no levels the embedded
// packs are used.
func New(lvls []levels.Level, theme Theme) *Game {
	if len(lvls) == 0 {
		//nolint:errcheck // Embedded packs have no directory to walk
		lvls, _ = levels.NewLoader("", nil).LoadAll()
	}
	return &Game{
		levels: lvls,
		theme:  theme,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tusk"
}

// SetStartLevel selects the level opened by the next Reset.
// It returns false if no level has that id.
func (g *Game) SetStartLevel(id string) bool {
	if levels.IndexOf(g.levels, id) < 0 {
		return false
	}
	g.start = id
	return true
}

// Levels returns the campaign in play order.
func (g *Game) Levels() []levels.Level {
	return g.levels
}

// Reset loads the start level (or the first one) with a fresh history.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.finished = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	idx := 0
	if g.start != "" {
		idx = max(levels.IndexOf(g.levels, g.start), 0)
	}
	g.load(idx)
}

// Resize updates the screen dimensions without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// load switches to level idx. A layout error leaves the game without a
// sequencer; Err reports it.
func (g *Game) load(idx int) {
	g.index = idx
	g.seq = nil
	g.solved = false
	g.reported = false
	g.err = nil

	if idx < 0 || idx >= len(g.levels) {
		g.level = levels.Level{}
		g.err = levels.ErrNotFound
		return
	}

	g.level = g.levels[idx]
	w, err := g.level.World()
	if err != nil {
		g.err = err
		return
	}
	g.seq = puzzle.NewSequencer(w)
	g.seq.HoldWhenSolved(true)
	g.checkScreenSize()
}

// Err returns the error that prevented the current level from loading.
func (g *Game) Err() error {
	return g.err
}

// checkScreenSize checks whether a level tile gets at least one row.
func (g *Game) checkScreenSize() {
	g.tooSmall = false
	if g.seq == nil {
		return
	}
	_, scale := g.camera()
	g.tooSmall = scale < 1
}

// Step queues the frame's actions as commands and applies the whole queue.
// Moves made while the level is solved are dropped, judged per command
// against the world they would apply to. Solved is reported once per level
// load: undoing out of a solved state and solving again is not a new solve.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.seq == nil || g.finished {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if cmd, ok := command(a); ok {
			g.seq.Enqueue(cmd)
		}
	}
	res := g.seq.Drain()
	g.solved = g.seq.Current().Solved()

	result := core.StepResult{
		Applied:  res.Applied,
		Rejected: res.Rejected,
		Solved:   res.Solved && !g.reported,
	}
	if result.Solved {
		g.reported = true
	}

	if g.solved && in.Has(core.ActionConfirm) {
		g.advance()
	}

	result.State = g.State()
	return result
}

// command maps an action to a puzzle command.
func command(a core.Action) (puzzle.Command, bool) {
	switch a {
	case core.ActionUp:
		return puzzle.Move(puzzle.DirUp), true
	case core.ActionDown:
		return puzzle.Move(puzzle.DirDown), true
	case core.ActionLeft:
		return puzzle.Move(puzzle.DirLeft), true
	case core.ActionRight:
		return puzzle.Move(puzzle.DirRight), true
	case core.ActionUndo:
		return puzzle.Undo(), true
	case core.ActionReset:
		return puzzle.Reset(), true
	}
	return puzzle.Command{}, false
}

// advance moves to the next level, or finishes the campaign.
func (g *Game) advance() {
	if g.index >= len(g.levels)-1 {
		g.finished = true
		return
	}
	g.load(g.index + 1)
}

// World returns the current world, or nil if the level failed to load.
func (g *Game) World() *puzzle.World {
	if g.seq == nil {
		return nil
	}
	return g.seq.Current()
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		LevelID:   g.level.ID,
		LevelName: g.level.Name,
		Solved:    g.solved,
		Finished:  g.finished,
	}
	if g.seq != nil {
		st.Moves = g.seq.History().Moves()
	}
	return st
}
