package elephant

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tusk/internal/core"
	"github.com/vovakirdan/tusk/internal/games/elephant/puzzle"
)

const (
	hudRows    = 1
	footerRows = 1
	cellAspect = 2.0 // terminal columns per row for a square tile
)

// board returns the screen area the level is drawn into.
func (g *Game) board() core.Rect {
	return core.Rect{W: g.screenW, H: g.screenH}.ShrinkRows(hudRows, footerRows)
}

// camera returns the level box grown to the board's aspect ratio, keeping
// its center, and the resulting number of screen rows per tile.
func (g *Game) camera() (core.Viewport, float64) {
	w := g.World()
	b := g.board()
	if w == nil || b.Empty() {
		return core.Viewport{}, 0
	}

	level := core.Rect{W: w.Layout().Width(), H: w.Layout().Height()}.Viewport()
	cam := level.WithAspectRatio(b.Aspect(cellAspect), core.FitGrow)
	return cam, float64(b.H) / cam.Size.Y
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.seq == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderBoard(dst)
	g.renderHUD(dst)
	g.renderOverlays(dst)
}

// painter decides what each level cell looks like.
type painter struct {
	w       *puzzle.World
	theme   Theme
	targets map[puzzle.Coord]int
}

func newPainter(w *puzzle.World, theme Theme) painter {
	p := painter{w: w, theme: theme, targets: make(map[puzzle.Coord]int)}
	for _, t := range w.Targets() {
		p.targets[t.Pos] = t.Door
	}
	return p
}

// tile returns the cell used to fill a tile and the glyph drawn at its
// center.
func (p painter) tile(c puzzle.Coord) (fill, glyph core.Cell) {
	t := p.theme
	w := p.w
	blank := core.Cell{Rune: ' '}

	switch {
	case c == w.Butt():
		body := core.Cell{Rune: t.Butt, Color: t.ElephantColor}
		return body, body
	case c == w.Head():
		return core.Cell{Rune: t.Butt, Color: t.ElephantColor},
			core.Cell{Rune: t.HeadRune(w.Facing()), Color: t.ElephantColor}
	case w.TreeAt(c):
		tree := core.Cell{Rune: t.Tree, Color: t.TreeColor}
		return tree, tree
	case w.CrateAt(c):
		crate := core.Cell{Rune: t.Crate, Color: t.CrateColor}
		if idx := p.targets[c]; idx > 0 {
			return crate, core.Cell{Rune: puzzle.TargetGlyph(idx, true), Color: t.TargetColor}
		}
		return crate, crate
	}

	if idx := w.DoorAt(c); idx > 0 {
		if w.DoorsClosed(idx) {
			door := core.Cell{Rune: puzzle.DoorGlyph(idx), Color: t.DoorColor}
			return door, door
		}
		return blank, core.Cell{Rune: t.DoorOpen, Color: t.DoorColor}
	}
	if idx := p.targets[c]; idx > 0 {
		return blank, core.Cell{Rune: puzzle.TargetGlyph(idx, false), Color: t.TargetColor}
	}
	if w.WaterAt(c) {
		water := core.Cell{Rune: t.Water, Color: t.WaterColor}
		return water, water
	}
	if !w.Layout().Land.Get(c, false) {
		// Dry ground that is not land: a sunken crate.
		return blank, core.Cell{Rune: t.SunkCrate, Color: t.SunkCrateColor}
	}
	return blank, core.Cell{Rune: t.Land, Color: t.LandColor}
}

// renderBoard samples the camera once per screen cell, then stamps each
// tile's glyph at its center.
func (g *Game) renderBoard(dst *core.Screen) {
	w := g.seq.Current()
	p := newPainter(w, g.theme)
	cam, _ := g.camera()
	b := g.board()

	for row := 0; row < b.H; row++ {
		for col := 0; col < b.W; col++ {
			local := core.V((float64(col)+0.5)/float64(b.W), (float64(row)+0.5)/float64(b.H))
			x, y := cam.FromLocal(local).Floor()
			fill, _ := p.tile(puzzle.C(x, y))
			dst.SetCell(b.X+col, b.Y+row, fill)
		}
	}

	layout := w.Layout()
	for y := 0; y < layout.Height(); y++ {
		for x := 0; x < layout.Width(); x++ {
			_, glyph := p.tile(puzzle.C(x, y))
			center := cam.ToLocal(core.V(float64(x)+0.5, float64(y)+0.5))
			col := b.X + int(center.X*float64(b.W))
			row := b.Y + int(center.Y*float64(b.H))
			dst.SetCell(col, row, glyph)
		}
	}
}

// renderHUD draws the level title, progress and the control hints.
func (g *Game) renderHUD(dst *core.Screen) {
	color := g.theme.HUDColor
	dst.DrawTextColored(1, 0, g.level.Title(), color)

	info := fmt.Sprintf("Level %d/%d  Moves: %d", g.index+1, len(g.levels), g.seq.History().Moves())
	if g.level.Par > 0 {
		info += fmt.Sprintf("  Par: %d", g.level.Par)
	}
	dst.DrawTextColored(g.screenW-utf8.RuneCountInString(info)-1, 0, info, color)

	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	centerX := g.screenW / 2
	centerY := g.screenH / 2

	if g.finished {
		g.drawOverlay(dst, centerX, centerY, "ALL LEVELS COMPLETE!", "Esc: menu | Q: quit")
		return
	}

	if g.solved {
		moves := fmt.Sprintf("Solved in %d moves", g.seq.History().Moves())
		if g.level.Par > 0 {
			moves += fmt.Sprintf(" (par %d)", g.level.Par)
		}
		next := "Enter: next level"
		if g.index >= len(g.levels)-1 {
			next = "Enter: finish"
		}
		g.drawOverlay(dst, centerX, centerY, "LEVEL COMPLETE", moves, next+" | Z: undo")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderError shows why the level could not be loaded.
func (g *Game) renderError(dst *core.Screen) {
	msg := "No level loaded"
	if g.err != nil {
		msg = g.err.Error()
	}
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y, msg, core.ColorBrightRed)
	dst.DrawTextCentered(y+1, "Esc: menu | Q: quit")
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.RectAround(centerX, centerY, boxW, boxH)

	// Clear area behind overlay
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBoxColored(box, g.theme.HUDColor)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, g.theme.HUDColor)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: move | Z: undo | R: reset | Esc: menu | Q: quit"
}

// SunkCrateText is the rune RenderText uses for a sunken crate. It is not a
// level glyph.
const SunkCrateText = '='

// RenderText draws a world one rune per tile in level notation, so a world
// without sunken crates parses back to itself.
func RenderText(w *puzzle.World) string {
	layout := w.Layout()
	targets := make(map[puzzle.Coord]int)
	for _, t := range w.Targets() {
		targets[t.Pos] = t.Door
	}

	var sb strings.Builder
	for y := 0; y < layout.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < layout.Width(); x++ {
			sb.WriteRune(textGlyph(w, targets, puzzle.C(x, y)))
		}
	}
	return sb.String()
}

func textGlyph(w *puzzle.World, targets map[puzzle.Coord]int, c puzzle.Coord) rune {
	switch {
	case c == w.Butt():
		return puzzle.GlyphButt
	case c == w.Head():
		return puzzle.GlyphHead
	case w.TreeAt(c):
		return puzzle.GlyphTree
	}
	if idx := targets[c]; idx > 0 {
		return puzzle.TargetGlyph(idx, w.CrateAt(c))
	}
	if w.CrateAt(c) {
		return puzzle.GlyphCrate
	}
	if idx := w.DoorAt(c); idx > 0 {
		return puzzle.DoorGlyph(idx)
	}
	if !w.Layout().Land.Get(c, false) {
		if w.WaterAt(c) {
			return puzzle.GlyphVoid
		}
		return SunkCrateText
	}
	return puzzle.GlyphLand
}
