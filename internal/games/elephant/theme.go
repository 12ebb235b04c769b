package elephant

import (
	"github.com/vovakirdan/tusk/internal/config"
	"github.com/vovakirdan/tusk/internal/core"
	"github.com/vovakirdan/tusk/internal/games/elephant/puzzle"
)

// Theme holds the runes and colors used to draw a level.
type Theme struct {
	Tree      rune
	Land      rune
	Water     rune
	Crate     rune
	SunkCrate rune
	DoorOpen  rune
	Butt      rune
	Head      [4]rune // indexed by puzzle.Dir

	TreeColor      core.Color
	LandColor      core.Color
	WaterColor     core.Color
	CrateColor     core.Color
	SunkCrateColor core.Color
	DoorColor      core.Color
	TargetColor    core.Color
	ElephantColor  core.Color
	HUDColor       core.Color
}

// DefaultTheme returns the theme of the built-in configuration.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultConfig())
}

// ThemeFromConfig builds a theme from validated glyph and color settings.
func ThemeFromConfig(cfg config.Config) Theme {
	g := cfg.Glyphs
	t := Theme{
		Tree:      config.Rune(g.Tree),
		Land:      config.Rune(g.Land),
		Water:     config.Rune(g.Water),
		Crate:     config.Rune(g.Crate),
		SunkCrate: config.Rune(g.SunkCrate),
		DoorOpen:  config.Rune(g.DoorOpen),
		Butt:      config.Rune(g.Butt),

		TreeColor:      cfg.Color(config.TileTree),
		LandColor:      cfg.Color(config.TileLand),
		WaterColor:     cfg.Color(config.TileWater),
		CrateColor:     cfg.Color(config.TileCrate),
		SunkCrateColor: cfg.Color(config.TileSunkCrate),
		DoorColor:      cfg.Color(config.TileDoor),
		TargetColor:    cfg.Color(config.TileTarget),
		ElephantColor:  cfg.Color(config.TileElephant),
		HUDColor:       cfg.Color(config.TileHUD),
	}

	heads := []rune(g.Head)
	for i := range t.Head {
		t.Head[i] = '?'
		if i < len(heads) {
			t.Head[i] = heads[i]
		}
	}
	return t
}

// HeadRune returns the head glyph for a facing.
func (t Theme) HeadRune(d puzzle.Dir) rune {
	if !d.Valid() {
		return '?'
	}
	return t.Head[d]
}
