// Package config provides YAML-based configuration loading for tusk.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tusk/internal/core"
)

// Config is the top-level tusk configuration.
type Config struct {
	TickRate int                 `yaml:"tick_rate"`
	Levels   LevelsConfig        `yaml:"levels"`
	Keys     map[string][]string `yaml:"keys"`   // action name -> key names
	Glyphs   GlyphConfig         `yaml:"glyphs"` // single runes used by the renderer
	Colors   map[string]string   `yaml:"colors"` // tile kind -> color name
}

// LevelsConfig controls where level packs come from.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`   // extra directory of level packs, searched recursively
	Start string `yaml:"start"` // level id to open first
}

// GlyphConfig defines the runes drawn for each tile kind.
type GlyphConfig struct {
	Tree      string `yaml:"tree"`
	Land      string `yaml:"land"`
	Water     string `yaml:"water"`
	Crate     string `yaml:"crate"`
	SunkCrate string `yaml:"sunk_crate"`
	DoorOpen  string `yaml:"door_open"`
	Butt      string `yaml:"butt"`
	Head      string `yaml:"head"` // four runes: facing up, right, down, left
}

// Tile kinds accepted as keys of Config.Colors.
const (
	TileTree      = "tree"
	TileLand      = "land"
	TileWater     = "water"
	TileCrate     = "crate"
	TileSunkCrate = "sunk_crate"
	TileDoor      = "door"
	TileTarget    = "target"
	TileElephant  = "elephant"
	TileHUD       = "hud"
)

var tileKinds = []string{
	TileTree, TileLand, TileWater, TileCrate, TileSunkCrate,
	TileDoor, TileTarget, TileElephant, TileHUD,
}

// DefaultConfig returns the built-in configuration. It matches
// defaults/tusk.yaml and is used when even the embedded file is unusable.
func DefaultConfig() Config {
	return Config{
		TickRate: 30,
		Keys: map[string][]string{
			"up":      {"up", "w", "k"},
			"down":    {"down", "s", "j"},
			"left":    {"left", "a", "h"},
			"right":   {"right", "d", "l"},
			"undo":    {"z", "u", "backspace"},
			"reset":   {"r"},
			"confirm": {"enter", " "},
			"back":    {"esc", "b"},
			"quit":    {"q", "ctrl+c"},
		},
		Glyphs: GlyphConfig{
			Tree:      "♣",
			Land:      "·",
			Water:     "~",
			Crate:     "▣",
			SunkCrate: "▫",
			DoorOpen:  "░",
			Butt:      "●",
			Head:      "▲▶▼◀",
		},
		Colors: map[string]string{
			TileTree:      "green",
			TileLand:      "gray",
			TileWater:     "blue",
			TileCrate:     "brown",
			TileSunkCrate: "cyan",
			TileDoor:      "bright-red",
			TileTarget:    "bright-yellow",
			TileElephant:  "bright-magenta",
			TileHUD:       "white",
		},
	}
}

// Validate checks values that would break the game at runtime.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate must be in 1..240, got %d", c.TickRate)
	}

	for name, keys := range c.Keys {
		if _, ok := core.ParseAction(name); !ok {
			return fmt.Errorf("config: unknown action %q in keys", name)
		}
		if len(keys) == 0 {
			return fmt.Errorf("config: action %q has no keys", name)
		}
	}

	single := map[string]string{
		"tree":       c.Glyphs.Tree,
		"land":       c.Glyphs.Land,
		"water":      c.Glyphs.Water,
		"crate":      c.Glyphs.Crate,
		"sunk_crate": c.Glyphs.SunkCrate,
		"door_open":  c.Glyphs.DoorOpen,
		"butt":       c.Glyphs.Butt,
	}
	for name, g := range single {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: glyph %s must be a single rune, got %q", name, g)
		}
	}
	if utf8.RuneCountInString(c.Glyphs.Head) != 4 {
		return fmt.Errorf("config: glyph head must be four runes, got %q", c.Glyphs.Head)
	}

	for kind, name := range c.Colors {
		if !knownTile(kind) {
			return fmt.Errorf("config: unknown tile %q in colors", kind)
		}
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown color %q for %s", name, kind)
		}
	}
	return nil
}

func knownTile(kind string) bool {
	for _, k := range tileKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Color returns the configured color of a tile kind.
func (c Config) Color(kind string) core.Color {
	col, _ := core.ParseColor(c.Colors[kind])
	return col
}

// Rune returns the first rune of a glyph string.
func Rune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}
