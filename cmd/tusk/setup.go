package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tusk/internal/config"
	"github.com/vovakirdan/tusk/internal/core"
	"github.com/vovakirdan/tusk/internal/games/elephant"
	"github.com/vovakirdan/tusk/internal/games/elephant/levels"
	"github.com/vovakirdan/tusk/internal/platform/tui"
	"github.com/vovakirdan/tusk/internal/registry"
	"github.com/vovakirdan/tusk/internal/storage"
)

// Shared state built once by setup before any subcommand runs.
var (
	logger    *log.Logger
	appCfg    config.Config
	appLevels []levels.Level
)

// setup loads the config and the level packs and configures the game.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tusk",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appCfg = cfg

	dir := cfg.Levels.Dir
	if flagLevelsDir != "" {
		dir = flagLevelsDir
	}
	dir = expandHome(dir)

	lvls, err := levels.NewLoader(dir, logger).LoadAll()
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}
	if len(lvls) == 0 {
		return errors.New("no levels found")
	}
	appLevels = lvls

	logger.Debug("configured", "levels", len(lvls), "dir", dir, "tick_rate", cfg.TickRate)

	elephant.Configure(elephant.Setup{
		Levels: lvls,
		Theme:  elephant.ThemeFromConfig(cfg),
	})
	return nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}

// runtimeConfig sizes the first frame from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.TickRate = appCfg.TickRate
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

func keyMap() tui.KeyMap {
	return tui.NewKeyMap(appCfg.Keys)
}

// openStore opens the solves database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
		return nil
	}
	return store
}

// firstUnsolved returns the first loaded level with no recorded solve, or ""
// when every level is solved or the store is unavailable.
func firstUnsolved(store *storage.Store) string {
	if store == nil {
		return ""
	}
	best, err := store.AllBest()
	if err != nil {
		logger.Debug("could not read best solves", "error", err)
		return ""
	}
	for _, l := range appLevels {
		if _, ok := best[l.ID]; !ok {
			return l.ID
		}
	}
	return ""
}

// newGame creates a game that opens on startID, or on the configured start
// level when startID is empty.
func newGame(startID string) (*elephant.Game, error) {
	g, err := registry.Create(elephant.GameID)
	if err != nil {
		return nil, err
	}
	game, ok := g.(*elephant.Game)
	if !ok {
		return nil, fmt.Errorf("unexpected game type %T", g)
	}

	if startID == "" {
		startID = appCfg.Levels.Start
	}
	if startID != "" && !game.SetStartLevel(startID) {
		return nil, fmt.Errorf("%w: %s (run 'tusk list')", levels.ErrNotFound, startID)
	}
	return game, nil
}

// findLevel returns the loaded level with id.
func findLevel(id string) (levels.Level, error) {
	idx := levels.IndexOf(appLevels, id)
	if idx < 0 {
		return levels.Level{}, fmt.Errorf("%w: %s (run 'tusk list')", levels.ErrNotFound, id)
	}
	return appLevels[idx], nil
}
