package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tusk/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels interactively",
	Long: `Start tusk in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level, Tab for the
scoreboard. Esc in a level returns to the menu.

Examples:
  tusk menu
  tusk menu --db ./tusk.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	keys := keyMap()

	for {
		menuResult, err := tui.RunMenu(appLevels, store, cfg, keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsScoreboard:
			goBack, err := tui.RunScoreboard(appLevels, store, keyMap(), "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			game, err := newGame(menuResult.LevelID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			logger.Debug("starting level", "level", menuResult.LevelID)

			backToMenu, err := tui.Run(game, store, cfg, keys)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !backToMenu {
				return
			}
		}
	}
}
