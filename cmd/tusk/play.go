package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tusk/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play starting at a level",
	Long: `Start playing at the given level, at the configured start level, or at
the first level without a recorded solve.
Solving a level and pressing Enter moves on to the next one.

Controls (defaults, see the keys section of tusk.yaml):
  Arrows/WASD/HJKL - Move or turn
  Z/U/Backspace    - Undo
  R                - Restart level (undoable)
  Enter/Space      - Next level (when solved)
  Esc/B            - Back
  Ctrl+S           - Screenshot to ~/.tusk/screenshots
  Q/Ctrl+C         - Quit

Examples:
  tusk play
  tusk play gate
  tusk play --levels ./my-packs cellar-1`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	var levelID string
	if len(args) == 1 {
		levelID = args[0]
	}

	store := openStore()
	if levelID == "" && appCfg.Levels.Start == "" {
		levelID = firstUnsolved(store)
	}

	game, err := newGame(levelID)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), keyMap())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
