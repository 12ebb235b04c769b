// tusk is a terminal push puzzle: steer a two-cell elephant around a meadow
// and shove crates onto their targets.
//
// Usage:
//
//	tusk list                     - List levels with par and best solves
//	tusk play [level]             - Play from a level (default: first)
//	tusk menu                     - Pick levels interactively
//	tusk scores [level]           - Show best solves
//	tusk serve                    - Start SSH server for remote play
//	tusk check [files...]         - Validate level packs
//	tusk replay <level> <moves>   - Apply a move string and print the result
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config)
//	--db <path>       - Set database path (default: ~/.tusk/tusk.db)
//	--config <path>   - Use a specific config file
//	--levels <dir>    - Extra directory of level packs
//	--debug           - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tusk",
	Short: "Tusk - an elephant push puzzle for your terminal",
	Long: `Tusk is a sokoban-like puzzle. Your elephant is two cells long: it walks
forward and backward along its body, turns by swinging its head around its
butt, and pushes crates with whichever end hits them. Crates pushed into
water sink and become bridges. Cover every numbered target to finish a level;
numbered doors stay shut until their targets are covered.

Available commands:
  list     - Show all levels
  play     - Play starting at a level
  menu     - Interactive level picker
  scores   - View best solves
  serve    - Start SSH server for remote play
  check    - Validate level packs
  replay   - Run a move string against a level

Examples:
  tusk list
  tusk play sweep
  tusk menu
  tusk serve --ssh :2222
  tusk replay first-steps RRRR`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tusk/tusk.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Extra level pack directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replayCmd)
}
