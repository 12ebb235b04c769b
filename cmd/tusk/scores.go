package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tusk/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best solves",
	Long: `Without a level, shows the best move count of every solved level.
With a level, shows its ten shortest solves.

Examples:
  tusk scores
  tusk scores first-steps
  tusk scores first-steps --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded solves of the level")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level")
			os.Exit(1)
		}
		printAllBest(store)
		return
	}

	lvl, err := findLevel(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearSolves(lvl.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared solves of %s\n", lvl.ID)
		return
	}

	solves, err := store.BestSolves(lvl.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Solves - %s\n", lvl.Title())
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tusk play %s' to set the first record!\n", lvl.ID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Moves", "Date")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "-----", "----")

	for i, entry := range solves {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %s\n", i+1, entry.Moves, dateStr)
	}

	fmt.Println()
	if stats, err := store.LevelStats(lvl.ID); err == nil {
		fmt.Printf("Solved %d times, best %d, average %.1f", stats.Solves, stats.BestMoves, stats.AvgMoves)
		if lvl.Par > 0 {
			fmt.Printf(", par %d", lvl.Par)
		}
		fmt.Println()
	}
}

// printAllBest lists the best solve of every loaded level.
func printAllBest(store *storage.Store) {
	best, err := store.AllBest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Solves")
	fmt.Println()

	solved := 0
	for _, l := range appLevels {
		moves, ok := best[l.ID]
		if !ok {
			continue
		}
		solved++
		line := fmt.Sprintf("  %-30s  %d", l.Title(), moves)
		if l.Par > 0 {
			line += fmt.Sprintf(" (par %d)", l.Par)
		}
		fmt.Println(line)
	}

	if solved == 0 {
		fmt.Println("No solves recorded yet.")
	}
	fmt.Println()
	fmt.Printf("%d of %d levels solved\n", solved, len(appLevels))
}
