package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows every loaded level in play order, with its par and your best solve.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	best := map[string]int{}
	if store := openStore(); store != nil {
		if b, err := store.AllBest(); err == nil {
			best = b
		}
		store.Close()
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range appLevels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-4s  %-4s  %s\n", maxIDLen, "ID", "Par", "Best", "Title")
	fmt.Printf("  %-*s  %-4s  %-4s  %s\n", maxIDLen, "--", "---", "----", "-----")

	for _, l := range appLevels {
		par, bestStr := "-", "-"
		if l.Par > 0 {
			par = fmt.Sprint(l.Par)
		}
		if b, ok := best[l.ID]; ok {
			bestStr = fmt.Sprint(b)
		}
		fmt.Printf("  %-*s  %-4s  %-4s  %s\n", maxIDLen, l.ID, par, bestStr, l.Title())
	}

	fmt.Println()
	fmt.Println("Run 'tusk play <id>' to play a level.")
}
