package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tusk/internal/games/elephant/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate level packs",
	Long: `Parses every level layout and reports the ones that cannot be played.
Without arguments the loaded packs are checked (builtin plus --levels).
Exits with status 1 if any level is invalid.

Examples:
  tusk check
  tusk check ./packs/cellar.yaml ./packs/attic.yml`,
	Run: runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	lvls := appLevels
	invalid := 0

	if len(args) > 0 {
		loader := levels.NewLoader("", logger)
		lvls = nil
		for _, file := range args {
			pack, err := loader.LoadFile(file)
			if err != nil {
				logger.Error("invalid pack", "file", file, "err", err)
				invalid++
				continue
			}
			lvls = append(lvls, pack...)
		}
	}

	for _, l := range lvls {
		w, err := l.World()
		if err != nil {
			logger.Error("invalid level", "level", l.ID, "file", l.FilePath, "err", err)
			invalid++
			continue
		}
		if len(w.Targets()) == 0 {
			logger.Warn("level has no targets and can never be solved", "level", l.ID, "file", l.FilePath)
		}
		logger.Debug("ok", "level", l.ID, "size", fmt.Sprintf("%dx%d", w.Layout().Width(), w.Layout().Height()))
	}

	if invalid > 0 {
		logger.Fatal("check failed", "invalid", invalid, "checked", len(lvls))
	}
	fmt.Printf("%d levels ok\n", len(lvls))
}
