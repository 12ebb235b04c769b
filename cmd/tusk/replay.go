package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tusk/internal/games/elephant"
	"github.com/vovakirdan/tusk/internal/games/elephant/puzzle"
)

var (
	flagSteps        bool
	flagExpectSolved bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <level> <moves>",
	Short: "Apply a move string to a level and print the result",
	Long: `Runs a sequence of commands against a level without a terminal UI and
prints the final world in level notation ('=' marks a sunken crate).

Move string:
  U D L R   - Move or turn up, down, left, right (arrows also work)
  z         - Undo
  r         - Restart the level (undoable)
Spaces and commas are ignored.

Examples:
  tusk replay first-steps RRRR
  tusk replay gate "RR DDD" --steps
  tusk replay sweep D --expect-solved`,
	Args: cobra.ExactArgs(2),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagSteps, "steps", false, "Print the world after every command")
	replayCmd.Flags().BoolVar(&flagExpectSolved, "expect-solved", false, "Exit with status 1 unless the level ends solved")
}

func runReplay(_ *cobra.Command, args []string) {
	lvl, err := findLevel(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmds, err := parseMoves(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, err := lvl.World()
	if err != nil {
		logger.Fatal("cannot load level", "err", err)
	}

	seq := puzzle.NewSequencer(w)
	rejected := 0
	for i, c := range cmds {
		seq.Enqueue(c)
		res := seq.Drain()
		rejected += res.Rejected

		if flagSteps {
			status := "ok"
			if res.Rejected > 0 {
				status = "rejected"
			}
			fmt.Printf("%d: %s %s\n%s\n\n", i+1, describe(c), status, elephant.RenderText(seq.Current()))
		}
	}

	solved := seq.Current().Solved()
	if !flagSteps {
		fmt.Println(elephant.RenderText(seq.Current()))
		fmt.Println()
	}
	fmt.Printf("moves: %d  rejected: %d  solved: %t\n", seq.History().Moves(), rejected, solved)

	if flagExpectSolved && !solved {
		os.Exit(1)
	}
}

// parseMoves turns a move string into commands.
func parseMoves(s string) ([]puzzle.Command, error) {
	var cmds []puzzle.Command
	for i, r := range []rune(s) {
		switch r {
		case 'U', '↑':
			cmds = append(cmds, puzzle.Move(puzzle.DirUp))
		case 'D', '↓':
			cmds = append(cmds, puzzle.Move(puzzle.DirDown))
		case 'L', '←':
			cmds = append(cmds, puzzle.Move(puzzle.DirLeft))
		case 'R', '→':
			cmds = append(cmds, puzzle.Move(puzzle.DirRight))
		case 'z':
			cmds = append(cmds, puzzle.Undo())
		case 'r':
			cmds = append(cmds, puzzle.Reset())
		case ',':
		default:
			if !unicode.IsSpace(r) {
				return nil, fmt.Errorf("unknown move %q at position %d", r, i+1)
			}
		}
	}
	return cmds, nil
}

func describe(c puzzle.Command) string {
	if c.Kind == puzzle.CmdMove {
		return c.Kind.String() + " " + c.Dir.String()
	}
	return c.Kind.String()
}
