package cmd

import (
	"fmt"
	"os"

	"github.com/katalvlaran/vsudoku/cmd/vsudoku/classic"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/katalvlaran/vsudoku/session"
	"github.com/spf13/cobra"
)

var (
	solveInput string
	solveN     int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the n-th solution to a classic 9x9 puzzle",
	Example: `  vsudoku solve -i "53..7...." -n 1
  vsudoku solve -i ./puzzle.txt`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "81-character clue string, or a path to a file containing one (required)")
	solveCmd.Flags().IntVarP(&solveN, "nth", "n", 1, "Which solution to print, in discovery order")
	solveCmd.MarkFlagRequired("input")
}

func runSolve(cmd *cobra.Command, args []string) error {
	clues, err := readClueString(solveInput)
	if err != nil {
		return err
	}

	sh, err := classic.NewShape()
	if err != nil {
		return err
	}
	grid, err := classic.ParseGrid(sh, clues)
	if err != nil {
		return err
	}

	t := GetTunables()
	s, err := session.New(sh, classic.Handlers(),
		search.WithInitialGrid(grid),
		search.WithDecay(t.DecayShift, t.DecayInterval),
		ProgressOption(t),
	)
	if err != nil {
		return err
	}

	sol, err := s.NthSolution(cmd.Context(), solveN)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), classic.FormatGrid(sol))
	return nil
}

// readClueString returns s unchanged if it already looks like an
// 81-character clue string, otherwise treats it as a file path and
// reads its contents.
func readClueString(s string) (string, error) {
	if len(s) == classic.Size*classic.Size {
		return s, nil
	}
	data, err := os.ReadFile(s)
	if err != nil {
		return "", fmt.Errorf("vsudoku: could not read %q as a clue string or file: %w", s, err)
	}
	return string(data), nil
}
