package cmd

import (
	"fmt"

	"github.com/katalvlaran/vsudoku/cmd/vsudoku/classic"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/katalvlaran/vsudoku/session"
	"github.com/spf13/cobra"
)

var countInput string

var countCmd = &cobra.Command{
	Use:     "count",
	Short:   "Count every solution to a classic 9x9 puzzle",
	Example: `  vsudoku count -i ./puzzle.txt`,
	RunE:    runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().StringVarP(&countInput, "input", "i", "", "81-character clue string, or a path to a file containing one (required)")
	countCmd.MarkFlagRequired("input")
}

func runCount(cmd *cobra.Command, args []string) error {
	clues, err := readClueString(countInput)
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

	n, err := s.CountSolutions(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
