package cmd

import (
	"fmt"

	"github.com/katalvlaran/vsudoku/cmd/vsudoku/classic"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/katalvlaran/vsudoku/session"
	"github.com/spf13/cobra"
)

var possibilitiesInput string

var possibilitiesCmd = &cobra.Command{
	Use:   "possibilities",
	Short: "Print, per cell, every value any solution assigns it",
	Example: `  vsudoku possibilities -i ./puzzle.txt`,
	RunE: runPossibilities,
}

func init() {
	rootCmd.AddCommand(possibilitiesCmd)
	possibilitiesCmd.Flags().StringVarP(&possibilitiesInput, "input", "i", "", "81-character clue string, or a path to a file containing one (required)")
	possibilitiesCmd.MarkFlagRequired("input")
}

func runPossibilities(cmd *cobra.Command, args []string) error {
	clues, err := readClueString(possibilitiesInput)
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

	union, n, err := s.SolveAllPossibilities(cmd.Context(), t.PossibilitySampleCap)
	if err != nil {
		return err
	}
	for i, m := range union {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", sh.CellID(i), m.Values())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "(sampled %d solutions)\n", n)
	return nil
}
