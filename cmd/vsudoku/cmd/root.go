// Package cmd is the vsudoku command-line tool, grounded on
// junjiewwang-perf-analysis/cmd/cli/cmd's root-command shape: a package
// var rootCmd with PersistentFlags, a package-level logger built in
// PersistentPreRunE from the --verbose flag, and subcommands that each
// register themselves via an init func.
package cmd

import (
	"os"

	"github.com/katalvlaran/vsudoku/config"
	"github.com/katalvlaran/vsudoku/debuglog"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	configPath   string
	decayShift   uint
	progressMask uint64

	logger debuglog.Sink
	tun    *config.Tunables
)

var rootCmd = &cobra.Command{
	Use:   "vsudoku",
	Short: "Solve, count, and inspect variant Sudoku puzzles",
	Long: `vsudoku is a constraint-propagation backtracking solver for
variant Sudoku puzzles: classic 9x9 by default, with the engine itself
indifferent to board shape or house layout.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := debuglog.LevelInfo
		if verbose {
			level = debuglog.LevelDebug
		}
		logger = debuglog.New(level)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("decay-shift") {
			loaded.DecayShift = decayShift
		}
		if cmd.Flags().Changed("progress-mask") {
			loaded.ProgressFrequencyMask = progressMask
		}
		tun = loaded
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a vsudoku config file (defaults searched if unset)")
	rootCmd.PersistentFlags().UintVar(&decayShift, "decay-shift", 0, "Override the backtrack-trigger histogram's decay shift")
	rootCmd.PersistentFlags().Uint64Var(&progressMask, "progress-mask", 0, "Override the progress callback's iteration frequency mask")
}

// GetLogger returns the debug sink configured by --verbose.
func GetLogger() debuglog.Sink { return logger }

// GetTunables returns the tunables loaded from --config, the
// environment, and any --decay-shift/--progress-mask override.
func GetTunables() *config.Tunables { return tun }

// ProgressOption builds a search.Option that logs periodic search
// progress at debuglog.LevelInfo through the package's --verbose sink,
// gated by t.ProgressFrequencyMask.
func ProgressOption(t *config.Tunables) search.Option {
	return search.WithProgress(func(counters search.Counters, _ any) {
		if !logger.Enabled(debuglog.LevelInfo) {
			return
		}
		logger.Record(debuglog.Entry{
			Level:   debuglog.LevelInfo,
			Message: "progress",
			Fields: map[string]any{
				"nodesSearched": counters.NodesSearched,
				"backtracks":    counters.Backtracks,
				"progressRatio": counters.ProgressRatio,
			},
		})
	}, t.ProgressFrequencyMask)
}
