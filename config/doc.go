// Package config loads the search engine's tunable knobs (the
// backtrack-trigger histogram's decay rate, the possibility-harvest
// sample cap, and the validateLayout contradiction budget) from an
// optional config file and environment variables, following the
// viper defaulting/override idiom of
// junjiewwang-perf-analysis/pkg/config/config.go: a fresh *viper.Viper
// seeded with SetDefault calls, an optional file read that falls back
// silently when absent, then AutomaticEnv overrides, unmarshaled into
// a single struct and validated.
//
// What:
//
//   - Tunables holds every knob a session needs beyond the puzzle
//     layout itself.
//   - Default returns the engine's built-in defaults.
//   - Load builds a *viper.Viper bound to an optional config file and
//     VSUDOKU_-prefixed environment variables, and decodes it into
//     Tunables.
package config
