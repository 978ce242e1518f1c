package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Tunables holds every knob a Session needs beyond the puzzle layout
// and handler set themselves.
type Tunables struct {
	// DecayShift and DecayInterval govern search.WithDecay: every
	// DecayInterval enforcer iterations, each cell's backtrack-trigger
	// count is right-shifted by DecayShift.
	DecayShift    uint   `mapstructure:"decay_shift"`
	DecayInterval uint64 `mapstructure:"decay_interval"`

	// PossibilitySampleCap bounds how many solutions
	// Session.SolveAllPossibilities enumerates before returning the
	// union seen so far. Zero means unbounded.
	PossibilitySampleCap int64 `mapstructure:"possibility_sample_cap"`

	// ValidateContradictionBudget is the budget passed to
	// Session.ValidateLayout: once backtracks exceed it, the layout is
	// treated as unsatisfiable rather than merely unresolved.
	ValidateContradictionBudget int64 `mapstructure:"validate_contradiction_budget"`

	// ProgressFrequencyMask governs search.WithProgress: the progress
	// callback fires whenever iteration&ProgressFrequencyMask == 0, so
	// a power-of-two-minus-one value sets a fixed tick frequency (e.g.
	// 0xFFF fires every 4096 iterations).
	ProgressFrequencyMask uint64 `mapstructure:"progress_frequency_mask"`
}

// Default returns the engine's built-in defaults, unaffected by any
// file or environment variable.
func Default() *Tunables {
	return &Tunables{
		DecayShift:                  1,
		DecayInterval:               1 << 14,
		PossibilitySampleCap:        0,
		ValidateContradictionBudget: 200,
		ProgressFrequencyMask:       0xFFF,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("decay_shift", d.DecayShift)
	v.SetDefault("decay_interval", d.DecayInterval)
	v.SetDefault("possibility_sample_cap", d.PossibilitySampleCap)
	v.SetDefault("validate_contradiction_budget", d.ValidateContradictionBudget)
	v.SetDefault("progress_frequency_mask", d.ProgressFrequencyMask)
}

// Load reads Tunables from an optional config file at configPath,
// falling back to built-in defaults when the file is absent, and
// finally lets VSUDOKU_-prefixed environment variables override
// whatever the file set (e.g. VSUDOKU_DECAY_SHIFT).
func Load(configPath string) (*Tunables, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("vsudoku")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/vsudoku")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file anywhere we looked: defaults stand.
		} else if os.IsNotExist(err) {
			// configPath was given explicitly but doesn't exist: defaults stand.
		} else {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("vsudoku")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var t Tunables
	if err := v.Unmarshal(&t); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal tunables: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &t, nil
}

// Validate rejects tunables that would make the search engine
// misbehave rather than merely run slowly.
func (t *Tunables) Validate() error {
	if t.DecayInterval == 0 {
		return fmt.Errorf("decay_interval must be at least 1")
	}
	if t.PossibilitySampleCap < 0 {
		return fmt.Errorf("possibility_sample_cap must not be negative")
	}
	if t.ValidateContradictionBudget < 0 {
		return fmt.Errorf("validate_contradiction_budget must not be negative")
	}
	return nil
}
