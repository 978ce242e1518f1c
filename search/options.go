package search

import (
	"github.com/katalvlaran/vsudoku/debuglog"
	"github.com/katalvlaran/vsudoku/mask"
)

// YieldMode selects which events an Iterator surfaces. The
// everyKth-contradiction mode is folded into OnSolution plus polling
// Counters().Backtracks from the caller: simpler, and
// observably equivalent for every facade use.
type YieldMode int

const (
	// OnSolution yields only EventSolution; everything else (forced
	// assignments, guesses, contradictions) is processed internally
	// without surfacing an Event. This is the fast path for counting
	// and enumerating solutions.
	OnSolution YieldMode = iota
	// OnStep yields EventStep for every assignment (forced or
	// guessed), EventContradiction for every failed attempt, and
	// EventSolution on completion.
	OnStep
)

// ProgressFunc is called periodically during a run with the counters
// accumulated so far and whatever extraState the caller's
// ExtraStateFn produced for this tick (nil if none was installed).
type ProgressFunc func(counters Counters, extraState any)

// ExtraStateFn lets a caller attach arbitrary state (e.g. a snapshot
// of elapsed wall time) to each progress tick, evaluated fresh on
// every call immediately before ProgressFunc runs.
type ExtraStateFn func() any

// Option configures a Driver at construction time.
type Option func(*settings)

type settings struct {
	decayShift    uint
	decayInterval uint64
	debug         debuglog.Sink
	uninteresting []mask.Set
	initialGrid   []mask.Set
	progressFn    ProgressFunc
	extraStateFn  ExtraStateFn
	progressMask  uint64
}

func defaultSettings() settings {
	return settings{
		decayShift:    1,
		decayInterval: 1 << 14,
		debug:         debuglog.Noop{},
		progressMask:  0xFFF,
	}
}

// WithDecay overrides the backtrack-trigger histogram's decay rate:
// every DecayInterval iterations, bt[c] >>= DecayShift for every cell.
func WithDecay(shift uint, interval uint64) Option {
	return func(s *settings) {
		s.decayShift = shift
		s.decayInterval = interval
	}
}

// WithDebugSink attaches a debuglog.Sink the driver records
// contradiction and solution events to, guarded by Sink.Enabled.
func WithDebugSink(sink debuglog.Sink) Option {
	return func(s *settings) { s.debug = sink }
}

// WithUninteresting pre-seeds the uninterestingValues prune at Reset
// time, for callers that already know which cell/value pairs to skip
// before the first run.
func WithUninteresting(vals []mask.Set) Option {
	return func(s *settings) { s.uninteresting = vals }
}

// WithInitialGrid seeds Reset's starting grid with grid (one mask.Set
// per cell, indexed the same as Shape) instead of the all-candidates
// default, for callers solving a puzzle that already has clues. Domain
// handlers' Initialize still runs afterward and may narrow it further.
// len(grid) must equal the Shape's NumCells; a mismatched length is
// silently ignored, leaving the all-candidates default in place.
func WithInitialGrid(grid []mask.Set) Option {
	return func(s *settings) { s.initialGrid = grid }
}

// WithProgress installs fn as the periodic progress callback, fired
// every frequencyMask+1 iterations (frequencyMask is a power-of-two-
// minus-one bitmask, e.g. 0xFFF fires every 4096 iterations). A nil fn
// disables the callback.
func WithProgress(fn ProgressFunc, frequencyMask uint64) Option {
	return func(s *settings) {
		s.progressFn = fn
		s.progressMask = frequencyMask
	}
}

// WithExtraState attaches fn as the source of ProgressFunc's extraState
// argument. Has no effect without a WithProgress callback installed.
func WithExtraState(fn ExtraStateFn) Option {
	return func(s *settings) { s.extraStateFn = fn }
}
