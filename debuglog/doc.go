// Package debuglog implements the search engine's optional structured
// debug sink: a leveled logger whose disabled path performs zero
// allocation, following the shape of
// junjiewwang-perf-analysis/pkg/utils's Logger (level, fields,
// WithField) adapted to a single Record entrypoint.
//
// What:
//
//   - Sink.Enabled() gates every call site; Record is only ever
//     invoked inside that guard, so a disabled sink never constructs
//     an Entry.
//   - Noop is the zero-allocation default: Enabled() is always false.
//   - New builds a Sink backed by the standard log.Logger.
//
// Why:
//
//   - Calling Record while Enabled() is false is a programmer error —
//     it means a call site skipped the guard and is about to pay an
//     avoidable hot-path allocation cost — so it raises ErrDisabled
//     rather than silently logging.
package debuglog
