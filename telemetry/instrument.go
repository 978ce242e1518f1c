package telemetry

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/katalvlaran/vsudoku/selector"
	"github.com/katalvlaran/vsudoku/session"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Instrumentation is the handful of instruments one solve needs: a
// tracer for per-operation spans, and counters/a gauge mirroring
// search.Counters.
type Instrumentation struct {
	tracer trace.Tracer

	nodesSearched metric.Int64Counter
	backtracks    metric.Int64Counter
	solutions     metric.Int64Counter
	progressRatio metric.Float64Gauge
}

// NewInstrumentation builds an Instrumentation from the process's
// global tracer and meter (see Tracer/Meter), or returns an error if
// instrument registration fails.
func NewInstrumentation() (*Instrumentation, error) {
	meter := Meter()

	nodes, err := meter.Int64Counter("vsudoku.nodes_searched",
		metric.WithDescription("search tree nodes visited"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: register nodes_searched: %w", err)
	}
	backtracks, err := meter.Int64Counter("vsudoku.backtracks",
		metric.WithDescription("dead branches retired"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: register backtracks: %w", err)
	}
	solutions, err := meter.Int64Counter("vsudoku.solutions",
		metric.WithDescription("solutions yielded"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: register solutions: %w", err)
	}
	progress, err := meter.Float64Gauge("vsudoku.progress_ratio",
		metric.WithDescription("conserved fraction of the search space retired so far"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: register progress_ratio: %w", err)
	}

	return &Instrumentation{
		tracer:        Tracer(),
		nodesSearched: nodes,
		backtracks:    backtracks,
		solutions:     solutions,
		progressRatio: progress,
	}, nil
}

// record emits one snapshot of c onto i's instruments and the given span.
func (i *Instrumentation) record(ctx context.Context, span trace.Span, c search.Counters) {
	span.SetAttributes(
		attribute.Int64("vsudoku.nodes_searched", c.NodesSearched),
		attribute.Int64("vsudoku.backtracks", c.Backtracks),
		attribute.Int64("vsudoku.solutions", c.Solutions),
		attribute.Float64("vsudoku.progress_ratio", c.ProgressRatio),
	)
	i.nodesSearched.Add(ctx, c.NodesSearched)
	i.backtracks.Add(ctx, c.Backtracks)
	i.solutions.Add(ctx, c.Solutions)
	i.progressRatio.Record(ctx, c.ProgressRatio)
}

// InstrumentedSession decorates a *session.Session with a span and a
// counters snapshot around every operation, the same decorator shape
// search.watchingAccumulator uses over accumulator.Queue.
type InstrumentedSession struct {
	s    *session.Session
	inst *Instrumentation
}

// Wrap returns an InstrumentedSession around s.
func Wrap(s *session.Session, inst *Instrumentation) *InstrumentedSession {
	return &InstrumentedSession{s: s, inst: inst}
}

func (w *InstrumentedSession) finish(ctx context.Context, span trace.Span, err error) {
	w.inst.record(ctx, span, w.s.Counters())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (w *InstrumentedSession) CountSolutions(ctx context.Context) (int64, error) {
	ctx, span := w.inst.tracer.Start(ctx, "vsudoku.count_solutions")
	n, err := w.s.CountSolutions(ctx)
	w.finish(ctx, span, err)
	return n, err
}

func (w *InstrumentedSession) NthSolution(ctx context.Context, n int) ([]mask.Set, error) {
	ctx, span := w.inst.tracer.Start(ctx, "vsudoku.nth_solution", trace.WithAttributes(attribute.Int("vsudoku.n", n)))
	grid, err := w.s.NthSolution(ctx, n)
	w.finish(ctx, span, err)
	return grid, err
}

func (w *InstrumentedSession) NthStep(ctx context.Context, n int, guides map[int]selector.Guide) (*session.StepResult, error) {
	ctx, span := w.inst.tracer.Start(ctx, "vsudoku.nth_step", trace.WithAttributes(attribute.Int("vsudoku.n", n)))
	ev, err := w.s.NthStep(ctx, n, guides)
	w.finish(ctx, span, err)
	return ev, err
}

func (w *InstrumentedSession) SolveAllPossibilities(ctx context.Context, sampleCap int64) ([]mask.Set, int64, error) {
	ctx, span := w.inst.tracer.Start(ctx, "vsudoku.solve_all_possibilities",
		trace.WithAttributes(attribute.Int64("vsudoku.sample_cap", sampleCap)))
	union, n, err := w.s.SolveAllPossibilities(ctx, sampleCap)
	span.SetAttributes(attribute.Int64("vsudoku.solutions_sampled", n))
	w.finish(ctx, span, err)
	return union, n, err
}

func (w *InstrumentedSession) ValidateLayout(ctx context.Context, budget int64) (bool, []session.HouseReport, error) {
	ctx, span := w.inst.tracer.Start(ctx, "vsudoku.validate_layout",
		trace.WithAttributes(attribute.Int64("vsudoku.budget", budget)))
	valid, ranked, err := w.s.ValidateLayout(ctx, budget)
	span.SetAttributes(attribute.Bool("vsudoku.valid", valid))
	w.finish(ctx, span, err)
	return valid, ranked, err
}
