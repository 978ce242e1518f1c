package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ShutdownFunc releases whatever Init set up.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

var (
	globalConfig *Config
	configOnce   sync.Once
)

func loadConfig() *Config {
	configOnce.Do(func() {
		globalConfig = LoadConfigFromEnv()
	})
	return globalConfig
}

// Enabled reports whether OTEL_ENABLED selected real instrumentation.
func Enabled() bool {
	return loadConfig().Enabled
}

// Init wires a TracerProvider and MeterProvider for numCells/numValues
// worth of puzzle (used as resource attributes), and installs them as
// the otel globals. If tracing is disabled it returns a no-op shutdown
// and leaves the default no-op providers in place, exactly like the
// teacher's Init.
func Init(ctx context.Context, numCells, numValues int) (ShutdownFunc, error) {
	cfg := loadConfig()
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	res, err := buildResource(ctx, cfg, numCells, numValues)
	if err != nil {
		return noopShutdown, fmt.Errorf("telemetry: build resource: %w", err)
	}

	exporter, err := createExporter(ctx, cfg)
	if err != nil {
		return noopShutdown, fmt.Errorf("telemetry: create exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(createSampler(cfg)),
	)
	otel.SetTracerProvider(tp)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp)

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return err
		}
		return mp.Shutdown(ctx)
	}, nil
}

// Tracer returns the global tracer under the instrumentation scope
// this package uses throughout.
func Tracer() trace.Tracer {
	return otel.Tracer("github.com/katalvlaran/vsudoku")
}

// Meter returns the global meter under the same scope.
func Meter() metric.Meter {
	return otel.Meter("github.com/katalvlaran/vsudoku")
}
