package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// buildResource describes this process to the exporter: service
// identity plus the puzzle's shape, so a trace backend can tell a
// classic 9x9 solve apart from a jigsaw or Latin-square one.
func buildResource(_ context.Context, cfg *Config, numCells, numValues int) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		attribute.Int("vsudoku.num_cells", numCells),
		attribute.Int("vsudoku.num_values", numValues),
	}
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}
