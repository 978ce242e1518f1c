package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"google.golang.org/grpc/credentials/insecure"
)

// createExporter builds an OTLP trace exporter, choosing HTTP or gRPC
// transport from Config.Protocol.
func createExporter(ctx context.Context, cfg *Config) (*otlptrace.Exporter, error) {
	if strings.HasPrefix(strings.ToLower(cfg.Protocol), "http") {
		return createHTTPExporter(ctx, cfg)
	}
	return createGRPCExporter(ctx, cfg)
}

func createGRPCExporter(ctx context.Context, cfg *Config) (*otlptrace.Exporter, error) {
	var opts []otlptracegrpc.Option
	if cfg.Endpoint != "" {
		endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
		opts = append(opts, otlptracegrpc.WithEndpoint(endpoint))
	}
	if cfg.Insecure || strings.HasPrefix(cfg.Endpoint, "http://") {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()))
	}
	return otlptracegrpc.New(ctx, opts...)
}

func createHTTPExporter(ctx context.Context, cfg *Config) (*otlptrace.Exporter, error) {
	var opts []otlptracehttp.Option
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if strings.HasPrefix(endpoint, "https://") {
			endpoint = strings.TrimPrefix(endpoint, "https://")
		} else if strings.HasPrefix(endpoint, "http://") {
			endpoint = strings.TrimPrefix(endpoint, "http://")
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}
