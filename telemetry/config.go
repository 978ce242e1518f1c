package telemetry

import (
	"os"
	"strconv"
	"strings"
)

// Config holds OpenTelemetry configuration loaded from environment
// variables, trimmed to what a library embedding one search.Driver per
// process actually needs (no resource-attribute free-for-all, no host
// IP resolution: the caller's own service already owns that identity).
type Config struct {
	// Enabled gates Init entirely. Loaded from OTEL_ENABLED.
	Enabled bool

	// ServiceName/ServiceVersion identify this process in spans and
	// metrics. Loaded from OTEL_SERVICE_NAME / OTEL_SERVICE_VERSION.
	ServiceName    string
	ServiceVersion string

	// Endpoint/Protocol/Insecure configure the OTLP exporter. Loaded
	// from OTEL_EXPORTER_OTLP_ENDPOINT / _PROTOCOL / _INSECURE.
	Endpoint string
	Protocol string
	Insecure bool

	// Sampler/SamplerArg select the trace sampler. Loaded from
	// OTEL_TRACES_SAMPLER / OTEL_TRACES_SAMPLER_ARG.
	Sampler    string
	SamplerArg string
}

// LoadConfigFromEnv loads Config from the process environment.
func LoadConfigFromEnv() *Config {
	return &Config{
		Enabled:        strings.EqualFold(os.Getenv("OTEL_ENABLED"), "true"),
		ServiceName:    getEnvOrDefault("OTEL_SERVICE_NAME", "vsudoku"),
		ServiceVersion: getEnvOrDefault("OTEL_SERVICE_VERSION", "unknown"),
		Endpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Protocol:       getEnvOrDefault("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		Insecure:       parseBool(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE")),
		Sampler:        os.Getenv("OTEL_TRACES_SAMPLER"),
		SamplerArg:     os.Getenv("OTEL_TRACES_SAMPLER_ARG"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
