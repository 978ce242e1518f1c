package telemetry

import (
	"strconv"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// createSampler builds a trace sampler from Config, defaulting to full
// sampling when Sampler is unset or unrecognized.
func createSampler(cfg *Config) sdktrace.Sampler {
	switch cfg.Sampler {
	case "always_off":
		return sdktrace.NeverSample()
	case "traceidratio":
		return sdktrace.TraceIDRatioBased(parseRatio(cfg.SamplerArg))
	case "parentbased_always_off":
		return sdktrace.ParentBased(sdktrace.NeverSample())
	case "parentbased_traceidratio":
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(parseRatio(cfg.SamplerArg)))
	case "parentbased_always_on":
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	default:
		return sdktrace.AlwaysSample()
	}
}

func parseRatio(s string) float64 {
	if s == "" {
		return 1.0
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1.0
	}
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1.0
	}
	return r
}
