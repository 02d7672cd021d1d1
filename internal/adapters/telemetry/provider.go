package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/warm/internal/core/ports"
)

// InstrumentationName names the tracer used by warm.
const InstrumentationName = "go.trai.ch/warm"

// NewProvider creates a tracer provider that samples every span and feeds
// them to a Bridge. Span processors run synchronously, so nothing needs
// flushing before exit.
func NewProvider(logger ports.Logger, processors ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	return sdktrace.NewTracerProvider(opts...)
}
