package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
)

// RegenerateSpan is the span name the bridge reports on.
const RegenerateSpan = "regenerate"

const keyAttribute = "warm.key"

// Bridge implements sdktrace.SpanProcessor and reports every successful
// regeneration through the logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs completed regenerate spans.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || s.Name() != RegenerateSpan || s.Status().Code == codes.Error {
		return
	}

	key := "?"
	for _, attr := range s.Attributes() {
		if string(attr.Key) == keyAttribute {
			key = attr.Value.AsString()
			break
		}
	}

	b.logger.Entry(ports.EntryEvent{
		Key:   domain.CacheKey(key),
		State: domain.EntryFresh,
		Msg:   "regenerated",
		Took:  s.EndTime().Sub(s.StartTime()),
	})
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
