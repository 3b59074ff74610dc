package observability

import (
	"context"
	"log/slog"
)

// SlogObserver provides structured logging observability using Go's slog package.
//
// SlogObserver writes all bus telemetry to a structured logger at Info level,
// capturing event type, source, timestamp, and associated metadata. This
// enables debugging and monitoring of dispatch flow through standard log
// aggregation tools.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	observer := observability.NewSlogObserver(logger)
//	observability.RegisterObserver("production", observer)
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a new SlogObserver with the specified logger.
//
// The logger parameter allows customization of the slog handler, output
// destination, and log level filtering. Pass slog.Default() for the default
// logger configuration.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{
		logger: logger,
	}
}

// OnEvent logs the event at Info level with structured fields.
//
// The context is propagated to InfoContext for cancellation and tracing
// integration.
func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	o.logger.InfoContext(
		ctx,
		"Event",
		"type", event.Type,
		"source", event.Source,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
