package observability

import (
	"context"
	"time"
)

// Observer receives telemetry events from bus operations.
//
// Observer implementations can log events, collect metrics, or trace dispatch
// flow. The interface is intentionally minimal to avoid coupling the bus to
// specific observability implementations.
//
// Implementations should not affect execution flow - errors or delays in
// OnEvent should not propagate to the caller.
type Observer interface {
	// OnEvent receives a telemetry event with metadata about what happened.
	// The context provides cancellation/timeout control for expensive operations.
	OnEvent(ctx context.Context, event Event)
}

// Event represents an observable occurrence during bus operation.
//
// Events capture dispatch metadata rather than application payloads. This
// approach enables observability without exposing sensitive information or
// impacting performance.
type Event struct {
	// Type categorizes the event (bus.subscribe, publish.start, etc.)
	Type EventType

	// Timestamp records when the event occurred
	Timestamp time.Time

	// Source identifies the bus that emitted the event
	Source string

	// Data contains metadata about the event (event name, subscription id,
	// delivered counts, errors). This is telemetry, not application data.
	Data map[string]any
}

// EventType categorizes observable events. The bus package declares its
// constants of this type next to the code that emits them.
type EventType string
