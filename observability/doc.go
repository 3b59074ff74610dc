// Package observability provides event-based telemetry for bus operations.
//
// The package defines a minimal Observer interface that receives telemetry
// events from the bus (subscriptions added and cancelled, publishes started
// and completed, subscriber failures) without coupling the bus to a specific
// logging or metrics backend.
//
// # Observers
//
// Three implementations are provided:
//
//   - NoOpObserver: Discards all events, zero overhead
//   - SlogObserver: Writes events to a structured slog.Logger
//   - MultiObserver: Broadcasts events to several wrapped observers
//
// # Registry
//
// Observers are registered under names and resolved at bus construction time,
// enabling configuration-driven selection:
//
//	observability.RegisterObserver("production", myObserver)
//
//	cfg := config.DefaultBusConfig()
//	cfg.Observer = "production"
//	b := bus.New(cfg)
//
// The registry is pre-seeded with "noop" and "slog".
//
// # Design
//
// Observer implementations must not affect bus execution flow: errors or
// delays inside OnEvent never propagate to publishers or subscribers.
package observability
