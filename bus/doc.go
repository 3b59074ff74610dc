// Package bus provides a synchronous in-process publish/subscribe event bus.
//
// A bus owns a registry mapping event names to ordered subscriber lists.
// Producers publish a named event with an arbitrary payload; every callback
// registered under that name is invoked synchronously, on the publisher's call
// stack, in subscription order, with a descriptor identifying the occurrence.
//
// # Core Operations
//
// Subscribing returns a handle that cancels exactly that registration:
//
//	b := bus.New(config.DefaultBusConfig())
//
//	sub, err := b.Subscribe("order.created", func(ctx context.Context, ev event.Event, payload ...any) error {
//	    // React to the event
//	    return nil
//	})
//
//	b.Publish(ctx, "order.created", orderID, total)
//
//	sub.Cancel()
//
// Publishing an event name nobody subscribed to is a safe no-op, and any
// string is a valid event name. Cancel is idempotent and always removes
// precisely the entry it was created for, regardless of how other
// subscriptions to the same name come and go.
//
// # Dispatch Semantics
//
// Each publish dispatches against a snapshot of the subscriber list taken
// when dispatch begins:
//
//   - A callback that subscribes to the event currently being dispatched does
//     not receive the in-flight publish; the new entry becomes eligible with
//     the next publish.
//   - A callback that cancels a not-yet-reached entry suppresses it for the
//     in-flight publish; entries already invoked are unaffected.
//   - Nested publishes run depth-first to completion before the outer
//     dispatch continues.
//
// # Failure Policy
//
// A subscriber failure is an error returned by a callback or a panic raised
// inside one. Under the default isolate policy the failure is logged,
// reported to the configured observer, counted, and the remaining subscribers
// still fire; publishers never see it. Under config.FailureAbort the dispatch
// stops at the first failure instead (and a panic propagates to the
// publisher).
//
// # Default Bus
//
// A process-wide default bus mirrors the constructor API for callers that do
// not need explicit wiring:
//
//	bus.On("order.created", handler)
//	bus.Broadcast(ctx, "order.created", orderID)
//
// Constructed buses remain the primary API; any number of independent buses
// can coexist, each with its own registry and lifecycle.
//
// # Concurrency
//
// All operations are safe for concurrent use. Dispatch itself never spawns
// goroutines: callbacks run on the publishing goroutine, and the registry
// lock is released before any callback is invoked so callbacks can freely
// re-enter the bus.
package bus
