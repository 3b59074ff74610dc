package bus

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/signal-fabric/relay/config"
	"github.com/signal-fabric/relay/event"
	"github.com/signal-fabric/relay/observability"
)

// entry pairs a callback with a stable identity independent of its position
// in the subscriber list, so removal survives reordering caused by earlier
// cancellations.
type entry struct {
	id        string
	callback  Callback
	cancelled atomic.Bool
}

// retained holds the most recent publish for one event name when the bus is
// configured with RetainLast.
type retained struct {
	ev      event.Event
	payload []any
}

type Bus interface {
	Subscribe(name string, fn Callback, opts ...SubscribeOption) (*Subscription, error)
	Publish(ctx context.Context, name string, payload ...any)

	Metrics() MetricsSnapshot
}

type bus struct {
	name string

	entries map[string][]*entry
	mu      sync.RWMutex

	retainLast bool
	last       map[string]*retained

	failurePolicy config.FailurePolicy

	logger   *slog.Logger
	observer observability.Observer
	metrics  *Metrics
}

// New creates a bus from the given configuration. Unknown observer names fall
// back to the noop observer so construction never fails.
func New(cfg config.BusConfig) Bus {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		logger.Warn(
			"observer not registered, using noop",
			slog.String("bus_name", cfg.Name),
			slog.String("observer", cfg.Observer),
		)
		observer = observability.NoOpObserver{}
	}

	b := &bus{
		name:          cfg.Name,
		entries:       make(map[string][]*entry),
		retainLast:    cfg.RetainLast,
		failurePolicy: cfg.FailurePolicy,
		logger:        logger,
		observer:      observer,
		metrics:       NewMetrics(),
	}

	if b.retainLast {
		b.last = make(map[string]*retained)
	}

	return b
}

func (b *bus) Subscribe(name string, fn Callback, opts ...SubscribeOption) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}

	settings := subscribeSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	e := &entry{
		id:       generateID(),
		callback: fn,
	}

	b.mu.Lock()
	b.entries[name] = append(b.entries[name], e)
	var replay *retained
	if settings.replay && b.retainLast {
		replay = b.last[name]
	}
	b.mu.Unlock()

	b.metrics.RecordSubscription(1)
	b.observe(context.Background(), EventBusSubscribe, map[string]any{
		"event":           name,
		"subscription_id": e.id,
	})
	b.logger.Debug(
		"subscription added",
		slog.String("bus_name", b.name),
		slog.String("event", name),
		slog.String("subscription_id", e.id),
	)

	sub := &Subscription{
		bus:   b,
		event: name,
		entry: e,
	}

	if replay != nil {
		ctx := context.Background()
		if err := b.deliver(ctx, replay.ev, replay.payload, e); err != nil {
			b.reportFailure(ctx, replay.ev, e, err)
		} else {
			b.metrics.RecordDelivery(1)
		}
	}

	return sub, nil
}

func (b *bus) Publish(ctx context.Context, name string, payload ...any) {
	ev := event.New(name)

	b.mu.RLock()
	snapshot := slices.Clone(b.entries[name])
	b.mu.RUnlock()

	if b.retainLast {
		b.mu.Lock()
		b.last[name] = &retained{ev: ev, payload: payload}
		b.mu.Unlock()
	}

	b.metrics.RecordPublish(1)

	if len(snapshot) == 0 {
		b.logger.DebugContext(
			ctx,
			"no subscribers for event",
			slog.String("bus_name", b.name),
			slog.String("event", name),
		)
		return
	}

	b.observe(ctx, EventPublishStart, map[string]any{
		"event":       name,
		"event_id":    ev.ID,
		"subscribers": len(snapshot),
	})

	delivered := 0
	for _, e := range snapshot {
		// Entries cancelled after the snapshot was taken must not fire.
		if e.cancelled.Load() {
			continue
		}

		if err := b.deliver(ctx, ev, payload, e); err != nil {
			b.reportFailure(ctx, ev, e, err)
			if b.failurePolicy == config.FailureAbort {
				break
			}
			continue
		}

		delivered++
		b.metrics.RecordDelivery(1)
	}

	b.observe(ctx, EventPublishComplete, map[string]any{
		"event":       name,
		"event_id":    ev.ID,
		"subscribers": len(snapshot),
		"delivered":   delivered,
	})
	b.logger.DebugContext(
		ctx,
		"event published",
		slog.String("bus_name", b.name),
		slog.String("event", name),
		slog.Int("subscribers", len(snapshot)),
		slog.Int("delivered", delivered),
	)
}

func (b *bus) Metrics() MetricsSnapshot {
	return b.metrics.Snapshot()
}

// deliver invokes a single callback. Under the isolate policy a panic inside
// the callback is recovered and returned as a DeliveryError; under the abort
// policy it propagates to the publisher, matching abort's contract that the
// first failure surfaces.
func (b *bus) deliver(ctx context.Context, ev event.Event, payload []any, e *entry) (err error) {
	if b.failurePolicy != config.FailureAbort {
		defer func() {
			if r := recover(); r != nil {
				err = &DeliveryError{
					Event:          ev.Name,
					SubscriptionID: e.id,
					Err:            fmt.Errorf("callback panic: %v", r),
				}
			}
		}()
	}

	if cbErr := e.callback(ctx, ev, payload...); cbErr != nil {
		return &DeliveryError{
			Event:          ev.Name,
			SubscriptionID: e.id,
			Err:            cbErr,
		}
	}

	return nil
}

func (b *bus) reportFailure(ctx context.Context, ev event.Event, e *entry, err error) {
	b.metrics.RecordFailure(1)
	b.observe(ctx, EventSubscriberFailure, map[string]any{
		"event":           ev.Name,
		"event_id":        ev.ID,
		"subscription_id": e.id,
		"error":           err.Error(),
	})
	b.logger.ErrorContext(
		ctx,
		"subscriber failed",
		slog.String("bus_name", b.name),
		slog.String("event", ev.Name),
		slog.String("subscription_id", e.id),
		slog.String("error", err.Error()),
	)
}

// remove deletes the entry with the given identity from the name's subscriber
// list. Removal scans for the matching id rather than using a remembered
// index, so cancellation order cannot delete the wrong entry.
func (b *bus) remove(name, id string) bool {
	b.mu.Lock()
	entries := b.entries[name]
	found := false
	for i, e := range entries {
		if e.id == id {
			b.entries[name] = append(entries[:i], entries[i+1:]...)
			found = true
			break
		}
	}
	if len(b.entries[name]) == 0 {
		delete(b.entries, name)
	}
	b.mu.Unlock()

	if !found {
		return false
	}

	b.metrics.RecordSubscription(-1)
	b.observe(context.Background(), EventBusCancel, map[string]any{
		"event":           name,
		"subscription_id": id,
	})
	b.logger.Debug(
		"subscription removed",
		slog.String("bus_name", b.name),
		slog.String("event", name),
		slog.String("subscription_id", id),
	)

	return true
}

func (b *bus) observe(ctx context.Context, eventType observability.EventType, data map[string]any) {
	b.observer.OnEvent(ctx, observability.Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "bus." + b.name,
		Data:      data,
	})
}

func generateID() string {
	return uuid.Must(uuid.NewV7()).String()
}
