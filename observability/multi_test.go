package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/signal-fabric/relay/observability"
)

type countingObserver struct {
	events []observability.Event
}

func (c *countingObserver) OnEvent(ctx context.Context, event observability.Event) {
	c.events = append(c.events, event)
}

func TestMultiObserver_BroadcastsToAll(t *testing.T) {
	first := &countingObserver{}
	second := &countingObserver{}
	multi := observability.NewMultiObserver(first, second)

	event := observability.Event{
		Type:      "bus.subscribe",
		Timestamp: time.Now(),
		Source:    "test",
	}

	multi.OnEvent(context.Background(), event)

	if len(first.events) != 1 {
		t.Errorf("first observer received %d events, want 1", len(first.events))
	}
	if len(second.events) != 1 {
		t.Errorf("second observer received %d events, want 1", len(second.events))
	}
}

func TestMultiObserver_FiltersNilObservers(t *testing.T) {
	counter := &countingObserver{}
	multi := observability.NewMultiObserver(nil, counter, nil)

	multi.OnEvent(context.Background(), observability.Event{Type: "bus.cancel"})

	if len(counter.events) != 1 {
		t.Errorf("observer received %d events, want 1", len(counter.events))
	}
}

func TestMultiObserver_Empty(t *testing.T) {
	multi := observability.NewMultiObserver()

	// Should not panic with no observers.
	multi.OnEvent(context.Background(), observability.Event{Type: "publish.start"})
}
