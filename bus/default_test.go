package bus_test

import (
	"context"
	"testing"

	"github.com/signal-fabric/relay/bus"
	"github.com/signal-fabric/relay/event"
)

func TestDefaultBus_OnBroadcast(t *testing.T) {
	// Isolate from subscriptions left behind by other tests.
	bus.SetDefault(createTestBus(t))

	var got []any
	sub, err := bus.On("order.created", func(ctx context.Context, ev event.Event, payload ...any) error {
		got = payload
		return nil
	})
	if err != nil {
		t.Fatalf("On() error = %v", err)
	}
	defer sub.Cancel()

	bus.Broadcast(context.Background(), "order.created", "order-1")

	if len(got) != 1 || got[0] != "order-1" {
		t.Errorf("payload = %v, want [order-1]", got)
	}
}

func TestDefaultBus_SetDefault(t *testing.T) {
	replacement := createTestBus(t)
	bus.SetDefault(replacement)

	if bus.Default() != replacement {
		t.Error("Default() should return the bus passed to SetDefault()")
	}
}

func TestDefaultBus_LazyCreation(t *testing.T) {
	bus.SetDefault(nil)

	b := bus.Default()
	if b == nil {
		t.Fatal("Default() should lazily create a bus")
	}
	if bus.Default() != b {
		t.Error("Default() should return the same bus on repeated calls")
	}
}
