package bus

import (
	"context"
	"sync"

	"github.com/signal-fabric/relay/config"
)

var (
	defaultMutex sync.Mutex
	defaultBus   Bus
)

// Default returns the process-wide bus, creating it from
// config.DefaultBusConfig on first use.
func Default() Bus {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	if defaultBus == nil {
		defaultBus = New(config.DefaultBusConfig())
	}
	return defaultBus
}

// SetDefault replaces the process-wide bus. Pass a freshly constructed bus to
// isolate tests from subscriptions left behind by earlier ones.
func SetDefault(b Bus) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultBus = b
}

// On subscribes fn to the event name on the default bus.
func On(name string, fn Callback, opts ...SubscribeOption) (*Subscription, error) {
	return Default().Subscribe(name, fn, opts...)
}

// Broadcast publishes the event with its payload on the default bus.
func Broadcast(ctx context.Context, name string, payload ...any) {
	Default().Publish(ctx, name, payload...)
}
