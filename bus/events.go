package bus

import "github.com/signal-fabric/relay/observability"

const (
	// Subscription churn
	EventBusSubscribe observability.EventType = "bus.subscribe"
	EventBusCancel    observability.EventType = "bus.cancel"

	// Dispatch
	EventPublishStart      observability.EventType = "publish.start"
	EventPublishComplete   observability.EventType = "publish.complete"
	EventSubscriberFailure observability.EventType = "subscriber.failure"
)
