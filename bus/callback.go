package bus

import (
	"context"

	"github.com/signal-fabric/relay/event"
)

// Callback handles one delivery of a published event. The descriptor
// identifies the occurrence and carries the event name; the payload is
// forwarded verbatim from the publish call.
//
// Any function value of this shape can subscribe; registering the same
// function several times creates independent registrations. A returned error
// marks the delivery as failed and is handled according to the bus's failure
// policy.
type Callback func(ctx context.Context, ev event.Event, payload ...any) error
