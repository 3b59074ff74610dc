package bus

import (
	"errors"
	"fmt"
)

// ErrNilCallback is returned by Subscribe when the callback is nil. Failing
// at subscribe time keeps dispatch free of invalid entries.
var ErrNilCallback = errors.New("bus: subscribe called with nil callback")

// DeliveryError captures context when a subscriber fails during dispatch.
//
// The error identifies which registration failed and for which event, and
// wraps the callback's error (or a recovered panic). It is reported through
// the bus logger and observer; publishers never receive it.
type DeliveryError struct {
	Event          string
	SubscriptionID string
	Err            error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery for event %s failed at subscription %s: %v", e.Event, e.SubscriptionID, e.Err)
}

// Unwrap enables error unwrapping for errors.Is and errors.As.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}
