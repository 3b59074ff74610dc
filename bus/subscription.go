package bus

import "sync"

// Subscription is the caller-owned handle for one registration. It is bound
// to exactly one (event name, entry identity) pair; holding it is the only
// way to later cancel that specific registration.
type Subscription struct {
	bus   *bus
	event string
	entry *entry

	cancelOnce sync.Once
}

// Cancel removes this registration from its event's subscriber list.
//
// Cancel is idempotent and safe to call concurrently: calling it more than
// once, or after the entry was already removed, has no effect. An entry
// cancelled while a publish for its event is in flight is suppressed if its
// turn has not yet come; deliveries that already happened are unaffected.
func (s *Subscription) Cancel() {
	s.cancelOnce.Do(func() {
		s.entry.cancelled.Store(true)
		s.bus.remove(s.event, s.entry.id)
	})
}

// Active reports whether the registration is still live.
func (s *Subscription) Active() bool {
	return !s.entry.cancelled.Load()
}

// ID returns the registration's stable identity.
func (s *Subscription) ID() string {
	return s.entry.id
}

// Event returns the event name this registration listens to.
func (s *Subscription) Event() string {
	return s.event
}
