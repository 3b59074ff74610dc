package bus

// subscribeSettings collects per-subscription options.
type subscribeSettings struct {
	replay bool
}

// SubscribeOption customizes a single Subscribe call.
type SubscribeOption func(*subscribeSettings)

// WithReplay delivers the most recently published event for the name, if the
// bus retains one (config.BusConfig.RetainLast), to the new subscriber during
// Subscribe. Without retention the option has no effect.
func WithReplay() SubscribeOption {
	return func(s *subscribeSettings) {
		s.replay = true
	}
}
