package config

import "log/slog"

// FailurePolicy selects how a bus treats a failing subscriber during dispatch.
type FailurePolicy string

const (
	// FailureIsolate reports the failure and keeps delivering to the
	// remaining subscribers of the current publish.
	FailureIsolate FailurePolicy = "isolate"

	// FailureAbort stops the current publish at the first failing subscriber.
	FailureAbort FailurePolicy = "abort"
)

// BusConfig defines configuration for a Bus instance.
type BusConfig struct {
	// Bus identity
	Name string `json:"name"`

	// Dispatch settings
	FailurePolicy FailurePolicy `json:"failure_policy"`
	RetainLast    bool          `json:"retain_last"`

	// Observability
	Logger   *slog.Logger `json:"-"`
	Observer string       `json:"observer"`
}

// DefaultBusConfig returns a BusConfig with sensible defaults.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		Name:          "default",
		FailurePolicy: FailureIsolate,
		Logger:        slog.Default(),
		Observer:      "noop",
	}
}

func (c *BusConfig) Merge(source *BusConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}

	if source.FailurePolicy != "" {
		c.FailurePolicy = source.FailurePolicy
	}

	if source.RetainLast {
		c.RetainLast = true
	}

	if source.Logger != nil {
		c.Logger = source.Logger
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}
