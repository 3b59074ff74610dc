// Package config provides configuration structures for bus instances.
//
// This package defines the settings a bus is constructed from, establishing
// sensible defaults while allowing customization for different scenarios.
//
// # Bus Configuration
//
// BusConfig defines settings for bus instances:
//
//	cfg := config.BusConfig{
//	    Name:          "orders",
//	    FailurePolicy: config.FailureIsolate,
//	    Logger:        slog.New(slog.NewJSONHandler(os.Stdout, nil)),
//	    Observer:      "slog",
//	}
//
//	b := bus.New(cfg)
//
// # Default Configuration
//
// The package provides defaults for common scenarios:
//
//	cfg := config.DefaultBusConfig()
//	// Name: "default"
//	// FailurePolicy: isolate
//	// Logger: slog.Default()
//	// Observer: "noop"
//
// # Configuration Fields
//
// Name: Identifies the bus instance for logging and telemetry
//
// FailurePolicy: Controls dispatch behavior when a subscriber fails:
//   - FailureIsolate (default): Report and continue with remaining subscribers
//   - FailureAbort: Stop the dispatch at the first failing subscriber
//
// RetainLast: Keeps the most recent event per name so late subscribers can
// opt into replay at registration time.
//
// Logger: Structured logging for bus operations (subscription churn, dispatch,
// subscriber failures).
//
// Observer: Name of a telemetry observer registered with the observability
// package, resolved at construction time.
//
// # Configuration Merging
//
// BusConfig supports a Merge pattern enabling layered configuration where
// loaded configs merge over defaults:
//
//	cfg := config.DefaultBusConfig()
//	var loaded config.BusConfig
//	json.Unmarshal(data, &loaded)
//	cfg.Merge(&loaded)
//
// Merge semantics by field type:
//
//   - Strings: Merge if source is non-empty
//   - Booleans with false defaults: Merge if source is true
//   - Pointers: Merge if source is non-nil
//
// Configuration only exists during initialization; it does not persist into
// the constructed bus.
package config
