// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • weightFn = Euclidean

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Weight generator for point pairs.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: Euclidean,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
