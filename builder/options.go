// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// options.go — functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs;
// constructors themselves never panic.

package builder

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithWeightFn overrides the pair weight function. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
