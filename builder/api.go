// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/points"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Cities builds the complete undirected weighted graph over pts.
// It is the graph-construction step of the city pipeline.
//
// For n points the result has n vertices and n(n−1)/2 edges.
func Cities(pts []points.Point, bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph([]core.GraphOption{core.WithWeighted()}, bopts, Complete(pts))
}
