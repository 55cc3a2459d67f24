// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import "github.com/katalvlaran/citymst/core"

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// newTriangle builds the weighted undirected triangle A-B(3), A-C(1), B-C(5).
func newTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(VertexA, VertexB, Weight3)
	_, _ = g.AddEdge(VertexA, VertexC, Weight1)
	_, _ = g.AddEdge(VertexB, VertexC, Weight5)

	return g
}
