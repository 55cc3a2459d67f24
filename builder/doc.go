// Package builder provides "functional-options"-style constructors that turn a
// sample of geographic points into a complete weighted core.Graph.
//
// The package offers the following key components:
//
//   - BuildGraph: single orchestrator; creates the graph, resolves options and
//     applies constructors in order.
//   - Complete(pts): the complete simple graph K_n over the points, one vertex
//     per point (ID = point name) and one edge per unordered pair.
//   - Weight functions (WeightFn): Euclidean (default) computes
//     sqrt(Δlat² + Δlon²) on raw degrees. This is planar distance, not
//     great-circle distance, and it decides which tree edges win.
//   - Cities(pts, opts...): weighted undirected graph + Complete(pts).
//
// Guarantees:
//
//   - Deterministic: same points in the same order yield identical vertex
//     order, edge IDs and weights.
//   - Each pair's weight is computed exactly once; the undirected core graph
//     serves it symmetrically.
//   - Constructors never panic at runtime; option constructors (WithX) panic on
//     meaningless values.
package builder
