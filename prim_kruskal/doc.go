// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph with Prim’s or Kruskal’s algorithm.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a subset
//     T ⊆ E that connects all vertices of V with no cycles and minimum total weight.
//   - For a sample of cities it is the cheapest set of links that ties every city
//     into one network, which is what the map layer draws.
//
// Algorithms Provided
//
//   - Kruskal(g) (Result, error)
//     Sort all edges by weight (stable, so ties keep insertion order) and merge
//     components with union-find. O(E log E + α(V)·E).
//
//   - Prim(g, root) (Result, error)
//     Grow one tree from root with a min-heap of frontier edges. O(E log E).
//
//   - Compute(g, MSTOptions) / Extract(g, opts...)
//     Dispatch by method name; Extract defaults to Kruskal and, for Prim, to the
//     first inserted vertex as root.
//
// Degenerate inputs
//
//   - |V| == 0: empty Result, no error.
//   - |V| == 1: Result with the single vertex and no edges.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil, directed or unweighted graph.
//   - ErrDisconnected: no spanning tree exists; it wraps ErrInvalidGraph so callers
//     that only care about "the graph was unusable" can test for that alone.
//   - ErrEmptyRoot, core.ErrVertexNotFound: Prim root problems.
//   - ErrUnknownMethod: Compute/ParseMethod with an unsupported method name.
//
// Ties between equal-weight edges are broken deterministically but the chosen
// edge set is not part of the contract; the total weight is.
package prim_kruskal
