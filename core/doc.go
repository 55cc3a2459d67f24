// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface. It is the storage layer for the complete city
// graphs and the spanning trees extracted from them.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices()       — IDs sorted lexicographically.
//	InsertionOrder() — IDs in the order they were added.
//	Edges()          — edges in insertion order.
//	Neighbors(id)    — incident edges in insertion order.
//
// Undirected edges are stored once in the catalog and mirrored in adjacency,
// so Weight(a,b) == Weight(b,a) by construction.
package core
