// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces the MST as a Result.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/citymst/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, directed, or unweighted.
//   - ErrDisconnected  : if |V| > 1 and the graph is not fully connected.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed() and !graph.HasDirectedEdges().
//  2. |V| ≤ 1 → trivial MST (no edges, weight 0).
//  3. Collect all edges via graph.Edges() (insertion order), skip self-loops.
//  4. Stable sort by ascending Weight, so equal weights keep insertion order.
//  5. Initialize DSU parent[] and rank[] for each vertex.
//  6. Accept each edge whose endpoints are in different components.
//  7. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) (Result, error) {
	if err := validate(graph); err != nil {
		return Result{}, err
	}

	vertices := graph.Vertices()
	if len(vertices) <= 1 {
		return emptyResult(graph), nil
	}

	allEdges := graph.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
		rank[vid] = 0
	}

	// Iterative find with path halving.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges two roots by rank; callers pass distinct roots.
	union := func(rootU, rootV string) {
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	var (
		mst      = make([]core.Edge, 0, len(vertices)-1)
		total    float64
		numVerts = len(vertices)
	)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, *e)
		total += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}

	if len(mst) < numVerts-1 {
		return Result{}, ErrDisconnected
	}

	return newResult(graph, mst, total)
}
