// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/citymst/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, directed, or unweighted.
//   - ErrEmptyRoot          : if |V| > 1 and root is empty.
//   - core.ErrVertexNotFound: if root does not exist in a non-empty graph.
//   - ErrDisconnected       : if |V| > 1 and the graph is not fully connected.
//
// Steps:
//  1. Validate graph; |V| == 0 → empty MST.
//  2. |V| == 1 → root must be that vertex; empty MST.
//  3. Mark root visited and push its incident edges.
//  4. Pop the lightest edge; skip it if its far endpoint is visited, else accept it
//     and push the new vertex's edges towards unvisited vertices.
//  5. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) (Result, error) {
	if err := validate(graph); err != nil {
		return Result{}, err
	}

	n := graph.VertexCount()
	if n == 0 {
		return emptyResult(graph), nil
	}
	if n == 1 {
		if !graph.HasVertex(root) {
			return Result{}, core.ErrVertexNotFound
		}

		return emptyResult(graph), nil
	}

	if root == "" {
		return Result{}, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return Result{}, core.ErrVertexNotFound
	}

	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total float64
	pq := &edgePQ{}
	heap.Init(pq)

	// expand marks v visited and queues every edge leading out of the tree.
	expand := func(v string) error {
		visited[v] = true
		nbs, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range nbs {
			if to := e.Other(v); !visited[to] {
				heap.Push(pq, candidate{edge: e, to: to, seq: pq.next()})
			}
		}

		return nil
	}

	if err := expand(root); err != nil {
		return Result{}, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		mst = append(mst, *c.edge)
		total += c.edge.Weight
		if err := expand(c.to); err != nil {
			return Result{}, err
		}
	}

	if len(mst) < n-1 {
		return Result{}, ErrDisconnected
	}

	return newResult(graph, mst, total)
}

// candidate is a frontier edge together with the vertex it would add.
// seq breaks weight ties in push order so results are reproducible.
type candidate struct {
	edge *core.Edge
	to   string
	seq  int
}

// edgePQ implements heap.Interface for a min‐heap of candidates ordered by (Weight, seq).
type edgePQ struct {
	items []candidate
	count int
}

func (pq *edgePQ) next() int {
	pq.count++
	return pq.count
}

// Len returns the number of queued candidates.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less orders by weight, then by push order.
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}

	return a.seq < b.seq
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a candidate; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(candidate)) }

// Pop removes the last element; called by heap.Pop after moving the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	c := old[n-1]
	pq.items = old[:n-1]

	return c
}
