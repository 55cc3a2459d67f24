// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount/HasDirectedEdges.
// Determinism:
//   - Edges() returns edges in insertion order (monotonic Edge.ID sequence).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
// Missing endpoints are created.
//
// Errors:
//   - ErrEmptyVertexID: from or to is empty.
//   - ErrBadWeight: weight is NaN/±Inf, or non-zero on an unweighted graph.
//   - ErrLoopNotAllowed: from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed: an edge between from and to already exists and multi-edges are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// Mirror undirected
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge(a,b) == HasEdge(b,a) for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Weight returns the weight of the lightest edge from→to.
//
// Errors:
//   - ErrEdgeNotFound: no such edge.
//
// Complexity: O(m) for m parallel edges between the pair (1 on simple graphs).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	if len(bucket) == 0 {
		return 0, ErrEdgeNotFound
	}
	best := math.Inf(1)
	for eid := range bucket {
		if w := g.edges[eid].Weight; w < best {
			best = w
		}
	}

	return best, nil
}

// Edges returns all edges in insertion order (ascending numeric Edge.ID).
// Returned pointers are read-only by convention.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether there exists at least one edge with Directed == true.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// nextEdgeID returns a new unique textual edge ID.
// Must be called under muEdgeAdj write lock; the counter itself is atomic so
// that CloneEmpty can read it without contention.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence from an edge ID produced by nextEdgeID.
// Plain lexicographic order would put "e10" before "e2".
func edgeSeq(id string) uint64 {
	if len(id) < 2 {
		return 0
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
