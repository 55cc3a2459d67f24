// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, NeighborIDs) and adjacency bucket helpers.
// Determinism:
//   - Neighbors() is ordered by edge insertion sequence; NeighborIDs() is lex asc.
// Concurrency:
//   - Read lock order muVert -> muEdgeAdj, matching mutators.

package core

import "sort"

// Neighbors returns the edges incident to id. For directed edges only the
// outgoing ones are returned. Use Edge.Other(id) to get the far endpoint.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d) for d incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted lexicographically.
// Errors are propagated from Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for nb := range seen {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency makes sure adjacencyList[from][to] exists.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
