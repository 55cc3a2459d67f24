// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - CloneEmpty keeps vertex insertion order and carries nextEdgeID.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Vertex Metadata maps are shared with the source.
//
// Complexity: O(V) to copy vertices and initialize adjacency.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	clone.order = make([]string, 0, len(g.order))
	for _, id := range g.order {
		v := g.vertices[id]
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.order = append(clone.order, id)
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}
