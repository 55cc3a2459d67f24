// Package render flattens a spanning tree over sampled cities into the
// coordinate sequences a map plotting layer consumes.
//
// Edge sequences carry (lon_u, lon_v, Separator) / (lat_u, lat_v, Separator)
// per tree edge, so a single "lines" trace draws every edge as its own
// two-point segment. Node sequences follow the sample order, not tree order.
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/points"
)

// Sentinel errors for projection. Both indicate a caller bug: a pipeline run
// always projects a tree built from the same points.
var (
	// ErrNilTree indicates Project was called without a tree.
	ErrNilTree = errors.New("render: nil tree")

	// ErrUnknownVertex indicates a tree vertex that is not among the ordered points.
	ErrUnknownVertex = errors.New("render: tree vertex not in point list")
)

// Payload is the renderable form of a spanning tree.
//
// EdgeLons/EdgeLats pair positionally and share separator positions.
// NodeLons/NodeLats/Labels pair positionally with the sample order.
type Payload struct {
	EdgeLons []Coord   `json:"edgeLons"`
	EdgeLats []Coord   `json:"edgeLats"`
	NodeLons []float64 `json:"nodeLons"`
	NodeLats []float64 `json:"nodeLats"`
	Labels   []string  `json:"labels"`
}

// Project builds the Payload for tree over ordered.
//
// Lengths: |EdgeLons| = |EdgeLats| = 3·|tree edges|; |NodeLons| = |NodeLats| = |Labels| = len(ordered).
//
// Errors:
//   - ErrNilTree: tree == nil.
//   - ErrUnknownVertex: an edge endpoint of tree is missing from ordered.
//
// Complexity: O(V + E).
func Project(tree *core.Graph, ordered []points.Point) (Payload, error) {
	if tree == nil {
		return Payload{}, ErrNilTree
	}

	byName := make(map[string]points.Point, len(ordered))
	for _, p := range ordered {
		byName[p.Name] = p
	}

	edges := tree.Edges()
	out := Payload{
		EdgeLons: make([]Coord, 0, 3*len(edges)),
		EdgeLats: make([]Coord, 0, 3*len(edges)),
		NodeLons: make([]float64, 0, len(ordered)),
		NodeLats: make([]float64, 0, len(ordered)),
		Labels:   make([]string, 0, len(ordered)),
	}

	for _, e := range edges {
		u, ok := byName[e.From]
		if !ok {
			return Payload{}, fmt.Errorf("Project: %q: %w", e.From, ErrUnknownVertex)
		}
		v, ok := byName[e.To]
		if !ok {
			return Payload{}, fmt.Errorf("Project: %q: %w", e.To, ErrUnknownVertex)
		}
		out.EdgeLons = append(out.EdgeLons, Value(u.Lon), Value(v.Lon), Separator)
		out.EdgeLats = append(out.EdgeLats, Value(u.Lat), Value(v.Lat), Separator)
	}

	for _, p := range ordered {
		out.NodeLons = append(out.NodeLons, p.Lon)
		out.NodeLats = append(out.NodeLats, p.Lat)
		out.Labels = append(out.Labels, p.Name)
	}

	return out, nil
}

// Segments returns the number of edge segments in the payload.
func (p Payload) Segments() int {
	n := 0
	for _, c := range p.EdgeLons {
		if c.IsSeparator() {
			n++
		}
	}

	return n
}
