// Package prim_kruskal defines configuration options, sentinel errors and the
// Result type for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/citymst/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted,
// connected graph. Returned when graph is nil, directed or unweighted; wrapped by
// ErrDisconnected.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. errors.Is(ErrDisconnected, ErrInvalidGraph) holds.
var ErrDisconnected = fmt.Errorf("%w: graph is disconnected", ErrInvalidGraph)

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrUnknownMethod indicates an MSTOptions.Method that is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is a computed minimum spanning tree.
//
// Fields:
//
//	Edges — tree edges in the order the algorithm accepted them (copies of the source edges).
//	Total — sum of Edges' weights.
//	Tree  — a graph with every source vertex (same insertion order) and only the tree edges.
type Result struct {
	Edges []core.Edge
	Total float64
	Tree  *core.Graph
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	// Empty means "first inserted vertex" when going through Extract.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// ParseMethod normalizes a user-supplied method name ("Prim", " kruskal ").
// An empty string yields MethodKruskal.
func ParseMethod(s string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	switch m {
	case "":
		return MethodKruskal, nil
	case MethodKruskal, MethodPrim:
		return m, nil
	default:
		return "", fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, opts.Root).
//	– otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return Result{}, fmt.Errorf("Compute: method %q: %w", opts.Method, ErrUnknownMethod)
	}
}

// Extract is the MST step of the city pipeline: it applies opts over
// DefaultOptions and runs Compute. For Prim with no explicit root, the first
// inserted vertex is used.
func Extract(graph *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Method == MethodPrim && o.Root == "" && graph != nil {
		if order := graph.InsertionOrder(); len(order) > 0 {
			o.Root = order[0]
		}
	}

	return Compute(graph, o)
}

// validate checks the structural preconditions shared by Prim and Kruskal.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return ErrInvalidGraph
	}

	return nil
}

// emptyResult is the MST of a graph with no edges to choose: every vertex kept, no edges.
func emptyResult(graph *core.Graph) Result {
	return Result{Edges: []core.Edge{}, Tree: graph.CloneEmpty()}
}

// newResult materializes the tree graph for the accepted edges.
func newResult(graph *core.Graph, edges []core.Edge, total float64) (Result, error) {
	tree := graph.CloneEmpty()
	for _, e := range edges {
		if _, err := tree.AddEdge(e.From, e.To, e.Weight); err != nil {
			return Result{}, fmt.Errorf("tree AddEdge(%s,%s): %w", e.From, e.To, err)
		}
	}

	return Result{Edges: edges, Total: total, Tree: tree}, nil
}
