// Package pipeline runs one city-MST request end to end:
// sample k cities → complete Euclidean graph → MST → render payload.
//
// A Pipeline is safe for concurrent use. Each Run gets its own RNG stream
// derived from the base seed, plus its own sample, graph and tree.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/katalvlaran/citymst/builder"
	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/points"
	"github.com/katalvlaran/citymst/prim_kruskal"
	"github.com/katalvlaran/citymst/render"
	"github.com/katalvlaran/citymst/sampler"
)

// Result is everything one run produced.
type Result struct {
	Points  []points.Point
	Graph   *core.Graph
	MST     prim_kruskal.Result
	Payload render.Payload
}

// Pipeline wires the store to the sampling, graph, MST and render steps.
type Pipeline struct {
	store  *points.Store
	seed   int64
	method string
	logger *log.Logger

	mu     sync.Mutex
	stream uint64
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSeed fixes the base seed; runs are then reproducible in call order.
// Seed 0 means "seed from the wall clock".
func WithSeed(seed int64) Option {
	return func(p *Pipeline) {
		p.seed = seed
	}
}

// WithMethod selects the MST algorithm (prim_kruskal.MethodKruskal or MethodPrim).
func WithMethod(method string) Option {
	return func(p *Pipeline) {
		p.method = method
	}
}

// WithLogger sets the logger for per-run timing lines. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(p *Pipeline) {
		p.logger = l
	}
}

// New returns a Pipeline over store. Panics on a nil store.
func New(store *points.Store, opts ...Option) *Pipeline {
	if store == nil {
		panic("pipeline: New(nil store)")
	}
	p := &Pipeline{
		store:  store,
		method: prim_kruskal.MethodKruskal,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}

	return p
}

// Store returns the registry the pipeline samples from.
func (p *Pipeline) Store() *points.Store { return p.store }

// Run executes one request for k cities.
//
// Errors:
//   - ctx.Err() if the context is already done.
//   - sampler.ErrOutOfRange for k outside [1, N].
//   - builder / prim_kruskal / render errors, wrapped with the failing step.
func (p *Pipeline) Run(ctx context.Context, k int) (res Result, err error) {
	done := p.timeOp("pipeline.run", k)
	defer func() { done(&res, &err) }()

	if err = ctx.Err(); err != nil {
		return Result{}, err
	}

	pts, err := sampler.New(p.store, sampler.WithRand(p.nextRand())).Sample(k)
	if err != nil {
		return Result{}, fmt.Errorf("sample: %w", err)
	}

	g, err := builder.Cities(pts)
	if err != nil {
		return Result{}, fmt.Errorf("build: %w", err)
	}

	mst, err := prim_kruskal.Extract(g, prim_kruskal.WithMethod(p.method))
	if err != nil {
		return Result{}, fmt.Errorf("mst: %w", err)
	}

	payload, err := render.Project(mst.Tree, pts)
	if err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}

	return Result{Points: pts, Graph: g, MST: mst, Payload: payload}, nil
}
