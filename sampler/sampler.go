// Package sampler draws uniform random subsets of a points.Store.
//
// Randomness is always an explicit *rand.Rand owned by the Sampler: tests pin
// it with WithSeed, production code gets a per-Sampler time-seeded stream.
// math/rand.Rand is NOT goroutine-safe, so neither is a Sampler; create one
// per request or derive independent streams (see DeriveRand).
package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/citymst/points"
)

// ErrOutOfRange indicates k outside [1, N] for a registry of N points.
var ErrOutOfRange = errors.New("sampler: k out of range")

// Sampler picks k distinct points uniformly at random from a Store.
type Sampler struct {
	store *points.Store
	rng   *rand.Rand
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(s *Sampler) {
		s.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(s *Sampler) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// New returns a Sampler over store. Without WithRand/WithSeed the RNG is
// seeded from the wall clock. Panics on a nil store.
func New(store *points.Store, opts ...Option) *Sampler {
	if store == nil {
		panic("sampler: New(nil store)")
	}
	s := &Sampler{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s
}

// Sample returns k distinct points drawn without replacement. Every k-subset
// is equally likely; the order of the result is the draw order.
//
// Errors:
//   - ErrOutOfRange: k < 1 or k > store.Len().
//
// Complexity: O(N) time and space for a registry of N points.
func (s *Sampler) Sample(k int) ([]points.Point, error) {
	n := s.store.Len()
	if k < 1 || k > n {
		return nil, fmt.Errorf("Sample: k=%d not in [1,%d]: %w", k, n, ErrOutOfRange)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher–Yates: the first k slots end up a uniform k-permutation.
	out := make([]points.Point, k)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = s.store.At(idx[i])
	}

	return out, nil
}
