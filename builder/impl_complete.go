// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// impl_complete.go — implementation of Complete(pts) constructor.
//
// Contract:
//   • len(pts) ≥ 1 (else ErrTooFewVertices); names must be unique (else ErrDuplicateVertex).
//   • Adds one vertex per point, ID = Name, in input order.
//   • Emits each unordered pair {i,j} with i<j exactly once, weight cfg.weightFn(p_i, p_j),
//     and mirrors to j→i only if g.Directed() is true (same weight, computed once).
//   • Requires a weighted graph (else ErrUnsupportedGraphMode).
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//   • Space: O(n) for the duplicate-name set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/points"
)

// File-local constants for method tagging and parameter minima (no magic numbers).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n over pts.
// The slice is copied, so later changes by the caller do not leak into the build.
func Complete(pts []points.Point) Constructor {
	own := make([]points.Point, len(pts))
	copy(own, pts)

	return func(g *core.Graph, cfg builderConfig) error {
		n := len(own)
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if !g.Weighted() {
			return fmt.Errorf("%s: graph must be weighted: %w", methodComplete, ErrUnsupportedGraphMode)
		}

		seen := make(map[string]struct{}, n)
		for _, p := range own {
			if _, dup := seen[p.Name]; dup {
				return fmt.Errorf("%s: %q: %w", methodComplete, p.Name, ErrDuplicateVertex)
			}
			seen[p.Name] = struct{}{}
			if err := g.AddVertex(p.Name); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, p.Name, err)
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			u := own[i]
			for j := i + 1; j < n; j++ {
				v := own[j]

				w := cfg.weightFn(u, v)
				if !validWeight(w) {
					return fmt.Errorf("%s: weight(%s,%s)=%g: %w", methodComplete, u.Name, v.Name, w, ErrBadWeight)
				}

				if _, err := g.AddEdge(u.Name, v.Name, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodComplete, u.Name, v.Name, w, err)
				}
				if directed {
					if _, err := g.AddEdge(v.Name, u.Name, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodComplete, v.Name, u.Name, w, err)
					}
				}
			}
		}

		return nil
	}
}
