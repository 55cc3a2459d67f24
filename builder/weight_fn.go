// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// weight_fn.go — edge-weight functions for Complete.

package builder

import (
	"math"

	"github.com/katalvlaran/citymst/points"
)

// WeightFn produces the weight of the edge between a and b.
// It must be pure: same inputs, same output.
type WeightFn func(a, b points.Point) float64

// Euclidean returns sqrt((a.Lat-b.Lat)² + (a.Lon-b.Lon)²) on raw degrees.
// Complexity: O(1).
func Euclidean(a, b points.Point) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon

	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// validWeight reports whether w can be stored as an edge weight.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
