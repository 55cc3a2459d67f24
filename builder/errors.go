// SPDX-License-Identifier: MIT
// Package: citymst/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates an empty point list.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrDuplicateVertex indicates two points with the same name in one build.
var ErrDuplicateVertex = errors.New("builder: duplicate vertex")

// ErrBadWeight indicates a weight function returned NaN, ±Inf or a negative value.
var ErrBadWeight = errors.New("builder: invalid edge weight")

// ErrUnsupportedGraphMode indicates the constructor is incompatible with the
// core.Graph mode (Complete needs a weighted graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a construction step could not complete, e.g. a
// nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
