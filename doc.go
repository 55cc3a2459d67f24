// Package citymst samples random cities, connects them into a complete
// Euclidean graph and draws the minimum spanning tree of that graph.
//
// Everything is organized under small subpackages:
//
//	core/         — thread-safe Graph, Vertex, Edge types & primitives
//	points/       — immutable registry of named (lat, lon) cities
//	sampler/      — uniform k-subset sampling with injectable RNG
//	builder/      — complete graph over a city sample (WeightFn pluggable)
//	prim_kruskal/ — MST extraction: Kruskal (default) or Prim
//	render/       — plot payload with separator-broken edge polylines + GeoJSON
//	pipeline/     — sample → build → MST → render, one call per request
//	internal/     — HTTP API and environment config for cmd/citymst
//
// Quick ASCII example (k = 3, Euclidean weights in degrees):
//
//	  Paris ─────── Berlin
//	                  │
//	               Prague
//
//	represents a tree with three vertices and two edges.
//
//	go run ./cmd/citymst
//	curl 'localhost:8080/mst?k=4'
package citymst
