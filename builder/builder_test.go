// File: builder_test.go
// Package builder_test verifies Complete/Cities topology, weights and error paths.
package builder_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/citymst/builder"
	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle is the A(0,0), B(0,3), C(4,0) fixture with weights AB=3, AC=4, BC=5.
var triangle = []points.Point{
	{Name: "A", Lat: 0, Lon: 0},
	{Name: "B", Lat: 0, Lon: 3},
	{Name: "C", Lat: 4, Lon: 0},
}

func TestEuclidean(t *testing.T) {
	assert.Equal(t, 3.0, builder.Euclidean(triangle[0], triangle[1]))
	assert.Equal(t, 4.0, builder.Euclidean(triangle[0], triangle[2]))
	assert.Equal(t, 5.0, builder.Euclidean(triangle[1], triangle[2]))
	assert.Equal(t, builder.Euclidean(triangle[1], triangle[2]), builder.Euclidean(triangle[2], triangle[1]))
	assert.Zero(t, builder.Euclidean(triangle[0], triangle[0]))
}

func TestCities_Triangle(t *testing.T) {
	g, err := builder.Cities(triangle)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.InsertionOrder())
	assert.Equal(t, 3, g.EdgeCount())

	want := map[[2]string]float64{{"A", "B"}: 3, {"A", "C"}: 4, {"B", "C"}: 5}
	for pair, w := range want {
		got, err := g.Weight(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, w, got)
		back, err := g.Weight(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, got, back)
	}
}

// TestCities_EdgeCount checks n(n-1)/2 edges and non-negative weights for every prefix of the registry.
func TestCities_EdgeCount(t *testing.T) {
	all := points.Default().All()
	for n := 1; n <= len(all); n++ {
		g, err := builder.Cities(all[:n])
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, g.VertexCount())
		assert.Equal(t, n*(n-1)/2, g.EdgeCount(), "n=%d", n)
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, 0.0)
			assert.NotEqual(t, e.From, e.To)
		}
	}
}

// TestCities_Idempotent verifies that rebuilding yields identical weights.
func TestCities_Idempotent(t *testing.T) {
	pts := points.Default().All()
	g1, err := builder.Cities(pts)
	require.NoError(t, err)
	g2, err := builder.Cities(pts)
	require.NoError(t, err)

	e1, e2 := g1.Edges(), g2.Edges()
	require.Len(t, e2, len(e1))
	for i := range e1 {
		assert.Equal(t, *e1[i], *e2[i])
	}
}

// TestComplete_WeightFnCalledOncePerPair verifies weights are computed exactly once per unordered pair.
func TestComplete_WeightFnCalledOncePerPair(t *testing.T) {
	calls := make(map[[2]string]int)
	counting := func(a, b points.Point) float64 {
		calls[[2]string{a.Name, b.Name}]++
		return builder.Euclidean(a, b)
	}

	pts := points.Default().All()[:5]
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted(), core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithWeightFn(counting)},
		builder.Complete(pts),
	)
	require.NoError(t, err)

	assert.Len(t, calls, 10)
	for pair, n := range calls {
		assert.Equal(t, 1, n, "pair %v", pair)
	}
	// Directed mode mirrors every pair.
	assert.Equal(t, 20, g.EdgeCount())
}

func TestComplete_Errors(t *testing.T) {
	tests := []struct {
		name  string
		gopts []core.GraphOption
		bopts []builder.BuilderOption
		pts   []points.Point
		want  error
	}{
		{
			name:  "empty",
			gopts: []core.GraphOption{core.WithWeighted()},
			want:  builder.ErrTooFewVertices,
		},
		{
			name:  "duplicate",
			gopts: []core.GraphOption{core.WithWeighted()},
			pts:   []points.Point{{Name: "A"}, {Name: "A", Lat: 1}},
			want:  builder.ErrDuplicateVertex,
		},
		{
			name:  "empty name",
			gopts: []core.GraphOption{core.WithWeighted()},
			pts:   []points.Point{{Name: ""}},
			want:  core.ErrEmptyVertexID,
		},
		{
			name: "unweighted",
			pts:  triangle,
			want: builder.ErrUnsupportedGraphMode,
		},
		{
			name:  "NaN weight",
			gopts: []core.GraphOption{core.WithWeighted()},
			bopts: []builder.BuilderOption{builder.WithWeightFn(func(_, _ points.Point) float64 { return math.NaN() })},
			pts:   triangle,
			want:  builder.ErrBadWeight,
		},
		{
			name:  "negative weight",
			gopts: []core.GraphOption{core.WithWeighted()},
			bopts: []builder.BuilderOption{builder.WithWeightFn(func(_, _ points.Point) float64 { return -1 })},
			pts:   triangle,
			want:  builder.ErrBadWeight,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, tc.bopts, builder.Complete(tc.pts))
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestComplete_SinglePoint(t *testing.T) {
	g, err := builder.Cities(triangle[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestWithWeightFn_Nil(t *testing.T) {
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func ExampleCities() {
	g, err := builder.Cities([]points.Point{
		{Name: "A", Lat: 0, Lon: 0},
		{Name: "B", Lat: 0, Lon: 3},
		{Name: "C", Lat: 4, Lon: 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s %.0f\n", e.From, e.To, e.Weight)
	}
	// Output:
	// A-B 3
	// A-C 4
	// B-C 5
}
