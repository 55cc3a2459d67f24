// Package points holds the read-only registry of named geographic points
// that city samples are drawn from.
//
// A Store is built once (Default or New) and never mutated afterwards, so a
// single Store may be shared by any number of concurrent samplers.
package points

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// Sentinel errors for registry construction.
var (
	// ErrEmptyName indicates a point without a name.
	ErrEmptyName = errors.New("points: empty point name")

	// ErrDuplicateName indicates two points sharing a name.
	ErrDuplicateName = errors.New("points: duplicate point name")

	// ErrNotFound indicates a lookup for a name the registry does not hold.
	ErrNotFound = errors.New("points: point not found")
)

// Point is a named location. Lat and Lon are raw degrees.
type Point struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Orb returns the point as an orb.Point, which is ordered (lon, lat).
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// Store is an ordered, immutable collection of Points with unique names.
type Store struct {
	pts    []Point
	byName map[string]int
}

// New builds a Store from pts, preserving their order.
//
// Errors:
//   - ErrEmptyName: a point has Name == "".
//   - ErrDuplicateName: two points share a Name.
func New(pts ...Point) (*Store, error) {
	s := &Store{
		pts:    make([]Point, 0, len(pts)),
		byName: make(map[string]int, len(pts)),
	}
	for i, p := range pts {
		if p.Name == "" {
			return nil, fmt.Errorf("New: point #%d: %w", i, ErrEmptyName)
		}
		if _, dup := s.byName[p.Name]; dup {
			return nil, fmt.Errorf("New: point %q: %w", p.Name, ErrDuplicateName)
		}
		s.byName[p.Name] = len(s.pts)
		s.pts = append(s.pts, p)
	}

	return s, nil
}

// MustNew is like New but panics on error. Intended for static registries.
func MustNew(pts ...Point) *Store {
	s, err := New(pts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of points in the registry.
func (s *Store) Len() int { return len(s.pts) }

// At returns the i-th point. It panics if i is out of range, like a slice index.
func (s *Store) At(i int) Point { return s.pts[i] }

// All returns a copy of the registry in its original order.
func (s *Store) All() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)

	return out
}

// Lookup returns the point with the given name.
func (s *Store) Lookup(name string) (Point, error) {
	i, ok := s.byName[name]
	if !ok {
		return Point{}, fmt.Errorf("Lookup(%q): %w", name, ErrNotFound)
	}

	return s.pts[i], nil
}
