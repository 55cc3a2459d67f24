package render

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Coord is one entry of an edge coordinate sequence: either a number or the
// separator that tells a line-drawing consumer to lift the pen.
// The zero value is the number 0.
type Coord struct {
	v   float64
	sep bool
}

// Separator marks the end of an edge segment. It encodes as JSON null.
var Separator = Coord{sep: true}

// Value wraps a coordinate.
func Value(v float64) Coord { return Coord{v: v} }

// IsSeparator reports whether c is the segment separator.
func (c Coord) IsSeparator() bool { return c.sep }

// Float returns the coordinate and true, or 0 and false for the separator.
func (c Coord) Float() (float64, bool) {
	if c.sep {
		return 0, false
	}

	return c.v, true
}

// String renders the coordinate, or "sep" for the separator.
func (c Coord) String() string {
	if c.sep {
		return "sep"
	}

	return fmt.Sprintf("%g", c.v)
}

// MarshalJSON encodes the separator as null and values as JSON numbers.
func (c Coord) MarshalJSON() ([]byte, error) {
	if c.sep {
		return []byte("null"), nil
	}

	return json.Marshal(c.v)
}

// UnmarshalJSON accepts null (separator) or a number.
func (c *Coord) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*c = Separator
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("render: coord: %w", err)
	}
	*c = Value(v)

	return nil
}
