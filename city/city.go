package city

import (
	"fmt"
	"math"
)

// City is an immutable pair of integer coordinates.
type City struct {
	X int `json:"x" mapstructure:"x"`
	Y int `json:"y" mapstructure:"y"`
}

// String renders the city as "(x, y)".
func (c City) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Distance returns the Euclidean distance between a and b,
// sqrt(dx² + dy²) computed in float64.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	var (
		dx = float64(b.X - a.X)
		dy = float64(b.Y - a.Y)
	)

	return math.Sqrt(dx*dx + dy*dy)
}
