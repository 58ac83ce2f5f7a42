package city

import "fmt"

// List is an ordered, immutable sequence of cities. The position of a city
// is its identifier for the whole search.
//
// Invariants (enforced by NewList):
//   - Size() ≥ 1;
//   - all coordinate pairs are pairwise distinct.
type List struct {
	cities []City
}

// NewList copies cities into a new List after checking the invariants.
//
// Errors:
//   - ErrInvalidInput when no city is given;
//   - ErrDuplicateCity when two cities share coordinates (the message names
//     both 1-based positions).
//
// Complexity: O(n) time, O(n) space.
func NewList(cities ...City) (*List, error) {
	if len(cities) == 0 {
		return nil, ErrInvalidInput
	}
	if i, j, dup := firstDuplicate(cities); dup {
		return nil, fmt.Errorf("%w: cities %d and %d at %v", ErrDuplicateCity, i+1, j+1, cities[j])
	}

	out := make([]City, len(cities))
	copy(out, cities)

	return &List{cities: out}, nil
}

// Size returns the number of cities.
func (l *List) Size() int { return len(l.cities) }

// Coordinates returns the coordinates of the city at index i.
// It fails with ErrIndexOutOfRange if i ∉ [0, n).
func (l *List) Coordinates(i int) (x, y int, err error) {
	c, err := l.At(i)
	if err != nil {
		return 0, 0, err
	}

	return c.X, c.Y, nil
}

// At returns the city at index i, or ErrIndexOutOfRange.
func (l *List) At(i int) (City, error) {
	if i < 0 || i >= len(l.cities) {
		return City{}, ErrIndexOutOfRange
	}

	return l.cities[i], nil
}

// Cities returns a copy of the underlying cities in index order.
func (l *List) Cities() []City {
	out := make([]City, len(l.cities))
	copy(out, l.cities)

	return out
}

// firstDuplicate reports the first pair (i < j) of cities sharing coordinates.
//
// Complexity: O(n) time, O(n) space.
func firstDuplicate(cities []City) (int, int, bool) {
	firstAt := make(map[City]int, len(cities))

	var (
		i, j int
		c    City
		ok   bool
	)
	for j, c = range cities {
		if i, ok = firstAt[c]; ok {
			return i, j, true
		}
		firstAt[c] = j
	}

	return 0, 0, false
}
