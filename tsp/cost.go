// Package tsp - tour distance utilities.
//
// A tour is scored as the sum of Euclidean edge lengths between consecutive
// cities plus the closing edge from the last city back to the first:
//
//	D(p) = Σ_{i=0}^{n-2} d(p[i], p[i+1]) + d(p[n-1], p[0])
//
// Design:
//   - The hot path (tourDistance) works on prefetched cities and performs no
//     checks; validateAll has already proven every index resolves.
//   - The exported helpers resolve indices through Store and surface
//     ErrIndexOutOfRange for a malformed permutation.
//   - Sums are rounded to 1e-9 so that rotation- and reflection-equivalent
//     tours compare equal and the first-found minimum stays the winner.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspbrute/city"
)

// roundScale controls final distance stabilisation precision (1e-9).
const roundScale = 1e9

// TourDistance returns the closed-tour distance of perm over store.
//
// Contract:
//   - store non-nil and perm non-empty, otherwise ErrInvalidInput;
//   - every perm[i] must resolve in store, otherwise ErrIndexOutOfRange.
//
// A single-city tour has distance 0.
//
// Complexity: O(n).
func TourDistance(store Store, perm []int) (float64, error) {
	if store == nil || len(perm) == 0 {
		return 0, ErrInvalidInput
	}

	cities := make([]city.City, len(perm))

	var (
		i    int
		x, y int
		err  error
	)
	for i = range perm {
		if x, y, err = store.Coordinates(perm[i]); err != nil {
			return 0, fmt.Errorf("tsp: tour position %d (city %d): %w", i, perm[i], err)
		}
		cities[i] = city.City{X: x, Y: y}
	}

	// cities is already laid out in tour order, so the identity path scores it.
	return tourDistance(cities, identity(len(cities))), nil
}

// EdgeDistance returns the Euclidean distance between cities u and v of store.
//
// Complexity: O(1).
func EdgeDistance(store Store, u, v int) (float64, error) {
	if store == nil {
		return 0, ErrInvalidInput
	}
	ux, uy, err := store.Coordinates(u)
	if err != nil {
		return 0, err
	}
	vx, vy, err := store.Coordinates(v)
	if err != nil {
		return 0, err
	}

	return city.Distance(city.City{X: ux, Y: uy}, city.City{X: vx, Y: vy}), nil
}

// tourDistance is the unchecked evaluation used inside the enumeration.
//
// Complexity: O(n), no allocations.
func tourDistance(cities []city.City, path []int) float64 {
	var (
		n   = len(path)
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += city.Distance(cities[path[i]], cities[path[i+1]])
	}
	// Closing edge back to the start.
	sum += city.Distance(cities[path[n-1]], cities[path[0]])

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
