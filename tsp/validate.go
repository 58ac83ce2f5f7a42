// Package tsp - input validation shared by Solve and Evaluations.
//
// All checks run before the first permutation is generated, so a rejected
// input never produces partial work or a partial Result.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input; sentinel errors from types.go,
//     wrapped with detail where the caller benefits from it.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspbrute/city"
)

// validateAll checks Options + store and prefetches the first n cities.
// Prefetching keeps the hot path free of interface calls and error returns:
// once it succeeds, every index in [0, n) is known to resolve.
//
// Contract:
//   - store must be non-nil;
//   - n = opts.Count (or store.Size() when Count == 0) must satisfy 1 ≤ n ≤ Size();
//   - the first n cities must have pairwise distinct coordinates.
//
// Complexity: O(n) time, O(n) space.
func validateAll(store Store, opts Options) ([]city.City, error) {
	// Stage 1: options-only sanity.
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrInvalidInput
	}

	// Stage 2: resolve n against the store.
	var (
		size = store.Size()
		n    = opts.Count
	)
	if n == 0 {
		n = size
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one city, got %d", ErrInvalidInput, n)
	}
	if n > size {
		return nil, fmt.Errorf("%w: %d cities requested, store holds %d", ErrInvalidInput, n, size)
	}

	// Stage 3: prefetch coordinates; any lookup failure is surfaced as-is.
	cities := make([]city.City, n)

	var (
		i    int
		x, y int
		err  error
	)
	for i = 0; i < n; i++ {
		if x, y, err = store.Coordinates(i); err != nil {
			return nil, fmt.Errorf("tsp: city %d: %w", i, err)
		}
		cities[i] = city.City{X: x, Y: y}
	}

	// Stage 4: store invariant (distinct coordinates) re-checked here because
	// Store is an interface and need not be a *city.List.
	if _, err = city.NewList(cities...); err != nil {
		return nil, err
	}

	return cities, nil
}

// validateOptions checks Options without looking at the store.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Count < 0 {
		return fmt.Errorf("%w: negative city count %d", ErrInvalidInput, opts.Count)
	}
	switch opts.Enumeration {
	case AllPermutations, DistinctTours:
		// ok
	default:
		return fmt.Errorf("%w: unknown enumeration %d", ErrInvalidInput, int(opts.Enumeration))
	}

	return nil
}
