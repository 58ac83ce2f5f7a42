// Package city - random generation of unique city sets.
//
// Generation is deterministic for a given seed so that test fixtures and
// benchmark instances are reproducible:
//   - seed == 0 ⇒ defaultRNGSeed is used;
//   - any other seed is used verbatim.
//
// Callers who want a fresh set on every run (the CLI) pass a time-derived seed.
//
// Concurrency: every call builds its own *rand.Rand; nothing is shared.
package city

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Generate returns n cities with integer coordinates in [0, interval) on both
// axes and pairwise distinct positions. Draws that collide with an already
// placed city are rejected and redrawn.
//
// Errors:
//   - ErrInvalidInput if n < 1 or interval < 1;
//   - ErrInvalidInput if n > interval², since the grid cannot hold n
//     distinct cities.
//
// Complexity: expected O(n) draws while n ≪ interval²; O(n) space.
func Generate(n, interval int, seed int64) (*List, error) {
	if n < 1 || interval < 1 {
		return nil, ErrInvalidInput
	}
	if n > interval*interval {
		return nil, ErrInvalidInput
	}

	var (
		rng  = rngFromSeed(seed)
		seen = make(map[City]struct{}, n)
		out  = make([]City, 0, n)
		c    City
		ok   bool
	)
	for len(out) < n {
		c = City{X: rng.Intn(interval), Y: rng.Intn(interval)}
		if _, ok = seen[c]; ok {
			continue // coordinates taken; draw again
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return &List{cities: out}, nil
}
