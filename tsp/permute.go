// Package tsp - permutation engine (exhaustive enumeration).
//
// The engine enumerates permutations in place with fixed-position recursive
// swap generation:
//
//	permute(l):
//	  if l == n-1: evaluate(path)
//	  for i in [l, n):
//	    swap(path[l], path[i]); permute(l+1); swap(path[l], path[i])
//
// Starting from path = [0, 1, ..., n-1] this yields each of the n! orderings
// exactly once, always in the same order (for n = 3: 012, 021, 102, 120, 210,
// 201). The swap-back restores the buffer for the next candidate, so a single
// n-length buffer serves the whole run.
//
// Best tracking: best distance starts at +Inf; a permutation replaces the
// incumbent only when strictly shorter, so among equal minima the first one
// in enumeration order wins.
//
// Complexity:
//   - Time:   O(n!·n) (n! leaves, O(n) evaluation each).
//   - Memory: O(n) for path + best, plus the O(n) recursion depth.
package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/tspbrute/city"
)

// engine holds all enumeration state for a single run.
// Only the enumeration call stack touches it; no locking is needed.
type engine struct {
	// Configuration
	cities []city.City
	n      int
	mode   Enumeration

	// Reporting (both optional). When neither is set, evaluate() does no
	// timing and no allocation.
	sink  Sink
	yield func(Evaluation) bool

	// Working permutation buffer.
	path []int

	// Incumbent.
	best      []int
	bestDist  float64
	evaluated int

	// stopped is set when the iterator consumer breaks out early.
	stopped bool
}

// newEngine prepares buffers for cities; cities must already be validated.
func newEngine(cities []city.City, mode Enumeration) *engine {
	var n = len(cities)

	return &engine{
		cities:   cities,
		n:        n,
		mode:     mode,
		path:     make([]int, n),
		best:     make([]int, n),
		bestDist: math.Inf(1),
	}
}

// traced reports whether per-permutation records must be built.
func (e *engine) traced() bool { return e.sink != nil || e.yield != nil }

// run initialises the path to the identity and enumerates.
func (e *engine) run() {
	var i int
	for i = 0; i < e.n; i++ {
		e.path[i] = i
	}
	e.bestDist = math.Inf(1)
	e.evaluated = 0

	// DistinctTours keeps city 0 in position 0: rotations are never generated.
	var start int
	if e.mode == DistinctTours && e.n > 1 {
		start = 1
	}
	e.permute(start)
}

// permute fixes position l and recurses; see the file header for the scheme.
func (e *engine) permute(l int) {
	if e.stopped {
		return
	}
	if l >= e.n-1 {
		e.evaluate()

		return
	}

	var i int
	for i = l; i < e.n; i++ {
		e.path[l], e.path[i] = e.path[i], e.path[l]
		e.permute(l + 1)
		e.path[l], e.path[i] = e.path[i], e.path[l]
	}
}

// evaluate scores the complete permutation held in path.
func (e *engine) evaluate() {
	// Mirror pruning: with path[0] fixed, a tour and its reversal differ by
	// the order of path[1] and path[n-1]; keep the one with path[1] smaller.
	if e.mode == DistinctTours && e.n > 2 && e.path[1] > e.path[e.n-1] {
		return
	}

	var (
		began   time.Time
		elapsed time.Duration
		traced  = e.traced()
	)
	if traced {
		began = time.Now()
	}
	dist := tourDistance(e.cities, e.path)
	if traced {
		elapsed = time.Since(began)
	}

	index := e.evaluated
	e.evaluated++
	if dist < e.bestDist {
		e.bestDist = dist
		copy(e.best, e.path)
	}

	if !traced {
		return
	}
	ev := Evaluation{
		Index:    index,
		Tour:     Labels(e.path),
		Distance: dist,
		Elapsed:  elapsed,
	}
	if e.sink != nil {
		e.sink.Record(ev)
	}
	if e.yield != nil && !e.yield(ev) {
		e.stopped = true
	}
}

// result snapshots the incumbent into an independent Result.
func (e *engine) result() Result {
	return Result{
		Tour:      CopyTour(e.best),
		Distance:  e.bestDist,
		Evaluated: e.evaluated,
	}
}

// Factorial returns n! for n ≥ 0 (1 for n ≤ 1). It is the number of
// evaluations AllPermutations performs on n cities.
//
// Complexity: O(n).
func Factorial(n int) int {
	var (
		f = 1
		i int
	)
	for i = 2; i <= n; i++ {
		f *= i
	}

	return f
}

// ExpectedEvaluations returns how many permutations mode scores on n cities.
func ExpectedEvaluations(n int, mode Enumeration) int {
	if mode == DistinctTours {
		if n <= 2 {
			return 1
		}

		return Factorial(n-1) / 2
	}

	return Factorial(n)
}
