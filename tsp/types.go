package tsp

import (
	"time"

	"github.com/katalvlaran/tspbrute/city"
)

// Sentinel errors. They alias the city package sentinels so that a single
// errors.Is check works regardless of which layer rejected the input.
var (
	// ErrInvalidInput: fewer than one city, Count larger than the store,
	// duplicate coordinates, or an unknown Enumeration.
	ErrInvalidInput = city.ErrInvalidInput

	// ErrIndexOutOfRange: a permutation refers to a city the store does not hold.
	ErrIndexOutOfRange = city.ErrIndexOutOfRange
)

// Store supplies city coordinates by index. *city.List satisfies it.
type Store interface {
	// Size returns the number of cities.
	Size() int
	// Coordinates returns the city at index i or ErrIndexOutOfRange.
	Coordinates(i int) (x, y int, err error)
}

// Enumeration selects which permutations are scored.
type Enumeration int

const (
	// AllPermutations scores all n! orderings (rotation- and reflection-
	// equivalent tours are scored again).
	AllPermutations Enumeration = iota

	// DistinctTours fixes city 0 in the first position and skips the mirror
	// image of every tour: (n−1)!/2 evaluations for n ≥ 3, one for n ≤ 2.
	DistinctTours
)

// String implements fmt.Stringer.
func (e Enumeration) String() string {
	switch e {
	case AllPermutations:
		return "all-permutations"
	case DistinctTours:
		return "distinct-tours"
	default:
		return "unknown"
	}
}

// Options configures a run. The zero value is the literal exhaustive search
// over every city of the store with no reporting.
type Options struct {
	// Count is the number of cities to process, taken from the front of the
	// store. 0 means Store.Size().
	Count int

	// Enumeration selects AllPermutations (default) or DistinctTours.
	Enumeration Enumeration

	// Sink, when non-nil, receives every Evaluation and the final Result.
	Sink Sink

	// Observer, when non-nil, is notified at run start and run end.
	Observer Observer
}

// DefaultOptions returns the literal exhaustive configuration.
func DefaultOptions() Options {
	return Options{Enumeration: AllPermutations}
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the best permutation of city indices (open form, len == n).
	// The tour is implicitly closed: Tour[n-1] connects back to Tour[0].
	Tour []int

	// Distance is the closed-tour length of Tour, stabilised to 1e-9.
	Distance float64

	// Evaluated is the number of permutations scored.
	Evaluated int
}

// ClosedTour returns Tour with the first city appended (len == n+1).
func (r Result) ClosedTour() []int { return CloseTour(r.Tour) }

// Labels returns the closed tour as 1-based city labels.
func (r Result) Labels() []int { return Labels(r.Tour) }

// Evaluation records one scored permutation.
type Evaluation struct {
	// Index is the 0-based position in enumeration order.
	Index int

	// Tour is the closed tour as 1-based labels (len == n+1, first == last).
	Tour []int

	// Distance is the closed-tour length.
	Distance float64

	// Elapsed is the time spent scoring this permutation alone.
	Elapsed time.Duration
}

// Sink consumes the trace of a run. Record is called once per evaluated
// permutation in enumeration order; Finalize once with the best result.
// Implementations own their I/O errors; the search never fails because of them.
type Sink interface {
	Record(ev Evaluation)
	Finalize(res Result)
}

// Observer brackets a run, e.g. for wall-clock or memory sampling.
// RunStarted is called after validation, right before the first permutation;
// RunFinished right after the last one.
type Observer interface {
	RunStarted(n int)
	RunFinished(res Result)
}
