// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: fixtures, a recording sink, an independent
// permutation generator for cross-checks, and stdlib assertion helpers.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/tspbrute/city"
	"github.com/katalvlaran/tspbrute/tsp"
)

const (
	// epsTiny is the tolerance for distance comparisons (distances are
	// stabilised to 1e-9).
	epsTiny = 1e-9

	// seedDet is a deterministic seed for generated city sets.
	seedDet = int64(17)
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// mkList builds a *city.List from (x, y) pairs or fails the test.
func mkList(t testing.TB, pts ...[2]int) *city.List {
	t.Helper()
	cities := make([]city.City, len(pts))
	var i int
	for i = range pts {
		cities[i] = city.City{X: pts[i][0], Y: pts[i][1]}
	}
	l, err := city.NewList(cities...)
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}

	return l
}

// mkRandom generates n unique cities in a 100×100 grid with a fixed seed.
func mkRandom(t testing.TB, n int, seed int64) *city.List {
	t.Helper()
	l, err := city.Generate(n, 100, seed)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	return l
}

// triangle is the right triangle (0,0), (10,0), (0,10).
func triangle(t testing.TB) *city.List {
	return mkList(t, [2]int{0, 0}, [2]int{10, 0}, [2]int{0, 10})
}

// unitSquare lists the corners of the unit square in perimeter order.
func unitSquare(t testing.TB) *city.List {
	return mkList(t, [2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1})
}

// rawStore is a Store that does not enforce the List invariants, used to
// prove the solver re-validates.
type rawStore []city.City

func (s rawStore) Size() int { return len(s) }
func (s rawStore) Coordinates(i int) (int, int, error) {
	if i < 0 || i >= len(s) {
		return 0, 0, tsp.ErrIndexOutOfRange
	}

	return s[i].X, s[i].Y, nil
}

// lyingStore reports a larger Size than it can serve.
type lyingStore struct {
	rawStore
	claimed int
}

func (s lyingStore) Size() int { return s.claimed }

// -----------------------------------------------------------------------------
// Recording collaborators
// -----------------------------------------------------------------------------

// recordingSink keeps every evaluation and the finalized result.
type recordingSink struct {
	evals     []tsp.Evaluation
	final     tsp.Result
	finalized int
}

func (s *recordingSink) Record(ev tsp.Evaluation) { s.evals = append(s.evals, ev) }
func (s *recordingSink) Finalize(res tsp.Result) {
	s.final = res
	s.finalized++
}

// recordingObserver remembers the order of notifications.
type recordingObserver struct {
	events []string
	n      int
	res    tsp.Result
}

func (o *recordingObserver) RunStarted(n int) {
	o.events = append(o.events, "start")
	o.n = n
}
func (o *recordingObserver) RunFinished(res tsp.Result) {
	o.events = append(o.events, "finish")
	o.res = res
}

// -----------------------------------------------------------------------------
// Independent permutation generator (lexicographic next-permutation) used to
// cross-check the engine without sharing any of its code.
// -----------------------------------------------------------------------------

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed.
func nextPermutation(p []int) bool {
	var i = len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	var j = len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}

// fullScanMin scores every permutation of [0, n) through tsp.TourDistance.
func fullScanMin(t *testing.T, store tsp.Store) float64 {
	t.Helper()
	var (
		n    = store.Size()
		p    = make([]int, n)
		best = math.Inf(1)
		i    int
	)
	for i = range p {
		p[i] = i
	}
	for {
		d, err := tsp.TourDistance(store, p)
		if err != nil {
			t.Fatalf("TourDistance(%v): %v", p, err)
		}
		if d < best {
			best = d
		}
		if !nextPermutation(p) {
			break
		}
	}

	return best
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustFloatClose asserts |got-want| ≤ abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}
