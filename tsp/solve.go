// Package tsp - entry points for the brute-force solver.
//
//   - Solve: validate, enumerate, report, return the best tour.
//   - Evaluations: validate, then hand back the enumeration as a lazy sequence.
//
// Both share validateAll and the engine in permute.go, so they observe the
// same enumeration order and produce the same distances.
package tsp

import "iter"

// Solve returns the permutation of city indices with minimum closed-tour
// distance and that distance.
//
// Contract:
//   - n = opts.Count (0 ⇒ store.Size()), 1 ≤ n ≤ store.Size();
//   - the first n cities must have distinct coordinates.
//
// Errors: ErrInvalidInput / ErrDuplicateCity (wrapping ErrInvalidInput) /
// ErrIndexOutOfRange, always before enumeration begins. On error the Result
// is zero and neither Sink nor Observer is called.
//
// Side effects: opts.Observer.RunStarted, then opts.Sink.Record for every
// evaluated permutation in order, then opts.Sink.Finalize and
// opts.Observer.RunFinished.
//
// Determinism: for a fixed store and Enumeration the result is identical on
// every call; ties resolve to the first minimum in enumeration order.
//
// Complexity: O(n!·n) time, O(n) auxiliary space (AllPermutations).
func Solve(store Store, opts Options) (Result, error) {
	cities, err := validateAll(store, opts)
	if err != nil {
		return Result{}, err
	}

	if opts.Observer != nil {
		opts.Observer.RunStarted(len(cities))
	}

	e := newEngine(cities, opts.Enumeration)
	e.sink = opts.Sink
	e.run()
	res := e.result()

	if opts.Sink != nil {
		opts.Sink.Finalize(res)
	}
	if opts.Observer != nil {
		opts.Observer.RunFinished(res)
	}

	return res, nil
}

// Evaluations validates store and opts and returns the enumeration as a lazy
// sequence of per-permutation records in enumeration order. The sequence is
// finite (ExpectedEvaluations(n, opts.Enumeration) items); each range over it
// runs a fresh enumeration. Breaking out of the loop stops the enumeration.
//
// opts.Sink and opts.Observer are ignored: the caller consumes the records
// directly.
func Evaluations(store Store, opts Options) (iter.Seq[Evaluation], error) {
	cities, err := validateAll(store, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(Evaluation) bool) {
		e := newEngine(cities, opts.Enumeration)
		e.yield = yield
		e.run()
	}, nil
}
