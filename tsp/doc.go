// Package tsp solves the Travelling Salesman Problem exactly by exhaustive
// brute force: every permutation of the city indices is generated, scored by
// its closed-tour Euclidean length, and the shortest one is kept.
//
// Entry points:
//
//   - Solve: run the whole enumeration and return the best tour.
//   - Evaluations: the same enumeration as a lazy iter.Seq of per-tour records.
//   - TourDistance: score a single permutation.
//
// Enumeration policy (Options.Enumeration):
//
//   - AllPermutations (default): all n! orderings, rotations and reversals
//     included. Complexity: O(n!·n) time, O(n) auxiliary space.
//   - DistinctTours: first city fixed and mirrored tours skipped, so each
//     physical tour is scored once: (n−1)!/2 evaluations for n ≥ 3.
//
// Reporting and instrumentation are injected, never built in:
//
//   - Sink receives every Evaluation in enumeration order and the final Result.
//   - Observer is notified at run start and run end.
//
// The search is single-threaded and synchronous. Inputs are validated before
// the first permutation is generated; once enumeration starts nothing can fail.
// Practical limit: n ≲ 8 (8! = 40320 tours; 11! is already ~4·10⁷).
package tsp
