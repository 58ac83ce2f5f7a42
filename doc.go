// Package tspbrute solves small travelling salesman instances exactly, by
// scoring every permutation of the city set.
//
// The module is organised as flat library packages plus a CLI:
//
//	city        City, List (the city store), Euclidean distance,
//	            unique random generation, text and JSON persistence
//	tsp         brute-force solver, lazy Evaluations, Sink/Observer contracts
//	report      tsp.Sink implementations (console, trace file, summary, fan-out)
//	instrument  tsp.Observer sampling wall clock and heap memory
//	cmd         the tspbrute executable (generate, solve, version)
//
// Brute force costs O(n!·n); past 10 cities a run takes minutes, so the CLI
// caps the city count (TSP_MAX_CITIES, default 8).
//
// Quick start:
//
//	l, _ := city.NewList(city.City{X: 0, Y: 0}, city.City{X: 10, Y: 0}, city.City{X: 0, Y: 10})
//	res, err := tsp.Solve(l, tsp.DefaultOptions())
//	// res.Tour == [0 1 2], res.Distance ≈ 34.142
package tspbrute
