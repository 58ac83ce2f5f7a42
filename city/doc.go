// Package city holds the input side of the brute-force TSP: immutable city
// coordinates and the ordered list that identifies each city by its index.
//
// What lives here:
//
//   - City: an immutable (x, y) pair of integer coordinates.
//   - List: an ordered, read-only set of cities with pairwise distinct
//     coordinates; the index is the permanent identifier of a city.
//   - Distance: Euclidean distance between two cities in float64.
//   - Generate: random integer coordinates with a uniqueness constraint.
//   - Read/Write, ReadJSON/WriteJSON, Load/Save: persistence of a city set.
//
// Errors are sentinels (ErrInvalidInput, ErrIndexOutOfRange, ErrDuplicateCity,
// ErrMalformedLine); match them with errors.Is. Nothing in this package logs.
//
// A *List satisfies tsp.Store and is safe for concurrent readers: it is never
// mutated after construction.
package city
