// Package tsp - tour utilities.
//
// Helpers that operate purely on tour structure (index sequences), without
// touching coordinates:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CloseTour / Labels: closed index tour and 1-based label form.
//   - RotateTour / ReverseTour: rotation and reflection (same physical tour).
//   - EqualToursModuloRotation: equality under rotation, optionally reflection.
//   - CopyTour: independent copy.
//   - FormatLabels: "1 -> 2 -> 3 -> 1".
//
// Unless stated otherwise, tours here are in open form (len == n, the closing
// edge implicit) and inputs are never mutated.
package tsp

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidInput
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrIndexOutOfRange
		}
		if seen[v] {
			return ErrInvalidInput
		}
		seen[v] = true
	}

	return nil
}

// CloseTour returns a fresh copy of perm with perm[0] appended.
// An empty input yields nil.
//
// Complexity: O(n).
func CloseTour(perm []int) []int {
	if len(perm) == 0 {
		return nil
	}
	out := make([]int, len(perm)+1)
	copy(out, perm)
	out[len(perm)] = perm[0]

	return out
}

// Labels converts an open permutation of 0-based indices into the closed
// tour of 1-based labels used in reports: [0 2 1] → [1 3 2 1].
//
// Complexity: O(n).
func Labels(perm []int) []int {
	return lo.Map(CloseTour(perm), func(v int, _ int) int { return v + 1 })
}

// FormatLabels renders labels as "1 -> 3 -> 2 -> 1".
func FormatLabels(labels []int) string {
	return strings.Join(lo.Map(labels, func(v int, _ int) string { return strconv.Itoa(v) }), " -> ")
}

// RotateTour returns a copy of perm cyclically shifted left by k positions
// (k may be negative or exceed n). The closed-tour distance is unchanged.
//
// Complexity: O(n).
func RotateTour(perm []int, k int) []int {
	var n = len(perm)
	if n == 0 {
		return nil
	}
	k %= n
	if k < 0 {
		k += n
	}
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = perm[(i+k)%n]
	}

	return out
}

// ReverseTour returns perm traversed backwards. The closed-tour distance is
// unchanged.
//
// Complexity: O(n).
func ReverseTour(perm []int) []int {
	if perm == nil {
		return nil
	}
	out := CopyTour(perm)

	var i, k = 0, len(out) - 1
	for i < k {
		out[i], out[k] = out[k], out[i]
		i++
		k--
	}

	return out
}

// EqualToursModuloRotation reports whether open tours a and b describe the
// same cyclic order. With reflection set, a reversed b also matches.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int, reflection bool) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	if sameCycle(a, b) {
		return true
	}

	return reflection && sameCycle(a, ReverseTour(b))
}

// sameCycle compares a with b rotated so that b starts at a[0].
func sameCycle(a, b []int) bool {
	var (
		n = len(a)
		p = -1
		j int
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
