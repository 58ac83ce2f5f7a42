// Package tsp_test validates the permutation engine through Evaluations:
//  1. exactly n! distinct permutations of [0, n) in the default mode;
//  2. fixed enumeration order (swap/recurse/swap-back);
//  3. DistinctTours: (n−1)!/2 tours, city 1 first, no mirrored duplicates;
//  4. early break of the iterator stops the enumeration.
package tsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbrute/tsp"
)

func TestFactorial(t *testing.T) {
	want := []int{1, 1, 2, 6, 24, 120, 720, 5040, 40320}
	for n, f := range want {
		require.Equal(t, f, tsp.Factorial(n), "n=%d", n)
	}
}

func TestEvaluations_ProducesAllDistinctPermutations(t *testing.T) {
	for n := 1; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			seq, err := tsp.Evaluations(mkRandom(t, n, seedDet), tsp.DefaultOptions())
			require.NoError(t, err)

			seen := make(map[string]bool)
			count := 0
			for ev := range seq {
				require.Equal(t, count, ev.Index)
				require.Len(t, ev.Tour, n+1)
				require.Equal(t, ev.Tour[0], ev.Tour[n], "tour must close on its first city")

				// Back to 0-based and check it is a bijection of [0, n).
				perm := make([]int, n)
				for i := 0; i < n; i++ {
					perm[i] = ev.Tour[i] - 1
				}
				require.NoError(t, tsp.ValidatePermutation(perm, n))

				key := fmt.Sprint(perm)
				require.False(t, seen[key], "permutation %s generated twice", key)
				seen[key] = true
				count++
			}
			require.Equal(t, tsp.Factorial(n), count)
			require.Len(t, seen, tsp.Factorial(n))
		})
	}
}

func TestEvaluations_EnumerationOrder(t *testing.T) {
	seq, err := tsp.Evaluations(triangle(t), tsp.DefaultOptions())
	require.NoError(t, err)

	var got [][]int
	for ev := range seq {
		got = append(got, ev.Tour)
	}
	require.Equal(t, [][]int{
		{1, 2, 3, 1},
		{1, 3, 2, 1},
		{2, 1, 3, 2},
		{2, 3, 1, 2},
		{3, 2, 1, 3},
		{3, 1, 2, 3},
	}, got)
}

func TestEvaluations_DistinctTours(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Enumeration = tsp.DistinctTours

	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			seq, err := tsp.Evaluations(mkRandom(t, n, seedDet), opts)
			require.NoError(t, err)

			var tours [][]int
			for ev := range seq {
				require.Equal(t, 1, ev.Tour[0], "first city must stay fixed")
				perm := make([]int, n)
				for i := range perm {
					perm[i] = ev.Tour[i] - 1
				}
				tours = append(tours, perm)
			}
			require.Len(t, tours, tsp.ExpectedEvaluations(n, tsp.DistinctTours))

			// No two scored tours may be the same physical tour.
			for i := range tours {
				for j := i + 1; j < len(tours); j++ {
					require.False(t, tsp.EqualToursModuloRotation(tours[i], tours[j], true),
						"%v and %v describe the same tour", tours[i], tours[j])
				}
			}
		})
	}
}

func TestEvaluations_BreakStopsEnumeration(t *testing.T) {
	seq, err := tsp.Evaluations(mkRandom(t, 6, seedDet), tsp.DefaultOptions())
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		if count == 10 {
			break
		}
	}
	require.Equal(t, 10, count)

	// The sequence can be ranged again and starts over.
	first := -1
	for ev := range seq {
		first = ev.Index
		break
	}
	require.Equal(t, 0, first)
}

func TestEvaluations_ValidatesBeforeReturning(t *testing.T) {
	seq, err := tsp.Evaluations(rawStore{{X: 1, Y: 1}, {X: 1, Y: 1}}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
	require.Nil(t, seq)
}

func TestExpectedEvaluations(t *testing.T) {
	require.Equal(t, 40320, tsp.ExpectedEvaluations(8, tsp.AllPermutations))
	require.Equal(t, 2520, tsp.ExpectedEvaluations(8, tsp.DistinctTours))
	require.Equal(t, 1, tsp.ExpectedEvaluations(2, tsp.DistinctTours))
	require.Equal(t, 1, tsp.ExpectedEvaluations(3, tsp.DistinctTours))
}
