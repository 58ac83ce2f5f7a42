package city_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbrute/city"
)

func TestNewList_RejectsEmpty(t *testing.T) {
	_, err := city.NewList()
	require.ErrorIs(t, err, city.ErrInvalidInput)
}

func TestNewList_RejectsDuplicateCoordinates(t *testing.T) {
	_, err := city.NewList(
		city.City{X: 0, Y: 0},
		city.City{X: 3, Y: 4},
		city.City{X: 0, Y: 0},
	)
	require.ErrorIs(t, err, city.ErrDuplicateCity)
	require.ErrorIs(t, err, city.ErrInvalidInput)
	require.Contains(t, err.Error(), "cities 1 and 3")
}

func TestList_Coordinates(t *testing.T) {
	l, err := city.NewList(city.City{X: 1, Y: 2}, city.City{X: 3, Y: 4})
	require.NoError(t, err)
	require.Equal(t, 2, l.Size())

	x, y, err := l.Coordinates(1)
	require.NoError(t, err)
	require.Equal(t, 3, x)
	require.Equal(t, 4, y)

	for _, idx := range []int{-1, 2, 100} {
		_, _, err = l.Coordinates(idx)
		require.ErrorIs(t, err, city.ErrIndexOutOfRange, "index %d", idx)
	}
}

func TestList_IsImmutable(t *testing.T) {
	src := []city.City{{X: 1, Y: 1}, {X: 2, Y: 2}}
	l, err := city.NewList(src...)
	require.NoError(t, err)

	// Mutating the caller's slice or the returned copy must not leak in.
	src[0] = city.City{X: 9, Y: 9}
	got := l.Cities()
	got[1] = city.City{X: 7, Y: 7}

	c0, err := l.At(0)
	require.NoError(t, err)
	require.Equal(t, city.City{X: 1, Y: 1}, c0)
	c1, err := l.At(1)
	require.NoError(t, err)
	require.Equal(t, city.City{X: 2, Y: 2}, c1)
}

func TestDistance(t *testing.T) {
	require.Equal(t, 5.0, city.Distance(city.City{X: 0, Y: 0}, city.City{X: 3, Y: 4}))
	require.Equal(t, 0.0, city.Distance(city.City{X: 2, Y: 2}, city.City{X: 2, Y: 2}))
	require.InDelta(t, math.Sqrt(200), city.Distance(city.City{X: 10, Y: 0}, city.City{X: 0, Y: 10}), 1e-12)
	// Symmetric by construction.
	a, b := city.City{X: -4, Y: 7}, city.City{X: 11, Y: -2}
	require.Equal(t, city.Distance(a, b), city.Distance(b, a))
}

func TestCity_String(t *testing.T) {
	require.Equal(t, "(3, -4)", city.City{X: 3, Y: -4}.String())
}
