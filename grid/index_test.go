package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/stretchr/testify/require"
)

// TestAtIsBijectionOntoStore writes through At/Set and reads through the raw
// store to pin the x*height+y convention.
func TestAtIsBijectionOntoStore(t *testing.T) {
	const w, h = 4, 3
	g := mustGrid[int32](t, w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			require.NoError(t, g.Set(x, y, int32(10*x+y)))
		}
	}

	seen := make(map[int]bool, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			v, err := g.At(x, y)
			require.NoError(t, err)
			require.Equal(t, int32(10*x+y), v)

			off := g.Offset(x, y)
			require.Equal(t, x*h+y, off)
			require.Equal(t, v, g.Data()[off])
			require.False(t, seen[off], "offset %d hit twice", off)
			seen[off] = true

			cx, cy := g.Coord(off)
			require.Equal(t, x, cx)
			require.Equal(t, y, cy)
		}
	}
	require.Len(t, seen, w*h)
}

func TestAtSetRefOutOfRange(t *testing.T) {
	g := mustGrid[uint8](t, 2, 3)

	for _, c := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}, {5, 5}} {
		_, err := g.At(c[0], c[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)

		require.ErrorIs(t, g.Set(c[0], c[1], 9), grid.ErrOutOfRange)

		p, err := g.Ref(c[0], c[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)
		require.Nil(t, p)
	}

	_, err := g.At(2, 1)
	require.EqualError(t, err, "Grid.At(2,1): grid: index out of range")

	for _, v := range g.Data() {
		require.Zero(t, v) // failed Sets wrote nothing
	}
}

func TestRefMutatesInPlace(t *testing.T) {
	g := mustGrid[int32](t, 2, 2)
	p, err := g.Ref(1, 0)
	require.NoError(t, err)
	*p += 5

	v, err := g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int32(5), v)
}

func TestFrontBack(t *testing.T) {
	empty := mustGrid[uint8](t, 0, 0)
	_, err := empty.Front()
	require.ErrorIs(t, err, grid.ErrEmptyContainer)
	_, err = empty.Back()
	require.ErrorIs(t, err, grid.ErrEmptyContainer)

	one := mustGrid[uint8](t, 1, 1)
	require.NoError(t, one.Set(0, 0, 7))
	f, err := one.Front()
	require.NoError(t, err)
	require.Equal(t, uint8(7), f)
	b, err := one.Back()
	require.NoError(t, err)
	require.Equal(t, uint8(7), b)

	g := mustGrid[uint8](t, 3, 2)
	seq(g)
	f, err = g.Front()
	require.NoError(t, err)
	require.Equal(t, uint8(0), f)
	b, err = g.Back()
	require.NoError(t, err)
	require.Equal(t, uint8(5), b)

	g.Clear()
	_, err = g.Back()
	require.ErrorIs(t, err, grid.ErrEmptyContainer)
}

func TestUncheckedLaneMatchesAt(t *testing.T) {
	g := mustGrid[int32](t, 3, 4)
	seq(g)
	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			want, err := g.At(x, y)
			require.NoError(t, err)
			require.Equal(t, want, g.UncheckedLane(x).At(y))
		}
	}

	g.UncheckedLane(2).Set(1, -1)
	v, err := g.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)

	*g.UncheckedLane(0).Ref(3) = 99
	v, err = g.At(0, 3)
	require.NoError(t, err)
	require.Equal(t, int32(99), v)
}

// TestUncheckedLaneDoesNotCheckInnerIndex documents the raw-array contract:
// an inner index past Height() lands in the next lane instead of failing.
func TestUncheckedLaneDoesNotCheckInnerIndex(t *testing.T) {
	g := mustGrid[int32](t, 2, 3)
	seq(g)
	require.Equal(t, int32(3), g.UncheckedLane(0).At(3)) // == (1,0)

	require.Panics(t, func() { _ = g.UncheckedLane(2).At(0) }) // offset 6 is past the store
}

func TestInBounds(t *testing.T) {
	g := mustGrid[uint8](t, 2, 3)
	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(1, 2))
	require.False(t, g.InBounds(2, 0))
	require.False(t, g.InBounds(0, 3))
	require.False(t, g.InBounds(-1, 1))
}
