// SPDX-License-Identifier: MIT

// Package grid - coordinate indexing.
//
// Two surfaces resolve the same cell, data[x*h+y]:
//   - At/Set/Ref: bounds-checked, return ErrOutOfRange.
//   - UncheckedLane(x).At(y): no check, for loops that already know their bounds.

package grid

// Offset returns the linear offset of (x, y): x*Height() + y.
// No bounds check is made.
func (g *Grid[T]) Offset(x, y int) int { return x*g.h + y }

// Coord is the inverse of Offset for 0 <= off < Size().
// It returns (0, 0) when Height() is zero.
func (g *Grid[T]) Coord(off int) (x, y int) {
	if g.h == 0 {
		return 0, 0
	}

	return off / g.h, off % g.h
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// indexOf bounds-checks (x, y) and returns its offset.
func (g *Grid[T]) indexOf(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, ErrOutOfRange
	}

	return x*g.h + y, nil
}

// At returns the value at (x, y).
// Returns ErrOutOfRange when x >= Width(), y >= Height() or either is negative.
func (g *Grid[T]) At(x, y int) (T, error) {
	idx, err := g.indexOf(x, y)
	if err != nil {
		var zero T
		return zero, gridErrorf(ctxAt, x, y, err)
	}

	return g.data[idx], nil
}

// Set stores v at (x, y).
// Returns ErrOutOfRange for invalid coordinates; the grid is left untouched.
func (g *Grid[T]) Set(x, y int, v T) error {
	idx, err := g.indexOf(x, y)
	if err != nil {
		return gridErrorf(ctxSet, x, y, err)
	}
	g.data[idx] = v

	return nil
}

// Ref returns a pointer to the cell at (x, y) for in-place updates.
// The pointer is valid until the next resize or Clear.
// Returns ErrOutOfRange for invalid coordinates.
func (g *Grid[T]) Ref(x, y int) (*T, error) {
	idx, err := g.indexOf(x, y)
	if err != nil {
		return nil, gridErrorf(ctxRef, x, y, err)
	}

	return &g.data[idx], nil
}

// Front returns the cell at offset 0, or ErrEmptyContainer.
func (g *Grid[T]) Front() (T, error) {
	if len(g.data) == 0 {
		var zero T
		return zero, gridErrorf(ctxFront, g.w, g.h, ErrEmptyContainer)
	}

	return g.data[0], nil
}

// Back returns the cell at offset Size()-1, or ErrEmptyContainer.
func (g *Grid[T]) Back() (T, error) {
	if len(g.data) == 0 {
		var zero T
		return zero, gridErrorf(ctxBack, g.w, g.h, ErrEmptyContainer)
	}

	return g.data[len(g.data)-1], nil
}

// Lane is the outer-axis slice of a grid bound by UncheckedLane.
// It holds the grid and the resolved base offset x*Height(); it owns nothing.
//
// A Lane must not be kept past the statement that creates it. After a resize
// its base offset points at unrelated cells.
type Lane[T any] struct {
	g    *Grid[T]
	base int
}

// UncheckedLane binds the outer coordinate x for two-step indexing:
//
//	g.UncheckedLane(x).At(y) == data[x*Height()+y]
//
// Neither x nor the later y is validated. A y >= Height() silently resolves
// to a cell of lane x+1; an offset outside the store panics. Prefer At/Set
// unless the loop bounds are already proven.
func (g *Grid[T]) UncheckedLane(x int) Lane[T] {
	return Lane[T]{g: g, base: x * g.h}
}

// At returns data[base+y] without a bounds check.
func (l Lane[T]) At(y int) T { return l.g.data[l.base+y] }

// Ref returns &data[base+y] without a bounds check.
func (l Lane[T]) Ref(y int) *T { return &l.g.data[l.base+y] }

// Set stores v at data[base+y] without a bounds check.
func (l Lane[T]) Set(y int, v T) { l.g.data[l.base+y] = v }
