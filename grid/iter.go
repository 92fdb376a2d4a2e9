// SPDX-License-Identifier: MIT

// Package grid - traversal.
//
// Cursors (Iterator) and sequences (All/Backward/Cells) walk the raw store
// in linear-offset order. That is x-major: all of lane x=0, then lane x=1.
// Callers that need another order derive it from Offset/Coord.

package grid

import (
	"fmt"
	"iter"
)

const (
	ctxIterGet = "Iterator.Get"
	ctxIterSet = "Iterator.Set"
	ctxIterRef = "Iterator.Ref"
)

// Iterator is a cursor over a grid's store.
// A forward cursor steps +1 per Next, a reverse cursor steps -1.
// The cursor remembers the grid generation it was created at; once the grid
// is resized or cleared every dereference reports ErrInvalidated.
type Iterator[T any] struct {
	g    *Grid[T]
	off  int
	step int
	gen  uint64
}

func (g *Grid[T]) cursor(off, step int) Iterator[T] {
	return Iterator[T]{g: g, off: off, step: step, gen: g.gen}
}

// Begin returns a forward cursor at offset 0.
func (g *Grid[T]) Begin() Iterator[T] { return g.cursor(0, 1) }

// End returns the forward past-the-end cursor (offset Size()).
func (g *Grid[T]) End() Iterator[T] { return g.cursor(len(g.data), 1) }

// RBegin returns a reverse cursor at offset Size()-1.
func (g *Grid[T]) RBegin() Iterator[T] { return g.cursor(len(g.data)-1, -1) }

// REnd returns the reverse past-the-end cursor (offset -1).
func (g *Grid[T]) REnd() Iterator[T] { return g.cursor(-1, -1) }

// Next advances the cursor one step in its direction and returns it.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.off += it.step
	return it
}

// Prev moves the cursor one step against its direction and returns it.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.off -= it.step
	return it
}

// Equal reports whether both cursors belong to the same grid, walk in the
// same direction and sit at the same offset.
func (it *Iterator[T]) Equal(other Iterator[T]) bool {
	return it.g == other.g && it.step == other.step && it.off == other.off
}

// Offset returns the linear offset the cursor points at.
func (it *Iterator[T]) Offset() int { return it.off }

// Coord returns the (x, y) coordinate of the cursor's offset.
func (it *Iterator[T]) Coord() (x, y int) { return it.g.Coord(it.off) }

// Stale reports whether the grid was resized or cleared after the cursor was made.
func (it *Iterator[T]) Stale() bool { return it.g == nil || it.gen != it.g.gen }

// Valid reports whether the cursor can be dereferenced.
func (it *Iterator[T]) Valid() bool {
	return !it.Stale() && it.off >= 0 && it.off < len(it.g.data)
}

// check classifies why a cursor cannot be dereferenced.
func (it *Iterator[T]) check(method string) error {
	if it.Stale() {
		return fmt.Errorf("Grid.%s(%d): %w", method, it.off, ErrInvalidated)
	}
	if it.off < 0 || it.off >= len(it.g.data) {
		return fmt.Errorf("Grid.%s(%d): %w", method, it.off, ErrOutOfRange)
	}

	return nil
}

// Get returns the cell under the cursor.
// Returns ErrInvalidated for a stale cursor and ErrOutOfRange at End/REnd.
func (it *Iterator[T]) Get() (T, error) {
	if err := it.check(ctxIterGet); err != nil {
		var zero T
		return zero, err
	}

	return it.g.data[it.off], nil
}

// Set stores v in the cell under the cursor.
func (it *Iterator[T]) Set(v T) error {
	if err := it.check(ctxIterSet); err != nil {
		return err
	}
	it.g.data[it.off] = v

	return nil
}

// Ref returns a pointer to the cell under the cursor.
func (it *Iterator[T]) Ref() (*T, error) {
	if err := it.check(ctxIterRef); err != nil {
		return nil, err
	}

	return &it.g.data[it.off], nil
}

// All yields (offset, value) pairs in increasing offset order.
// Each call returns an independent sequence over the store as it is when
// iteration starts.
func (g *Grid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := g.data
		for i, v := range data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields (offset, value) pairs in decreasing offset order.
func (g *Grid[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := g.data
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Cells yields every (x, y) coordinate with its value, in offset order.
func (g *Grid[T]) Cells() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		data, h := g.data, g.h
		for i, v := range data {
			if !yield(Point{X: i / h, Y: i % h}, v) {
				return
			}
		}
	}
}
