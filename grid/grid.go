// SPDX-License-Identifier: MIT

// Package grid - Grid storage & lifecycle.
//
// Purpose:
//   - Own the flat backing store and the two extents; keep len(data) == w*h
//     after every exported call.
//   - Remember the extents before the last resize (PreviousShape).
//   - Track a mutation generation so cursors can detect that they went stale.
//
// Complexity quicksheet:
//   - New: O(w*h) zero-init; Shape/Size/Empty: O(1); Clone/Fill/String: O(w*h).

package grid

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew          = "New"
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxRef          = "Ref"
	ctxFront        = "Front"
	ctxBack         = "Back"
	ctxResize       = "Resize"
	ctxResizeWidth  = "ResizeWidth"
	ctxResizeHeight = "ResizeHeight"
)

// ---------- Formatting literals ----------

const (
	_fmtLaneOpen  = "["
	_fmtLaneClose = "]\n"
	_fmtSep       = ", "
)

// Grid is a two-dimensional container with a contiguous backing store.
//   - w is the outer extent (x axis), h the inner extent (y axis).
//   - data holds w*h cells; cell (x, y) is data[x*h+y].
//   - prevW, prevH are the extents before the most recent resize or Clear.
//   - gen increases on every resize and Clear; cursors compare against it.
//
// A Grid is not safe for concurrent use.
type Grid[T any] struct {
	w, h         int
	prevW, prevH int
	data         []T
	gen          uint64
	opts         Options
}

var _ fmt.Stringer = (*Grid[byte])(nil)

// Point is an (X, Y) coordinate pair, as yielded by Cells.
type Point struct {
	X, Y int
}

// New creates a w×h grid of zero values.
// Zero extents are legal and produce an empty grid.
// Returns ErrBadShape when w or h is negative or w*h overflows int.
func New[T any](w, h int, opts ...Option) (*Grid[T], error) {
	n, err := cellCount(w, h)
	if err != nil {
		return nil, gridErrorf(ctxNew, w, h, err)
	}
	o := gatherOptions(opts...)

	return &Grid[T]{
		w:    w,
		h:    h,
		data: make([]T, n, max(n, o.capacity)),
		opts: o,
	}, nil
}

// cellCount validates a shape and returns w*h.
func cellCount(w, h int) (int, error) {
	if w < 0 || h < 0 {
		return 0, ErrBadShape
	}
	if h != 0 && w > math.MaxInt/h {
		return 0, ErrBadShape
	}

	return w * h, nil
}

// Width returns the outer (x) extent.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the inner (y) extent.
func (g *Grid[T]) Height() int { return g.h }

// Shape returns Width() and Height() in one call.
func (g *Grid[T]) Shape() (w, h int) { return g.w, g.h }

// PreviousShape returns the extents the grid had before its last resize or Clear.
// A freshly constructed grid reports (0, 0).
func (g *Grid[T]) PreviousShape() (w, h int) { return g.prevW, g.prevH }

// Size returns the number of cells, Width()*Height().
func (g *Grid[T]) Size() int { return len(g.data) }

// Empty reports whether the grid holds no cells.
func (g *Grid[T]) Empty() bool { return len(g.data) == 0 }

// ByteOrder returns the byte order Dump and Load use for this grid.
func (g *Grid[T]) ByteOrder() binary.ByteOrder { return g.opts.order }

// Data returns the live backing store in linear-offset order.
// The slice aliases the grid and is valid until the next resize or Clear.
func (g *Grid[T]) Data() []T { return g.data }

// Clear drops every cell and resets both extents to zero.
// Outstanding cursors become invalid.
func (g *Grid[T]) Clear() {
	g.prevW, g.prevH = g.w, g.h
	g.w, g.h = 0, 0
	g.data = nil
	g.gen++
}

// Fill assigns v to every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy with the same shape, history and options.
// Cursors taken on g are not valid on the clone.
func (g *Grid[T]) Clone() *Grid[T] {
	buf := make([]T, len(g.data), max(len(g.data), g.opts.capacity))
	copy(buf, g.data)

	return &Grid[T]{
		w:     g.w,
		h:     g.h,
		prevW: g.prevW,
		prevH: g.prevH,
		data:  buf,
		opts:  g.opts,
	}
}

// Equal reports whether a and b have the same shape and the same cells.
// Two nil grids are equal; a nil and a non-nil grid are not.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.w != b.w || a.h != b.h {
		return false
	}

	return slices.Equal(a.data, b.data)
}

// String prints one bracketed line per outer lane: "[a, b, c]\n".
func (g *Grid[T]) String() string {
	var sb strings.Builder
	var x, y int
	for x = 0; x < g.w; x++ {
		sb.WriteString(_fmtLaneOpen)
		for y = 0; y < g.h; y++ {
			fmt.Fprint(&sb, g.data[x*g.h+y])
			if y < g.h-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtLaneClose)
	}

	return sb.String()
}
