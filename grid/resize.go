// SPDX-License-Identifier: MIT

// Package grid - resizing.
//
// Both single-axis resizes and the combined Resize go through remap, the
// only place that moves cells between offsets. Keeping the offset arithmetic
// in one routine is what makes the outer/inner asymmetry safe:
//
//	outer axis (width):  offset x*h+y is unchanged, lanes are appended or dropped.
//	inner axis (height): every retained (x, y) moves from x*oldH+y to x*newH+y.

package grid

// ResizeWidth changes the outer extent to newW.
// Cells with x < min(Width(), newW) keep their values; new lanes hold zero
// values. When the reserved capacity allows it the store grows in place.
// Returns ErrBadShape for a negative extent or an overflowing cell count.
// Complexity: O(newW*Height()).
func (g *Grid[T]) ResizeWidth(newW int) error {
	if _, err := cellCount(newW, g.h); err != nil {
		return gridErrorf(ctxResizeWidth, newW, g.h, err)
	}
	g.remap(newW, g.h)

	return nil
}

// ResizeHeight changes the inner extent to newH.
// Every cell with x < Width() and y < min(Height(), newH) is moved to its new
// offset x*newH+y; the remaining cells hold zero values.
// Returns ErrBadShape for a negative extent or an overflowing cell count.
// Complexity: O(Width()*newH).
func (g *Grid[T]) ResizeHeight(newH int) error {
	if _, err := cellCount(g.w, newH); err != nil {
		return gridErrorf(ctxResizeHeight, g.w, newH, err)
	}
	g.remap(g.w, newH)

	return nil
}

// Resize changes both extents in a single remap pass. The resulting placement
// equals ResizeHeight(newH) followed by ResizeWidth(newW).
// Returns ErrBadShape for a negative extent or an overflowing cell count.
// Complexity: O(newW*newH).
func (g *Grid[T]) Resize(newW, newH int) error {
	if _, err := cellCount(newW, newH); err != nil {
		return gridErrorf(ctxResize, newW, newH, err)
	}
	g.remap(newW, newH)

	return nil
}

// remap rebuilds the store for a newW×newH shape.
// MAIN DESCRIPTION:
//   - Copy every cell whose (x, y) survives the new shape to offset x*newH+y,
//     zero every other cell, then publish the new extents.
//
// Implementation:
//   - Stage 1 (in place): when the inner extent is unchanged and the new store
//     fits the current capacity, offsets do not move; reslice and zero the
//     cells that entered or left the visible range.
//   - Stage 2 (reallocate): allocate a zeroed store and copy the retained
//     prefix of each surviving lane, min(oldH, newH) cells per lane.
//   - Stage 3: record previous extents and bump the generation.
//
// Notes:
//   - Shape validation is the caller's job (cellCount).
//   - Cells dropped by a shrink are zeroed before reslicing so the backing
//     array does not keep pointers alive.
func (g *Grid[T]) remap(newW, newH int) {
	oldW, oldH := g.w, g.h
	n := newW * newH

	if newH == oldH && n <= cap(g.data) {
		old := len(g.data)
		if n < old {
			clear(g.data[n:old])
		}
		g.data = g.data[:n]
		if n > old {
			clear(g.data[old:n]) // capacity may hold cells from an earlier shrink
		}
	} else {
		dst := make([]T, n, max(n, g.opts.capacity))
		keepW, keepH := min(oldW, newW), min(oldH, newH)
		for x := 0; x < keepW; x++ {
			copy(dst[x*newH:x*newH+keepH], g.data[x*oldH:x*oldH+keepH])
		}
		g.data = dst
	}

	g.prevW, g.prevH = oldW, oldH
	g.w, g.h = newW, newH
	g.gen++
}
