// SPDX-License-Identifier: MIT

// Package grid provides Grid[T], a two-dimensional container addressed by an
// (x, y) pair and backed by a single contiguous slice.
//
// What:
//
//   - Grid[T] stores Width()*Height() elements in one flat buffer.
//   - Element (x, y) lives at offset x*Height() + y. x is the outer axis,
//     y is the inner axis.
//   - Each axis can be resized on its own; retained cells keep their (x, y)
//     coordinates and new cells hold the zero value of T.
//   - Cursors (Begin/End, RBegin/REnd) and range-over-func sequences
//     (All, Backward, Cells) walk the store in linear-offset order.
//   - Dump/Load copy the raw store to and from a byte stream.
//
// Layout:
//
//	x=0: [ (0,0) (0,1) ... (0,h-1) ]
//	x=1: [ (1,0) (1,1) ... (1,h-1) ]
//	...
//
// Growing the outer axis (ResizeWidth) only appends lanes. Growing the inner
// axis (ResizeHeight) moves every retained cell to a new offset.
//
// Indexing policy:
//
//   - At/Set/Ref are bounds-checked and return ErrOutOfRange.
//   - UncheckedLane(x).At(y) mirrors raw array indexing: no check is made,
//     an inner index >= Height() reads a neighbouring lane, and an offset
//     outside the store panics in the Go runtime. Use it only in hot loops
//     whose bounds are already known.
//
// Iterator policy:
//
//   - Any resize or Clear invalidates outstanding cursors. A stale cursor
//     reports ErrInvalidated instead of reading freed or moved cells.
//   - Lanes carry no generation and must not outlive the statement that
//     created them.
//
// Persistence format:
//
//	Dump writes Size()*sizeof(T) bytes in offset order, with no header. The
//	reader must size the grid before Load; the stream carries no shape. Only
//	fixed-size element types (see encoding/binary) can be persisted, plus
//	int, uint and uintptr, which are written at strconv.IntSize bits.
//	Strings, slices and pointers report ErrNotFixedSize. Struct cells are
//	packed field by field; alignment padding is not written. DumpWithHeader
//	and LoadWithHeader add an optional self-describing header.
//
// Concurrency:
//
//	Grid performs no locking. Callers sharing a Grid between goroutines must
//	synchronize every access, including reads that race with a resize.
//
// Complexity:
//
//   - New, Resize*, Clone, Fill, Dump, Load: O(W×H).
//   - At/Set/Ref, Front/Back, cursor steps: O(1).
package grid
