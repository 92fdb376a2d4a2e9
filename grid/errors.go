// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..." and callers match with errors.Is.
// Methods wrap the sentinel with their name (and coordinates when relevant)
// at the detection site; the sentinel is always preserved via %w.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when an extent is negative or width*height overflows int.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that a coordinate or cursor lies outside the store.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrEmptyContainer is returned by Front/Back on a grid with no cells.
	ErrEmptyContainer = errors.New("grid: container is empty")

	// ErrInvalidated marks a cursor used after the grid was resized or cleared.
	ErrInvalidated = errors.New("grid: iterator invalidated by mutation")

	// ErrIO reports a failure of the underlying byte stream (open, write, read, flush).
	ErrIO = errors.New("grid: i/o failure")

	// ErrIOTruncated reports a short read or short write during Dump/Load.
	ErrIOTruncated = errors.New("grid: truncated i/o")

	// ErrNotFixedSize is returned when T has no fixed binary size
	// (int, uint, string, slices, maps, pointers, ...).
	ErrNotFixedSize = errors.New("grid: element type is not fixed-size")

	// ErrBadHeader is returned by LoadWithHeader on an unrecognized or inconsistent header.
	ErrBadHeader = errors.New("grid: invalid header")
)

// gridErrorf wraps err with the method name and the coordinates (or extents)
// that triggered it: "Grid.At(3,1): grid: index out of range".
func gridErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, a, b, err)
}

// ioErrorf wraps an I/O sentinel and, when present, the stream error behind it.
// Both remain visible to errors.Is.
func ioErrorf(method string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("Grid.%s: %w", method, sentinel)
	}

	return fmt.Errorf("Grid.%s: %w: %w", method, sentinel, cause)
}
