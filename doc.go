// SPDX-License-Identifier: MIT

// Package gridkit is a small toolkit around Grid[T], a generic
// two-dimensional container with a single contiguous backing store.
//
// What is in the box:
//
//	grid/     — Grid[T]: O(1) (x, y) access, independent per-axis resize,
//	            forward/reverse cursors, raw binary Dump/Load
//	gradient/ — zig-zag test texture generator and binary PGM codec
//	heatmap/  — render numeric grids with gonum/plot
//	cmd/gradientgen — command-line texture generator
//
// Quick example:
//
//	g, _ := grid.New[uint8](3, 2) // 3 lanes of 2 cells
//	_ = g.Set(2, 1, 9)
//	_ = g.ResizeHeight(3)          // (2,1) still holds 9
//	v, _ := g.At(2, 1)
//
// Cell (x, y) lives at offset x*Height()+y. Grid is not safe for concurrent
// use; see package grid for the indexing, iterator and persistence policies.
package gridkit
