// SPDX-License-Identifier: MIT

// Package gradient generates 8-bit test textures on top of grid.Grid and
// stores them as binary PGM (P5) images.
//
// What:
//
//   - ZigZag builds the classic zig-zag gradient: every lane is a triangle
//     wave of gray levels, lane seeds oscillate between 0 and 256, and every
//     512-cell period carries an inverted band and an inverted spot.
//   - WritePGM/ReadPGM move a Grid[uint8] to and from PGM. The pixel body is
//     exactly Grid.Dump output; only the text header is added.
//
// Orientation:
//
//	The grid's outer axis (x, Width) becomes image rows and the inner axis
//	(y, Height) becomes image columns, so the raw store is already in PGM
//	row order.
package gradient
