// SPDX-License-Identifier: MIT

// Package heatmap renders numeric grids as heat maps using gonum/plot.
//
// XYZ adapts a *grid.Grid[T] to plotter.GridXYZ: plot columns follow the
// grid's outer axis x, plot rows its inner axis y, and Z(c, r) is the cell
// value. Render writes the plot in any format gonum/plot supports for
// io.Writer output; Save infers the format from the file extension.
package heatmap
