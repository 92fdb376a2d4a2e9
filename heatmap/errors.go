// SPDX-License-Identifier: MIT

package heatmap

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no cells; there is nothing to plot.
	ErrEmptyGrid = errors.New("heatmap: grid has no cells")
	// ErrBadFormat indicates an output format gonum/plot cannot write.
	ErrBadFormat = errors.New("heatmap: unsupported output format")
)
