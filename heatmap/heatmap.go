// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gridkit/grid"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// Number is the set of element types a heat map can color.
type Number interface {
	constraints.Integer | constraints.Float
}

// formats lists the encodings plot.WriterTo accepts.
var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// XYZ exposes a grid as plotter.GridXYZ.
type XYZ[T Number] struct {
	g *grid.Grid[T]
}

var _ plotter.GridXYZ = XYZ[uint8]{}

// NewXYZ wraps g. The adapter reads the live store; it must not be used
// across a resize of g.
func NewXYZ[T Number](g *grid.Grid[T]) XYZ[T] { return XYZ[T]{g: g} }

// Dims returns (columns, rows) = (Width, Height).
func (m XYZ[T]) Dims() (c, r int) { return m.g.Width(), m.g.Height() }

// Z returns the cell value at (c, r) = (x, y).
// plotter only asks for coordinates inside Dims, so the lane is not checked.
func (m XYZ[T]) Z(c, r int) float64 { return float64(m.g.UncheckedLane(c).At(r)) }

// X returns the plot coordinate of column c.
func (m XYZ[T]) X(c int) float64 { return float64(c) }

// Y returns the plot coordinate of row r.
func (m XYZ[T]) Y(r int) float64 { return float64(r) }

// Render draws g as a heat map and writes it to w in the given format
// ("png", "svg", "pdf", ...).
func Render[T Number](w io.Writer, g *grid.Grid[T], format string, opts ...Option) error {
	format = strings.ToLower(format)
	if !formats[format] {
		return fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	if g.Empty() {
		return ErrEmptyGrid
	}
	o := gatherOptions(opts...)

	p := build(g, o)
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return fmt.Errorf("heatmap: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("heatmap: write %s: %w", format, err)
	}

	return nil
}

// Save renders g to path; the format is taken from the file extension.
func Save[T Number](path string, g *grid.Grid[T], opts ...Option) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[format] {
		return fmt.Errorf("%w: %q", ErrBadFormat, path)
	}
	if g.Empty() {
		return ErrEmptyGrid
	}
	o := gatherOptions(opts...)

	if err := build(g, o).Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("heatmap: save %s: %w", path, err)
	}

	return nil
}

// build assembles the plot for a non-empty grid.
func build[T Number](g *grid.Grid[T], o Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	hm := plotter.NewHeatMap(NewXYZ(g), palette.Heat(o.paletteSize, 1))
	if hm.Min == hm.Max {
		// A flat grid would collapse the palette scale to a zero-width range.
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	return p
}
