// SPDX-License-Identifier: MIT

package heatmap

import "gonum.org/v1/plot/vg"

// Defaults.
const (
	// DefaultPaletteSize is the number of palette colors (one per 8-bit level).
	DefaultPaletteSize = 256
	// DefaultSide is the default plot width and height.
	DefaultSide = 6 * vg.Inch
)

const (
	panicPaletteSize = "heatmap: WithPaletteSize: n must be >= 2"
	panicSize        = "heatmap: WithSize: width and height must be > 0"
)

// Option mutates Options; the last writer wins.
type Option func(*Options)

// Options holds the rendering configuration.
type Options struct {
	paletteSize   int
	width, height vg.Length
	title         string
}

// WithPaletteSize sets the number of colors in the heat palette. Panics when n < 2.
func WithPaletteSize(n int) Option {
	if n < 2 {
		panic(panicPaletteSize)
	}

	return func(o *Options) { o.paletteSize = n }
}

// WithSize sets the plot dimensions. Panics on non-positive lengths.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSize)
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		paletteSize: DefaultPaletteSize,
		width:       DefaultSide,
		height:      DefaultSide,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
