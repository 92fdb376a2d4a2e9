package heatmap_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gridkit/gradient"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/heatmap"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestXYZAdapter(t *testing.T) {
	g, err := grid.New[int16](3, 2)
	require.NoError(t, err)
	copy(g.Data(), []int16{-1, 2, 3, 4, 5, 6})

	m := heatmap.NewXYZ(g)
	c, r := m.Dims()
	require.Equal(t, 3, c)
	require.Equal(t, 2, r)
	require.Equal(t, -1.0, m.Z(0, 0))
	require.Equal(t, 4.0, m.Z(1, 1))
	require.Equal(t, 5.0, m.Z(2, 0))
	require.Equal(t, 2.0, m.X(2))
	require.Equal(t, 1.0, m.Y(1))
}

func TestRenderPNG(t *testing.T) {
	g, err := gradient.ZigZag(64, 64)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = heatmap.Render(&buf, g, "PNG", heatmap.WithSize(2*vg.Inch, 2*vg.Inch), heatmap.WithTitle("zigzag"))
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Positive(t, img.Bounds().Dx())
}

func TestRenderSVGFlatGrid(t *testing.T) {
	g, err := grid.New[float32](4, 4)
	require.NoError(t, err)
	g.Fill(3.5) // constant values must not break the color scale

	var buf bytes.Buffer
	require.NoError(t, heatmap.Render(&buf, g, "svg", heatmap.WithPaletteSize(8)))
	require.Contains(t, buf.String(), "<svg")
}

func TestRenderErrors(t *testing.T) {
	empty, err := grid.New[uint8](0, 5)
	require.NoError(t, err)
	require.ErrorIs(t, heatmap.Render(&bytes.Buffer{}, empty, "png"), heatmap.ErrEmptyGrid)

	g, err := grid.New[uint8](2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, heatmap.Render(&bytes.Buffer{}, g, "bmp"), heatmap.ErrBadFormat)
	require.ErrorIs(t, heatmap.Save(filepath.Join(t.TempDir(), "out.txt"), g), heatmap.ErrBadFormat)
	require.ErrorIs(t, heatmap.Save(filepath.Join(t.TempDir(), "out.png"), empty), heatmap.ErrEmptyGrid)
}

func TestSave(t *testing.T) {
	g, err := gradient.ZigZag(16, 16)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "heat.png")
	require.NoError(t, heatmap.Save(path, g, heatmap.WithSize(vg.Inch, vg.Inch)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { heatmap.WithPaletteSize(1) })
	require.Panics(t, func() { heatmap.WithSize(0, vg.Inch) })
}
