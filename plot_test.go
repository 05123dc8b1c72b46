// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/plit-go/plit/imagex"
)

// sine and cosine test series over a shared x vector.
func testSeries(n int) (x []float64, ys [][]float64) {
	x = make([]float64, n)
	sin := make([]float64, n)
	cos := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n-1)
		sin[i] = 50 + 40*math.Sin(x[i]*2*math.Pi)
		cos[i] = 50 + 40*math.Cos(x[i]*2*math.Pi)
	}
	return x, [][]float64{sin, cos}
}

func TestPlot(t *testing.T) {
	x, ys := testSeries(21)
	c, err := Plot(x, ys, []string{"Sine", "Cosine"}, "Time", "Value",
		WithTitle("Waves"), WithMarkers("b-", "r--"), WithGrid())
	require.NoError(t, err)

	assert.Len(t, c.Series, 2)
	assert.Equal(t, []string{"Sine", "Cosine"}, c.Labels)
	assert.Equal(t, "Sine", c.Series[0].Name)
	assert.Equal(t, "Waves", c.Plot.Title.Text)
	assert.Equal(t, "Time", c.Plot.X.Label.Text)
	assert.Equal(t, "Value", c.Plot.Y.Label.Text)

	imagex.Assert(t, c.Image(), "plot.png")
}

func TestPlotGeneratedLabels(t *testing.T) {
	x, ys := testSeries(5)
	c, err := Plot(x, ys, nil, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"series-1", "series-2"}, c.Labels)
}

func TestPlotShapeMismatch(t *testing.T) {
	x := []float64{1, 2, 3}
	_, err := Plot(x, [][]float64{{1, 2}}, nil, "x", "y")
	assert.ErrorIs(t, err, ErrSeriesShape)
}

func TestPlotLabelMismatch(t *testing.T) {
	x := []float64{1, 2, 3}
	ys := [][]float64{{1, 2, 3}, {4, 5, 6}}
	_, err := Plot(x, ys, []string{"only one"}, "x", "y")
	assert.ErrorIs(t, err, ErrLabelCount)
}

func TestPlotNoSeries(t *testing.T) {
	_, err := Plot([]float64{1}, nil, nil, "x", "y")
	assert.ErrorIs(t, err, ErrNoSeries)
}

func TestPlotBadMarker(t *testing.T) {
	x := []float64{1, 2}
	_, err := Plot(x, [][]float64{{1, 2}}, nil, "x", "y", WithMarkers("??"))
	assert.ErrorIs(t, err, ErrMarkerSpec)
}

func TestPlotDefaults(t *testing.T) {
	x, ys := testSeries(5)
	c, err := Plot(x, ys, nil, "x", "y")
	require.NoError(t, err)

	o := c.Options
	assert.Equal(t, 7*vg.Inch, o.Width)
	assert.Equal(t, 5*vg.Inch, o.Height)
	assert.Equal(t, 100, o.DPI)
	assert.Equal(t, vg.Points(1.5), o.LineWidth)
	assert.False(t, o.Grid)
	assert.Len(t, o.Cycle, 8)
}

func TestPlotOptionOverrides(t *testing.T) {
	x, ys := testSeries(5)
	c, err := Plot(x, ys, nil, "x", "y",
		WithFigSize(4, 3), WithDPI(72), WithYLim(0, 100), WithXTicks(0, 0.5, 1))
	require.NoError(t, err)

	assert.Equal(t, 4*vg.Inch, c.Options.Width)
	assert.Equal(t, 72, c.Options.DPI)
	assert.Equal(t, 0.0, c.Plot.Y.Min)
	assert.Equal(t, 100.0, c.Plot.Y.Max)
	assert.NotNil(t, c.Plot.X.Tick.Marker)
}

func TestScatterDefaultsToGlyphs(t *testing.T) {
	x, ys := testSeries(9)
	c, err := Scatter(x, ys, nil, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"o"}, c.Options.Markers)
	imagex.Assert(t, c.Image(), "scatter.png")
}

func TestChartImageSize(t *testing.T) {
	x, ys := testSeries(5)
	c, err := Plot(x, ys, nil, "x", "y", WithFigSize(4, 2), WithDPI(50))
	require.NoError(t, err)
	img := c.Image()
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}
