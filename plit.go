// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plit reduces the boilerplate of producing common statistical
// and machine-learning charts with [gonum.org/v1/plot]. It provides a
// small set of chart constructors ([Plot], [Scatter], [Hist], [Bar])
// that accept plain float slices plus per-series labels and a handful
// of options, apply a consistent style sheet, and return a [Chart]
// wrapping the underlying [plot.Plot] for further customization,
// rendering, and saving.
//
// Higher-level analytic chart presets (precision/recall curves,
// probability histograms, calibration bars) live in the templates
// subpackage; helpers for filling grids of subplots and paging them
// into montage images live in the subplots subpackage.
package plit

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/plit-go/plit/imagex"
)

// Chart is the result of a chart constructor: the underlying
// [plot.Plot] plus a record of the input series and the effective
// options, so callers and tests can inspect what was actually plotted.
type Chart struct {
	// Plot is the underlying plot. Callers may customize it further
	// before rendering.
	*plot.Plot

	// Series are the input series in plotting order.
	Series []Series

	// Labels are the effective legend labels, one per series.
	Labels []string

	// Options are the effective options after defaults were applied.
	Options Options
}

// Image renders the chart at its figure size and DPI and returns the
// resulting raster image.
func (c *Chart) Image() image.Image {
	img := vgimg.NewWith(
		vgimg.UseWH(c.Options.Width, c.Options.Height),
		vgimg.UseDPI(c.Options.DPI),
	)
	c.Plot.Draw(draw.New(img))
	return img.Image()
}

// Save renders the chart to the given file. Raster formats (png, jpg,
// tiff, bmp) honor the chart DPI; vector formats (pdf, svg, eps, tex)
// are delegated to the underlying plot writer.
func (c *Chart) Save(path string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "png", "jpg", "jpeg", "tif", "tiff", "bmp":
		if err := imagex.Save(c.Image(), path); err != nil {
			return fmt.Errorf("plit: saving chart: %w", err)
		}
		return nil
	default:
		return c.Plot.Save(c.Options.Width, c.Options.Height, path)
	}
}

// WriterTo returns a writer rendering the chart in the given format
// (png, pdf, svg, ...), at the chart figure size.
func (c *Chart) WriterTo(format string) (io.WriterTo, error) {
	return c.Plot.WriterTo(c.Options.Width, c.Options.Height, format)
}

// newChart builds the plot scaffolding shared by all chart
// constructors: title, axis labels, tickers, limits, grid, and fonts.
func newChart(xlab, ylab string, o Options) *Chart {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = xlab
	p.Y.Label.Text = ylab

	p.Title.TextStyle.Font.Size = o.TitleSize
	p.X.Label.TextStyle.Font.Size = o.LabelSize
	p.Y.Label.TextStyle.Font.Size = o.LabelSize
	p.X.Tick.Label.Font.Size = o.TickSize
	p.Y.Tick.Label.Font.Size = o.TickSize
	p.Legend.TextStyle.Font.Size = o.LegendSize
	p.Legend.Top = true

	if t := o.xTicker(); t != nil {
		p.X.Tick.Marker = t
	}
	if t := o.yTicker(); t != nil {
		p.Y.Tick.Marker = t
	}
	if o.Grid {
		p.Add(newGrid())
	}
	return &Chart{Plot: p, Options: o}
}

// applyLimits fixes the axis ranges after all series have been added,
// since adding a plotter expands the ranges to fit its data.
func (c *Chart) applyLimits() {
	if c.Options.XLim != nil {
		c.Plot.X.Min, c.Plot.X.Max = c.Options.XLim.Min, c.Options.XLim.Max
	}
	if c.Options.YLim != nil {
		c.Plot.Y.Min, c.Plot.Y.Max = c.Options.YLim.Min, c.Options.YLim.Max
	}
}
