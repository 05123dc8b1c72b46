// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Plot draws one line or scatter series per y slice against a shared x
// vector. Every y series must have len(x) points; labels, when
// non-nil, must have one entry per series. Marker format specs (see
// [ParseMarker]) control per-series color, point glyphs, and line
// style; without specs each series gets a solid line in the next cycle
// color.
func Plot(x []float64, ys [][]float64, labels []string, xlab, ylab string, opts ...Option) (*Chart, error) {
	o := newOptions(opts)
	series, labels, err := xySeries(x, ys, labels)
	if err != nil {
		return nil, err
	}
	specs, err := parseMarkers(o.Markers)
	if err != nil {
		return nil, err
	}

	c := newChart(xlab, ylab, o)
	c.Series = series
	c.Labels = labels
	for i, s := range series {
		if err := addXY(c.Plot, s, markerFor(specs, i), o, i); err != nil {
			return nil, err
		}
	}
	c.applyLimits()
	return c, nil
}

// Scatter is [Plot] with point markers and no connecting lines by
// default: series without an explicit marker spec get a circle glyph
// in the next cycle color.
func Scatter(x []float64, ys [][]float64, labels []string, xlab, ylab string, opts ...Option) (*Chart, error) {
	o := newOptions(opts)
	if len(o.Markers) == 0 {
		return Plot(x, ys, labels, xlab, ylab, append(opts, WithMarkers("o"))...)
	}
	return Plot(x, ys, labels, xlab, ylab, opts...)
}

// addXY adds one series to the plot with its resolved style and legend
// entry.
func addXY(p *plot.Plot, s Series, ms MarkerSpec, o Options, i int) error {
	c := ms.Color
	if c == nil {
		c = cycleColor(o.Cycle, i)
	}

	var thumbs []plot.Thumbnailer
	if ms.Line {
		ln, err := plotter.NewLine(s.XYs())
		if err != nil {
			return fmt.Errorf("plit: series %q: %w", s.Name, err)
		}
		ln.LineStyle.Color = c
		ln.LineStyle.Width = o.LineWidth
		ln.LineStyle.Dashes = ms.Dashes
		p.Add(ln)
		thumbs = append(thumbs, ln)
	}
	if ms.Glyph != nil {
		sc, err := plotter.NewScatter(s.XYs())
		if err != nil {
			return fmt.Errorf("plit: series %q: %w", s.Name, err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  c,
			Radius: o.MarkerSize,
			Shape:  ms.Glyph,
		}
		p.Add(sc)
		thumbs = append(thumbs, sc)
	}
	p.Legend.Add(s.Name, thumbs...)
	return nil
}
