// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PercentTicks is a [plot.Ticker] that relabels the ticks of a base
// ticker as percentages of 1.0, so 0.25 renders as "25%".
type PercentTicks struct {
	// Ticker produces the tick positions; nil means [plot.DefaultTicks].
	Ticker plot.Ticker
}

// Ticks implements [plot.Ticker].
func (pt PercentTicks) Ticks(min, max float64) []plot.Tick {
	base := pt.Ticker
	if base == nil {
		base = plot.DefaultTicks{}
	}
	ticks := base.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" { // minor tick
			continue
		}
		// round away float artifacts, keeping two decimals of percent
		v := math.Round(t.Value*1e6) / 1e4
		ticks[i].Label = strconv.FormatFloat(v, 'f', -1, 64) + "%"
	}
	return ticks
}

// fixedTicks builds constant ticks at the given values.
func fixedTicks(values []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		label := math.Round(v*1e10) / 1e10
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(label, 'g', -1, 64)}
	}
	return ticks
}

// makeTicker combines fixed tick positions and percent formatting into
// a ticker, returning nil when neither applies.
func makeTicker(values []float64, percent bool) plot.Ticker {
	var t plot.Ticker
	if len(values) > 0 {
		t = fixedTicks(values)
	}
	if percent {
		return PercentTicks{Ticker: t}
	}
	return t
}

// newGrid returns grid lines in a light gray suited to sitting behind
// data series.
func newGrid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = color.Gray{Y: 0xb0}
	g.Vertical.Width = vg.Points(0.5)
	g.Horizontal.Color = color.Gray{Y: 0xb0}
	g.Horizontal.Width = vg.Points(0.5)
	return g
}
