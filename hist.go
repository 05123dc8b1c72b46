// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot/plotter"
)

// Hist draws one overlaid histogram per sample set. Bins default to
// [Options.Bins] equal-width bins over the pooled data range;
// [WithBinEdges] fixes explicit boundaries instead, dropping samples
// outside them. Overlaid fills are translucent by default so all
// series stay visible.
func Hist(samples [][]float64, labels []string, xlab, ylab string, opts ...Option) (*Chart, error) {
	o := newOptions(opts)
	labels, err := seriesLabels(labels, len(samples))
	if err != nil {
		return nil, err
	}
	edges := o.BinEdges
	if len(edges) == 0 {
		edges = autoEdges(samples, o.Bins)
	} else if !sort.Float64sAreSorted(edges) || len(edges) < 2 {
		return nil, fmt.Errorf("plit: bin edges must be at least two increasing values: %w", ErrSeriesShape)
	}

	c := newChart(xlab, ylab, o)
	alpha := o.alpha(0.7)
	for i, vs := range samples {
		c.Series = append(c.Series, Series{Name: labels[i], Y: vs})
		h, err := plotter.NewHist(plotter.Values(vs), len(edges)-1)
		if err != nil {
			return nil, fmt.Errorf("plit: series %q: %w", labels[i], err)
		}
		h.Bins = binCounts(vs, edges)
		h.FillColor = withAlpha(cycleColor(o.Cycle, i), alpha)
		h.LineStyle.Color = cycleColor(o.Cycle, i)
		h.LineStyle.Width = o.LineWidth / 2
		c.Plot.Add(h)
		c.Plot.Legend.Add(labels[i], h)
	}
	c.Labels = labels
	c.applyLimits()
	return c, nil
}

// autoEdges computes n equal-width bin edges spanning the pooled range
// of all sample sets.
func autoEdges(samples [][]float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range samples {
		for _, v := range vs {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) { // all sample sets empty
		lo, hi = 0, 1
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := make([]float64, n+1)
	width := (hi - lo) / float64(n)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[n] = hi
	return edges
}

// binCounts counts values into the half-open bins [edges[i],
// edges[i+1]), with the final bin closed on the right. Values outside
// the edge range are dropped.
func binCounts(values, edges []float64) []plotter.HistogramBin {
	bins := make([]plotter.HistogramBin, len(edges)-1)
	for i := range bins {
		bins[i].Min = edges[i]
		bins[i].Max = edges[i+1]
	}
	last := len(bins) - 1
	for _, v := range values {
		if v < edges[0] || v > edges[len(edges)-1] {
			continue
		}
		i := sort.SearchFloat64s(edges, v) - 1
		if i > last {
			i = last
		}
		if i >= 0 && edges[i+1] == v && i < last {
			// SearchFloat64s lands on the boundary; the value opens
			// the next bin except at the top edge.
			i++
		}
		if i < 0 {
			i = 0
		}
		bins[i].Weight++
	}
	return bins
}
