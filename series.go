// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// Series is one named sequence of data points on a chart. For line and
// scatter charts both X and Y are set; for histograms Y holds the raw
// samples and X is nil; for bar charts Y holds the per-category
// heights.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Y) }

// XYs converts the series to plotter coordinates.
func (s Series) XYs() plotter.XYs {
	xys := make(plotter.XYs, len(s.Y))
	for i, y := range s.Y {
		xys[i].X = s.X[i]
		xys[i].Y = y
	}
	return xys
}

// Values returns the y values as plotter values.
func (s Series) Values() plotter.Values {
	return plotter.Values(s.Y)
}

// seriesLabels resolves the effective labels for n series. nil labels
// generate "series-1".."series-n"; a non-nil slice must have exactly n
// entries.
func seriesLabels(labels []string, n int) ([]string, error) {
	if n == 0 {
		return nil, ErrNoSeries
	}
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("series-%d", i+1)
		}
		return labels, nil
	}
	if len(labels) != n {
		return nil, fmt.Errorf("plit: %d labels for %d series: %w", len(labels), n, ErrLabelCount)
	}
	return labels, nil
}

// xySeries validates one shared x vector against n y-series and pairs
// them with their labels.
func xySeries(x []float64, ys [][]float64, labels []string) ([]Series, []string, error) {
	labels, err := seriesLabels(labels, len(ys))
	if err != nil {
		return nil, nil, err
	}
	series := make([]Series, len(ys))
	for i, y := range ys {
		if len(y) != len(x) {
			return nil, nil, fmt.Errorf("plit: series %q has %d points, x has %d: %w",
				labels[i], len(y), len(x), ErrSeriesShape)
		}
		series[i] = Series{Name: labels[i], X: x, Y: y}
	}
	return series, labels, nil
}
