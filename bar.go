// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bar draws grouped vertical bars over categorical x values. Each
// heights series must have one value per category; series are offset
// side by side within each category slot, filling [Options.BarWidth]
// of it.
func Bar(categories []string, heights [][]float64, labels []string, xlab, ylab string, opts ...Option) (*Chart, error) {
	o := newOptions(opts)
	labels, err := seriesLabels(labels, len(heights))
	if err != nil {
		return nil, err
	}
	for i, hs := range heights {
		if len(hs) != len(categories) {
			return nil, fmt.Errorf("plit: series %q has %d heights for %d categories: %w",
				labels[i], len(hs), len(categories), ErrSeriesShape)
		}
	}

	c := newChart(xlab, ylab, o)
	alpha := o.alpha(1)
	n := len(heights)

	// Bars within one category slot share o.BarWidth of the unit
	// stride between categories.
	slot := o.Width / vg.Length(len(categories)+1)
	barw := slot * vg.Length(o.BarWidth) / vg.Length(n)

	for i, hs := range heights {
		c.Series = append(c.Series, Series{Name: labels[i], Y: hs})
		b, err := plotter.NewBarChart(plotter.Values(hs), barw)
		if err != nil {
			return nil, fmt.Errorf("plit: series %q: %w", labels[i], err)
		}
		b.Color = withAlpha(cycleColor(o.Cycle, i), alpha)
		b.LineStyle.Width = 0
		b.Offset = barw * vg.Length(float64(i)-float64(n-1)/2)
		c.Plot.Add(b)
		c.Plot.Legend.Add(labels[i], b)
	}
	c.Plot.NominalX(categories...)
	c.Labels = labels
	c.applyLimits()
	return c, nil
}
