// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Limits fixes an axis range instead of auto-scaling it to the data.
type Limits struct {
	Min, Max float64
}

// Options are the effective chart options after defaults have been
// applied. Chart constructors take them as a list of [Option] setters;
// unset values come from the style sheet.
type Options struct {
	// Title is the chart title, empty for none.
	Title string

	// Grid draws background grid lines.
	Grid bool

	// Width and Height are the figure dimensions.
	Width, Height vg.Length

	// DPI is the raster resolution.
	DPI int

	// LineWidth is the series line width.
	LineWidth vg.Length

	// MarkerSize is the point marker radius.
	MarkerSize vg.Length

	// Font sizes.
	TitleSize, LabelSize, TickSize, LegendSize vg.Length

	// Markers are per-series marker format specs, cycled over the
	// series. Empty means a solid line per series in the cycle color.
	Markers []string

	// Alpha is the fill opacity in (0, 1]. Zero means the chart type
	// default: 1 for lines and bars, 0.7 for overlaid histograms.
	Alpha float64

	// Bins is the histogram bin count when BinEdges is not set.
	Bins int

	// BinEdges are explicit histogram bin boundaries, overriding Bins.
	BinEdges []float64

	// BarWidth is the filled fraction of each category slot, in (0, 1].
	BarWidth float64

	// XLim and YLim fix the axis ranges.
	XLim, YLim *Limits

	// XTicks and YTicks place ticks at fixed values.
	XTicks, YTicks []float64

	// PercentX and PercentY format axis tick labels as percentages of
	// 1.0 (0.25 renders as "25%").
	PercentX, PercentY bool

	// Cycle is the series color cycle.
	Cycle []color.Color
}

// Option is a setter mutating chart options, in the order given.
type Option func(*Options)

// newOptions folds the style sheet defaults and the given setters into
// effective options.
func newOptions(opts []Option) Options {
	o := DefaultStyleSheet().Options()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Options converts the style sheet into baseline chart options.
func (sh StyleSheet) Options() Options {
	return Options{
		Width:      vg.Length(sh.FigWidth) * vg.Inch,
		Height:     vg.Length(sh.FigHeight) * vg.Inch,
		DPI:        sh.DPI,
		LineWidth:  vg.Points(sh.LineWidth),
		MarkerSize: vg.Points(sh.MarkerSize),
		TitleSize:  vg.Points(sh.TitleSize),
		LabelSize:  vg.Points(sh.LabelSize),
		TickSize:   vg.Points(sh.TickSize),
		LegendSize: vg.Points(sh.LegendSize),
		Grid:       sh.Grid,
		Bins:       10,
		BarWidth:   0.8,
		Cycle:      sh.ColorCycle(),
	}
}

// WithStyleSheet replaces all style-sheet-derived options with those
// of the given sheet. Apply it before any other option.
func WithStyleSheet(sh StyleSheet) Option {
	return func(o *Options) { *o = sh.Options() }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithGrid turns background grid lines on.
func WithGrid() Option {
	return func(o *Options) { o.Grid = true }
}

// WithMarkers sets per-series marker format specs (see [ParseMarker]).
func WithMarkers(specs ...string) Option {
	return func(o *Options) { o.Markers = specs }
}

// WithFigSize sets the figure size in inches.
func WithFigSize(w, h float64) Option {
	return func(o *Options) {
		o.Width = vg.Length(w) * vg.Inch
		o.Height = vg.Length(h) * vg.Inch
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option {
	return func(o *Options) { o.DPI = dpi }
}

// WithLineWidth sets the series line width in points.
func WithLineWidth(pts float64) Option {
	return func(o *Options) { o.LineWidth = vg.Points(pts) }
}

// WithMarkerSize sets the point marker radius in points.
func WithMarkerSize(pts float64) Option {
	return func(o *Options) { o.MarkerSize = vg.Points(pts) }
}

// WithAlpha sets the fill opacity.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithBins sets the histogram bin count.
func WithBins(n int) Option {
	return func(o *Options) { o.Bins = n }
}

// WithBinEdges sets explicit histogram bin boundaries, which must be
// increasing.
func WithBinEdges(edges ...float64) Option {
	return func(o *Options) { o.BinEdges = edges }
}

// WithBarWidth sets the filled fraction of each bar category slot.
func WithBarWidth(frac float64) Option {
	return func(o *Options) { o.BarWidth = frac }
}

// WithXLim fixes the x axis range.
func WithXLim(min, max float64) Option {
	return func(o *Options) { o.XLim = &Limits{min, max} }
}

// WithYLim fixes the y axis range.
func WithYLim(min, max float64) Option {
	return func(o *Options) { o.YLim = &Limits{min, max} }
}

// WithXTicks places x axis ticks at fixed values.
func WithXTicks(values ...float64) Option {
	return func(o *Options) { o.XTicks = values }
}

// WithYTicks places y axis ticks at fixed values.
func WithYTicks(values ...float64) Option {
	return func(o *Options) { o.YTicks = values }
}

// WithPercentTicks formats tick labels on the chosen axes as
// percentages.
func WithPercentTicks(x, y bool) Option {
	return func(o *Options) {
		o.PercentX = x
		o.PercentY = y
	}
}

// WithColorCycle replaces the series color cycle.
func WithColorCycle(cycle ...color.Color) Option {
	return func(o *Options) { o.Cycle = cycle }
}

// alpha returns the effective fill opacity given a chart-type default.
func (o Options) alpha(def float64) float64 {
	if o.Alpha <= 0 || o.Alpha > 1 {
		return def
	}
	return o.Alpha
}

// xTicker returns the x axis ticker implied by the options, or nil to
// keep the plot default.
func (o Options) xTicker() plot.Ticker {
	return makeTicker(o.XTicks, o.PercentX)
}

// yTicker is the y axis analog of xTicker.
func (o Options) yTicker() plot.Ticker {
	return makeTicker(o.YTicks, o.PercentY)
}
