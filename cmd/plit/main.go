// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plit renders statistical charts from CSV files.
//
//	plit line data.csv -o chart.png --title "Latency" --markers "b-,r--"
//	plit hist samples.csv -o hist.png --bins 20
//	plit bar results.csv -o bars.png --percent-y
//
// The CSV header row provides the series labels. For line and scatter
// charts the first column is the shared x vector; for bar charts it
// holds the category names; for histograms every column is a sample
// set.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plit-go/plit"
	"github.com/plit-go/plit/templates"
)

type chartFlags struct {
	output   string
	style    string
	title    string
	xlab     string
	ylab     string
	markers  string
	grid     bool
	percentX bool
	percentY bool
	width    float64
	height   float64
	dpi      int
	bins     int
	alpha    float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &chartFlags{}
	root := &cobra.Command{
		Use:           "plit",
		Short:         "Render statistical charts from CSV files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.output, "output", "o", "chart.png", "Output image file")
	pf.StringVar(&flags.style, "style", "", "Style sheet file (.toml or .yaml)")
	pf.StringVar(&flags.title, "title", "", "Chart title")
	pf.StringVar(&flags.xlab, "xlab", "", "X axis label (default: first CSV header)")
	pf.StringVar(&flags.ylab, "ylab", "", "Y axis label")
	pf.StringVar(&flags.markers, "markers", "", "Comma-separated marker specs, e.g. g-,b--,ko-")
	pf.BoolVar(&flags.grid, "grid", false, "Draw background grid lines")
	pf.BoolVar(&flags.percentX, "percent-x", false, "Format x ticks as percentages")
	pf.BoolVar(&flags.percentY, "percent-y", false, "Format y ticks as percentages")
	pf.Float64Var(&flags.width, "width", 0, "Figure width in inches")
	pf.Float64Var(&flags.height, "height", 0, "Figure height in inches")
	pf.IntVar(&flags.dpi, "dpi", 0, "Raster resolution")
	pf.IntVar(&flags.bins, "bins", 0, "Histogram bin count")
	pf.Float64Var(&flags.alpha, "alpha", 0, "Fill opacity")

	root.AddCommand(
		newLineCmd(flags, false),
		newLineCmd(flags, true),
		newHistCmd(flags),
		newBarCmd(flags),
		newPRCurveCmd(flags),
	)
	return root
}

func newLineCmd(flags *chartFlags, scatter bool) *cobra.Command {
	use, short := "line", "Render a multi-series line chart"
	if scatter {
		use, short = "scatter", "Render a multi-series scatter chart"
	}
	return &cobra.Command{
		Use:   use + " <data.csv>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}
			x, ys, labels, err := t.xySeries()
			if err != nil {
				return err
			}
			xlab := flags.xlab
			if xlab == "" && len(t.header) > 0 {
				xlab = t.header[0]
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			construct := plit.Plot
			if scatter {
				construct = plit.Scatter
			}
			c, err := construct(x, ys, labels, xlab, flags.ylab, opts...)
			if err != nil {
				return err
			}
			return save(c, flags.output)
		},
	}
}

func newHistCmd(flags *chartFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "hist <data.csv>",
		Short: "Render overlaid histograms, one per CSV column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}
			samples, labels := t.sampleSets()
			opts, err := flags.options()
			if err != nil {
				return err
			}
			c, err := plit.Hist(samples, labels, flags.xlab, flags.ylab, opts...)
			if err != nil {
				return err
			}
			return save(c, flags.output)
		},
	}
}

func newBarCmd(flags *chartFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bar <data.csv>",
		Short: "Render grouped bars; the first CSV column holds category names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}
			categories, heights, labels, err := t.barSeries()
			if err != nil {
				return err
			}
			xlab := flags.xlab
			if xlab == "" && len(t.header) > 0 {
				xlab = t.header[0]
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			c, err := plit.Bar(categories, heights, labels, xlab, flags.ylab, opts...)
			if err != nil {
				return err
			}
			return save(c, flags.output)
		},
	}
}

func newPRCurveCmd(flags *chartFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pr-curve <data.csv>",
		Short: "Render a precision/recall curve; columns: threshold, recall, precision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}
			x, ys, labels, err := t.xySeries()
			if err != nil {
				return err
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			c, err := templates.PRCurve(x, ys, labels, opts...)
			if err != nil {
				return err
			}
			return save(c, flags.output)
		},
	}
}

// options translates the command-line flags into chart options.
func (f *chartFlags) options() ([]plit.Option, error) {
	var opts []plit.Option
	if f.style != "" {
		sh, err := plit.LoadStyleSheet(f.style)
		if err != nil {
			return nil, err
		}
		opts = append(opts, plit.WithStyleSheet(sh))
	}
	if f.title != "" {
		opts = append(opts, plit.WithTitle(f.title))
	}
	if f.markers != "" {
		opts = append(opts, plit.WithMarkers(strings.Split(f.markers, ",")...))
	}
	if f.grid {
		opts = append(opts, plit.WithGrid())
	}
	if f.percentX || f.percentY {
		opts = append(opts, plit.WithPercentTicks(f.percentX, f.percentY))
	}
	if f.width > 0 && f.height > 0 {
		opts = append(opts, plit.WithFigSize(f.width, f.height))
	}
	if f.dpi > 0 {
		opts = append(opts, plit.WithDPI(f.dpi))
	}
	if f.bins > 0 {
		opts = append(opts, plit.WithBins(f.bins))
	}
	if f.alpha > 0 {
		opts = append(opts, plit.WithAlpha(f.alpha))
	}
	return opts, nil
}

func save(c *plit.Chart, path string) error {
	if err := c.Save(path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	slog.Info("wrote chart", "file", path, "series", len(c.Series))
	return nil
}
