// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package templates provides pre-configured analytic charts for common
// tasks in machine learning and statistics, composed from the plit
// chart constructors with fixed parameter presets. Trailing options
// override the presets.
package templates

import (
	"fmt"

	"github.com/plit-go/plit"
)

// PRCurve draws precision and recall (and further metric pairs)
// against a classification threshold, as dashed and solid line pairs.
// Labels default to ["Recall", "Precision"] when nil.
func PRCurve(thresholds []float64, ys [][]float64, labels []string, opts ...plit.Option) (*plit.Chart, error) {
	if labels == nil && len(ys) == 2 {
		labels = []string{"Recall", "Precision"}
	}
	preset := []plit.Option{
		plit.WithTitle("Choosing a Threshold"),
		plit.WithMarkers("g-", "g--", "b-", "b--", "r-", "r--"),
		plit.WithPercentTicks(false, true),
		plit.WithGrid(),
	}
	return plit.Plot(thresholds, ys, labels,
		"Threshold Cutoff for Positive Class", "Precision or Recall",
		append(preset, opts...)...)
}

// ProbHist draws a histogram of predicted probabilities, bucketed into
// twenty 0.05-wide bins over [0, 1].
func ProbHist(samples [][]float64, labels []string, opts ...plit.Option) (*plit.Chart, error) {
	edges := make([]float64, 21)
	for i := range edges {
		edges[i] = float64(i) * 0.05
	}
	edges[20] = 1
	preset := []plit.Option{plit.WithBinEdges(edges...)}
	return plit.Hist(samples, labels,
		"Probability Bucket", "Observation Count (Valid)",
		append(preset, opts...)...)
}

// AccVsCov draws accuracy against coverage, with percent ticks on both
// axes over a fixed 0-100% x grid.
func AccVsCov(coverage []float64, ys [][]float64, labels []string, opts ...plit.Option) (*plit.Chart, error) {
	ticks := make([]float64, 11)
	for i := range ticks {
		ticks[i] = float64(i) * 0.1
	}
	preset := []plit.Option{
		plit.WithTitle("Accuracy vs. Document Coverage"),
		plit.WithMarkers("k--", "ko-", "ks-"),
		plit.WithXTicks(ticks...),
		plit.WithMarkerSize(8),
		plit.WithPercentTicks(true, true),
		plit.WithGrid(),
	}
	return plit.Plot(coverage, ys, labels,
		"Document Coverage", "Document Accuracy",
		append(preset, opts...)...)
}

// CalibBuckets are the probability-bucket categories used by [Calib]:
// each accuracy value is expected to average the predictions falling
// in the corresponding bucket.
var CalibBuckets = calibBuckets()

func calibBuckets() []string {
	centers := []float64{0.55, 0.65, 0.75, 0.85, 0.95}
	buckets := make([]string, len(centers))
	for i, c := range centers {
		lo := 10 * int(10*c)
		buckets[i] = fmt.Sprintf("%d-%d%%", lo, lo+10)
	}
	return buckets
}

// Calib draws per-bucket accuracy bars for assessing model
// calibration, over the fixed [CalibBuckets] categories.
func Calib(accuracies [][]float64, labels []string, opts ...plit.Option) (*plit.Chart, error) {
	preset := []plit.Option{
		plit.WithYLim(0.4, 1),
		plit.WithAlpha(0.8),
		plit.WithPercentTicks(false, true),
		plit.WithGrid(),
	}
	return plit.Bar(CalibBuckets, accuracies, labels,
		"Probability Bucket", "Accuracy",
		append(preset, opts...)...)
}
