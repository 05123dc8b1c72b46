// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plit-go/plit"
	"github.com/plit-go/plit/imagex"
)

func thresholdCurves() (x []float64, ys [][]float64) {
	x = make([]float64, 11)
	recall := make([]float64, 11)
	precision := make([]float64, 11)
	for i := range x {
		x[i] = float64(i) / 10
		recall[i] = 1 - x[i]*0.9
		precision[i] = 0.5 + x[i]*0.45
	}
	return x, [][]float64{recall, precision}
}

func TestPRCurve(t *testing.T) {
	x, ys := thresholdCurves()
	c, err := PRCurve(x, ys, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Recall", "Precision"}, c.Labels)
	assert.Equal(t, "Choosing a Threshold", c.Plot.Title.Text)
	assert.Equal(t, "Threshold Cutoff for Positive Class", c.Plot.X.Label.Text)
	assert.Equal(t, "Precision or Recall", c.Plot.Y.Label.Text)
	assert.True(t, c.Options.Grid)
	assert.True(t, c.Options.PercentY)
	assert.False(t, c.Options.PercentX)
	assert.Equal(t, []string{"g-", "g--", "b-", "b--", "r-", "r--"}, c.Options.Markers)

	imagex.Assert(t, c.Image(), "pr_curve.png")
}

func TestPRCurveOverride(t *testing.T) {
	x, ys := thresholdCurves()
	c, err := PRCurve(x, ys, []string{"TPR", "PPV"}, plit.WithTitle("Custom"))
	require.NoError(t, err)
	assert.Equal(t, []string{"TPR", "PPV"}, c.Labels)
	assert.Equal(t, "Custom", c.Plot.Title.Text)
}

func TestProbHist(t *testing.T) {
	samples := [][]float64{{0.05, 0.1, 0.5, 0.5, 0.95, 1.0}}
	c, err := ProbHist(samples, []string{"scores"})
	require.NoError(t, err)

	assert.Equal(t, "Probability Bucket", c.Plot.X.Label.Text)
	assert.Equal(t, "Observation Count (Valid)", c.Plot.Y.Label.Text)
	require.Len(t, c.Options.BinEdges, 21)
	assert.Equal(t, 0.0, c.Options.BinEdges[0])
	assert.Equal(t, 1.0, c.Options.BinEdges[20])

	imagex.Assert(t, c.Image(), "prob_hist.png")
}

func TestAccVsCov(t *testing.T) {
	x := []float64{0.2, 0.4, 0.6, 0.8, 1.0}
	acc := [][]float64{{0.99, 0.97, 0.94, 0.9, 0.85}}
	c, err := AccVsCov(x, acc, []string{"model"})
	require.NoError(t, err)

	assert.Equal(t, "Accuracy vs. Document Coverage", c.Plot.Title.Text)
	assert.Equal(t, "Document Coverage", c.Plot.X.Label.Text)
	assert.True(t, c.Options.PercentX)
	assert.True(t, c.Options.PercentY)
	assert.Len(t, c.Options.XTicks, 11)

	imagex.Assert(t, c.Image(), "acc_vs_cov.png")
}

func TestCalibBuckets(t *testing.T) {
	assert.Equal(t, []string{"50-60%", "60-70%", "70-80%", "80-90%", "90-100%"}, CalibBuckets)
}

func TestCalib(t *testing.T) {
	acc := [][]float64{{0.52, 0.66, 0.77, 0.83, 0.97}}
	c, err := Calib(acc, []string{"model"})
	require.NoError(t, err)

	assert.Equal(t, "Probability Bucket", c.Plot.X.Label.Text)
	assert.Equal(t, "Accuracy", c.Plot.Y.Label.Text)
	assert.Equal(t, 0.4, c.Plot.Y.Min)
	assert.Equal(t, 1.0, c.Plot.Y.Max)
	assert.True(t, c.Options.PercentY)

	imagex.Assert(t, c.Image(), "calib.png")
}

func TestCalibShapeMismatch(t *testing.T) {
	_, err := Calib([][]float64{{0.5, 0.6}}, nil)
	assert.ErrorIs(t, err, plit.ErrSeriesShape)
}
