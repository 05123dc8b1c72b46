// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plit-go/plit/imagex"
)

func TestBinCounts(t *testing.T) {
	edges := []float64{0, 1, 2, 3}
	bins := binCounts([]float64{0, 0.5, 1, 1.5, 2.5, 3}, edges)
	require.Len(t, bins, 3)

	assert.Equal(t, 0.0, bins[0].Min)
	assert.Equal(t, 1.0, bins[0].Max)
	// 0 and 0.5 fall in the first bin; 1 opens the second
	assert.Equal(t, 2.0, bins[0].Weight)
	assert.Equal(t, 2.0, bins[1].Weight)
	// the final bin is closed on the right, so 3 lands in it
	assert.Equal(t, 2.0, bins[2].Weight)
}

func TestBinCountsDropsOutliers(t *testing.T) {
	bins := binCounts([]float64{-5, 0.5, 99}, []float64{0, 1})
	require.Len(t, bins, 1)
	assert.Equal(t, 1.0, bins[0].Weight)
}

func TestAutoEdges(t *testing.T) {
	edges := autoEdges([][]float64{{0, 10}, {5, 20}}, 4)
	require.Len(t, edges, 5)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 20.0, edges[4])
	assert.InDelta(t, 5.0, edges[1], 1e-12)
}

func TestAutoEdgesDegenerate(t *testing.T) {
	// all samples identical still yields a non-empty range
	edges := autoEdges([][]float64{{3, 3, 3}}, 2)
	require.Len(t, edges, 3)
	assert.Less(t, edges[0], edges[2])

	edges = autoEdges(nil, 2)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 1.0, edges[2])
}

func TestHist(t *testing.T) {
	a := []float64{0.1, 0.2, 0.2, 0.3, 0.5, 0.5, 0.5, 0.8}
	b := []float64{0.4, 0.6, 0.6, 0.7, 0.9}
	c, err := Hist([][]float64{a, b}, []string{"valid", "invalid"}, "Score", "Count",
		WithBins(5))
	require.NoError(t, err)

	assert.Len(t, c.Series, 2)
	assert.Equal(t, []string{"valid", "invalid"}, c.Labels)
	imagex.Assert(t, c.Image(), "hist.png")
}

func TestHistLabelMismatch(t *testing.T) {
	_, err := Hist([][]float64{{1, 2}}, []string{"a", "b"}, "x", "y")
	assert.ErrorIs(t, err, ErrLabelCount)
}

func TestHistBadEdges(t *testing.T) {
	_, err := Hist([][]float64{{1, 2}}, nil, "x", "y", WithBinEdges(3, 2, 1))
	assert.ErrorIs(t, err, ErrSeriesShape)

	_, err = Hist([][]float64{{1, 2}}, nil, "x", "y", WithBinEdges(1))
	assert.ErrorIs(t, err, ErrSeriesShape)
}

func TestHistExplicitEdges(t *testing.T) {
	c, err := Hist([][]float64{{0.1, 0.6, 0.7}}, nil, "x", "y",
		WithBinEdges(0, 0.5, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, c.Options.BinEdges)
}
