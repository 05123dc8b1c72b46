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

func TestBar(t *testing.T) {
	cats := []string{"a", "b", "c", "d"}
	heights := [][]float64{
		{4, 8, 2, 6},
		{3, 7, 5, 1},
	}
	c, err := Bar(cats, heights, []string{"before", "after"}, "Group", "Count",
		WithTitle("Grouped"))
	require.NoError(t, err)

	assert.Len(t, c.Series, 2)
	assert.Equal(t, []string{"before", "after"}, c.Labels)
	assert.Equal(t, "Grouped", c.Plot.Title.Text)
	imagex.Assert(t, c.Image(), "bar.png")
}

func TestBarShapeMismatch(t *testing.T) {
	_, err := Bar([]string{"a", "b"}, [][]float64{{1, 2, 3}}, nil, "x", "y")
	assert.ErrorIs(t, err, ErrSeriesShape)
}

func TestBarLabelMismatch(t *testing.T) {
	_, err := Bar([]string{"a"}, [][]float64{{1}}, []string{"x", "y"}, "x", "y")
	assert.ErrorIs(t, err, ErrLabelCount)
}

func TestBarYLim(t *testing.T) {
	c, err := Bar([]string{"a", "b"}, [][]float64{{0.5, 0.9}}, nil, "x", "y",
		WithYLim(0.4, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.4, c.Plot.Y.Min)
	assert.Equal(t, 1.0, c.Plot.Y.Max)
}
