// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg/draw"
)

func TestParseMarker(t *testing.T) {
	ms, err := ParseMarker("g--")
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x00, 0x80, 0x00, 0xff}, ms.Color)
	assert.Nil(t, ms.Glyph)
	assert.True(t, ms.Line)
	assert.Equal(t, dashedPattern, ms.Dashes)

	ms, err = ParseMarker("ko-")
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x00, 0x00, 0x00, 0xff}, ms.Color)
	assert.Equal(t, draw.CircleGlyph{}, ms.Glyph)
	assert.True(t, ms.Line)
	assert.Nil(t, ms.Dashes)

	ms, err = ParseMarker("b-")
	assert.NoError(t, err)
	assert.True(t, ms.Line)
	assert.Nil(t, ms.Glyph)

	ms, err = ParseMarker("ks-")
	assert.NoError(t, err)
	assert.Equal(t, draw.BoxGlyph{}, ms.Glyph)
	assert.True(t, ms.Line)
}

func TestParseMarkerGlyphOnly(t *testing.T) {
	ms, err := ParseMarker("x")
	assert.NoError(t, err)
	assert.Nil(t, ms.Color)
	assert.Equal(t, draw.CrossGlyph{}, ms.Glyph)
	assert.False(t, ms.Line)
}

func TestParseMarkerColorOnly(t *testing.T) {
	ms, err := ParseMarker("r")
	assert.NoError(t, err)
	assert.NotNil(t, ms.Color)
	assert.True(t, ms.Line)
	assert.Nil(t, ms.Dashes)
}

func TestParseMarkerEmpty(t *testing.T) {
	ms, err := ParseMarker("")
	assert.NoError(t, err)
	assert.Nil(t, ms.Color)
	assert.True(t, ms.Line)
}

func TestParseMarkerLineStyles(t *testing.T) {
	ms, err := ParseMarker(":")
	assert.NoError(t, err)
	assert.Equal(t, dottedPattern, ms.Dashes)

	ms, err = ParseMarker("-.")
	assert.NoError(t, err)
	assert.Equal(t, dashDotPattern, ms.Dashes)
}

func TestParseMarkerBad(t *testing.T) {
	_, err := ParseMarker("z!")
	assert.ErrorIs(t, err, ErrMarkerSpec)

	_, err = ParseMarker("g---")
	assert.ErrorIs(t, err, ErrMarkerSpec)
}

func TestMarkerFor(t *testing.T) {
	specs, err := parseMarkers([]string{"g-", "b--"})
	assert.NoError(t, err)
	assert.Equal(t, specs[0], markerFor(specs, 0))
	assert.Equal(t, specs[1], markerFor(specs, 1))
	assert.Equal(t, specs[0], markerFor(specs, 2)) // cycles

	def := markerFor(nil, 0)
	assert.True(t, def.Line)
	assert.Nil(t, def.Glyph)
}
