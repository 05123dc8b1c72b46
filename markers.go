// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MarkerSpec is a parsed marker format spec. A zero Color means "use
// the next color from the cycle"; a nil Glyph means no point markers.
type MarkerSpec struct {
	// Color is the series color, nil for the cycle default.
	Color color.Color

	// Glyph draws the point marker, nil for none.
	Glyph draw.GlyphDrawer

	// Line reports whether to draw a connecting line.
	Line bool

	// Dashes is the dash pattern of the line, nil for solid.
	Dashes []vg.Length
}

// Single-letter colors following the usual plotting shorthand.
var markerColors = map[byte]color.Color{
	'b': color.NRGBA{0x00, 0x00, 0xff, 0xff},
	'g': color.NRGBA{0x00, 0x80, 0x00, 0xff},
	'r': color.NRGBA{0xff, 0x00, 0x00, 0xff},
	'c': color.NRGBA{0x00, 0xbf, 0xbf, 0xff},
	'm': color.NRGBA{0xbf, 0x00, 0xbf, 0xff},
	'y': color.NRGBA{0xbf, 0xbf, 0x00, 0xff},
	'k': color.NRGBA{0x00, 0x00, 0x00, 0xff},
	'w': color.NRGBA{0xff, 0xff, 0xff, 0xff},
}

var markerGlyphs = map[byte]draw.GlyphDrawer{
	'o': draw.CircleGlyph{},
	'.': draw.CircleGlyph{},
	's': draw.BoxGlyph{},
	'd': draw.SquareGlyph{},
	'^': draw.PyramidGlyph{},
	'v': draw.TriangleGlyph{},
	'x': draw.CrossGlyph{},
	'+': draw.PlusGlyph{},
	'*': draw.RingGlyph{},
}

// Dash patterns keyed by line style token.
var (
	dashedPattern  = []vg.Length{vg.Points(6), vg.Points(4)}
	dottedPattern  = []vg.Length{vg.Points(1.5), vg.Points(2.5)}
	dashDotPattern = []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1.5), vg.Points(3)}
)

// ParseMarker parses a marker format spec of the form
// "[color][glyph][line]", e.g. "g--" (green dashed line), "ko-" (black
// circles joined by a solid line), "b-" (blue solid line), or "x"
// (point markers only, cycle color). An empty spec means a solid line
// in the cycle color.
func ParseMarker(spec string) (MarkerSpec, error) {
	ms := MarkerSpec{}
	s := spec
	if s == "" {
		ms.Line = true
		return ms, nil
	}
	if c, ok := markerColors[s[0]]; ok {
		ms.Color = c
		s = s[1:]
	}
	if s != "" {
		if g, ok := markerGlyphs[s[0]]; ok {
			ms.Glyph = g
			s = s[1:]
		}
	}
	switch {
	case s == "":
		// glyph or color only: no line unless nothing else was given
		ms.Line = ms.Glyph == nil
	case s == "-":
		ms.Line = true
	case s == "--":
		ms.Line = true
		ms.Dashes = dashedPattern
	case s == ":":
		ms.Line = true
		ms.Dashes = dottedPattern
	case s == "-." || s == ".-":
		ms.Line = true
		ms.Dashes = dashDotPattern
	default:
		return MarkerSpec{}, fmt.Errorf("plit: %q: %w", spec, ErrMarkerSpec)
	}
	return ms, nil
}

// parseMarkers parses all specs up front so a bad spec fails the whole
// call before anything is plotted.
func parseMarkers(specs []string) ([]MarkerSpec, error) {
	ms := make([]MarkerSpec, len(specs))
	for i, s := range specs {
		m, err := ParseMarker(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		ms[i] = m
	}
	return ms, nil
}

// markerFor returns the spec for series i, cycling when there are
// fewer specs than series, or the default solid line when there are
// none.
func markerFor(specs []MarkerSpec, i int) MarkerSpec {
	if len(specs) == 0 {
		return MarkerSpec{Line: true}
	}
	return specs[i%len(specs)]
}
