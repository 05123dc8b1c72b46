// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// StyleSheet is the fixed visual style applied to every chart unless
// overridden per call. Sizes are in points, figure dimensions in
// inches.
type StyleSheet struct {
	// FigWidth and FigHeight are the figure dimensions in inches.
	FigWidth  float64 `toml:"fig-width" yaml:"fig-width"`
	FigHeight float64 `toml:"fig-height" yaml:"fig-height"`

	// DPI is the raster resolution in dots per inch.
	DPI int `toml:"dpi" yaml:"dpi"`

	// LineWidth is the series line width in points.
	LineWidth float64 `toml:"line-width" yaml:"line-width"`

	// MarkerSize is the point marker radius in points.
	MarkerSize float64 `toml:"marker-size" yaml:"marker-size"`

	// Font sizes in points.
	TitleSize  float64 `toml:"title-size" yaml:"title-size"`
	LabelSize  float64 `toml:"label-size" yaml:"label-size"`
	TickSize   float64 `toml:"tick-size" yaml:"tick-size"`
	LegendSize float64 `toml:"legend-size" yaml:"legend-size"`

	// Grid draws background grid lines on every chart.
	Grid bool `toml:"grid" yaml:"grid"`

	// Colors is the series color cycle as #rrggbb hex strings.
	Colors []string `toml:"colors" yaml:"colors"`
}

// DefaultStyleSheet returns the built-in style sheet.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		FigWidth:   7,
		FigHeight:  5,
		DPI:        100,
		LineWidth:  1.5,
		MarkerSize: 4,
		TitleSize:  14,
		LabelSize:  12,
		TickSize:   10,
		LegendSize: 10,
		Colors: []string{
			"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
			"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
		},
	}
}

// LoadStyleSheet reads style sheet overrides from a .toml or
// .yaml/.yml file, on top of the defaults. Fields absent from the file
// keep their default values.
func LoadStyleSheet(path string) (StyleSheet, error) {
	sh := DefaultStyleSheet()
	b, err := os.ReadFile(path)
	if err != nil {
		return sh, fmt.Errorf("plit: reading style sheet: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &sh)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &sh)
	default:
		return sh, fmt.Errorf("plit: %q: %w", ext, ErrStyleFormat)
	}
	if err != nil {
		return sh, fmt.Errorf("plit: parsing style sheet %s: %w", path, err)
	}
	return sh, nil
}

// ColorCycle returns the color cycle as colors, skipping entries that
// fail to parse.
func (sh StyleSheet) ColorCycle() []color.Color {
	cycle := make([]color.Color, 0, len(sh.Colors))
	for _, hex := range sh.Colors {
		c, err := parseHexColor(hex)
		if err != nil {
			continue
		}
		cycle = append(cycle, c)
	}
	return cycle
}

// parseHexColor parses a #rrggbb or #rrggbbaa color.
func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	var c color.NRGBA
	c.A = 0xff
	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("hex color %q has length %d", s, len(s))
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("plit: %w", err)
	}
	return c, nil
}

// cycleColor returns the i-th color of the cycle, wrapping around.
func cycleColor(cycle []color.Color, i int) color.Color {
	if len(cycle) == 0 {
		return color.NRGBA{A: 0xff}
	}
	return cycle[i%len(cycle)]
}

// withAlpha scales the opacity of a color by alpha in [0, 1].
func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(float64(nc.A) * alpha)
	return nc
}
