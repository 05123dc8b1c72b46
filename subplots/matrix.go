// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subplots provides helpers for filling grids of subplots one
// after another and for paging long sequences of charts into montage
// image files.
package subplots

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/plit-go/plit"
	"github.com/plit-go/plit/imagex"
)

// ErrMatrixFull indicates an attempt to add a chart to a matrix whose
// subplot slots are all used.
var ErrMatrixFull = errors.New("subplots: matrix is full")

// Matrix fills a fixed grid of subplots one after another, left to
// right and top to bottom, and renders the used tiles onto a single
// canvas.
type Matrix struct {
	plots []*plot.Plot
	cols  int

	tileW, tileH vg.Length
	dpi          int

	next int
}

// MatrixOption configures a [Matrix].
type MatrixOption func(*Matrix)

// WithColumns fixes the number of grid columns instead of deriving it
// from the subplot count.
func WithColumns(n int) MatrixOption {
	return func(m *Matrix) { m.cols = n }
}

// WithTileSize sets the per-subplot figure size in inches.
func WithTileSize(w, h float64) MatrixOption {
	return func(m *Matrix) {
		m.tileW = vg.Length(w) * vg.Inch
		m.tileH = vg.Length(h) * vg.Inch
	}
}

// WithDPI sets the raster resolution of the rendered montage.
func WithDPI(dpi int) MatrixOption {
	return func(m *Matrix) { m.dpi = dpi }
}

// NewMatrix returns a matrix with room for count subplots. Unless
// fixed with [WithColumns], the column count is the square root of
// count clamped to [5, 20].
func NewMatrix(count int, opts ...MatrixOption) *Matrix {
	m := &Matrix{
		tileW: 6.4 * vg.Inch,
		tileH: 4.8 * vg.Inch,
		dpi:   100,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cols <= 0 {
		m.cols = min(max(5, int(math.Sqrt(float64(count)))), 20)
	}
	rows := (count + m.cols - 1) / m.cols
	m.plots = make([]*plot.Plot, rows*m.cols)
	return m
}

// Cols returns the number of grid columns.
func (m *Matrix) Cols() int { return m.cols }

// Rows returns the number of grid rows.
func (m *Matrix) Rows() int { return len(m.plots) / m.cols }

// Filled returns the number of used subplot slots.
func (m *Matrix) Filled() int { return m.next }

// Cap returns the total number of subplot slots.
func (m *Matrix) Cap() int { return len(m.plots) }

// Pop returns the next free subplot as a fresh plot for the caller to
// fill in, or nil when every slot is used.
func (m *Matrix) Pop() *plot.Plot {
	if m.next >= len(m.plots) {
		return nil
	}
	p := plot.New()
	m.plots[m.next] = p
	m.next++
	return p
}

// Add places an already built chart in the next free subplot.
func (m *Matrix) Add(c *plit.Chart) error {
	if m.next >= len(m.plots) {
		return ErrMatrixFull
	}
	m.plots[m.next] = c.Plot
	m.next++
	return nil
}

// Trim drops the trailing all-unused grid rows so they take no space
// in the rendered montage.
func (m *Matrix) Trim() {
	rows := (m.next + m.cols - 1) / m.cols
	if rows == 0 {
		rows = 1
	}
	if rows < m.Rows() {
		m.plots = m.plots[:rows*m.cols]
	}
}

// usedRows returns the number of grid rows holding at least one used
// subplot.
func (m *Matrix) usedRows() int {
	rows := (m.next + m.cols - 1) / m.cols
	if rows == 0 {
		rows = 1
	}
	return min(rows, m.Rows())
}

// Image renders the used subplot tiles onto a single canvas and
// returns the raster image. Unused tiles in the final row stay blank.
func (m *Matrix) Image() image.Image {
	rows := m.usedRows()
	img := vgimg.NewWith(
		vgimg.UseWH(m.tileW*vg.Length(m.cols), m.tileH*vg.Length(rows)),
		vgimg.UseDPI(m.dpi),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: m.cols,
		PadX: vg.Points(5),
		PadY: vg.Points(10),
	}

	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, m.cols)
		for c := range grid[r] {
			i := r*m.cols + c
			if i < m.next {
				grid[r][c] = m.plots[i]
			}
		}
	}
	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}
	return img.Image()
}

// Save trims unused rows, renders the montage, and writes it to the
// given filename (format by extension).
func (m *Matrix) Save(path string) error {
	m.Trim()
	if err := imagex.Save(m.Image(), path); err != nil {
		return fmt.Errorf("subplots: saving matrix: %w", err)
	}
	return nil
}
