// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// table is a parsed CSV data file: a header row of labels and the data
// rows as raw strings.
type table struct {
	header []string
	rows   [][]string
}

// loadTable reads a CSV file with a mandatory header row.
func loadTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()
	return readTable(f)
}

func readTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv needs a header row and at least one data row, got %d rows", len(records))
	}
	return &table{header: records[0], rows: records[1:]}, nil
}

// column parses data column i as floats. Empty cells are skipped,
// which allows sample-set columns of different lengths.
func (t *table) column(i int) ([]float64, error) {
	vs := make([]float64, 0, len(t.rows))
	for r, row := range t.rows {
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", r+2, t.header[i], err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// xySeries interprets the table as one x column followed by y-series
// columns.
func (t *table) xySeries() (x []float64, ys [][]float64, labels []string, err error) {
	if len(t.header) < 2 {
		return nil, nil, nil, fmt.Errorf("csv needs an x column and at least one series column")
	}
	x, err = t.column(0)
	if err != nil {
		return nil, nil, nil, err
	}
	for i := 1; i < len(t.header); i++ {
		y, err := t.column(i)
		if err != nil {
			return nil, nil, nil, err
		}
		ys = append(ys, y)
		labels = append(labels, t.header[i])
	}
	return x, ys, labels, nil
}

// sampleSets interprets every column as an independent sample set.
func (t *table) sampleSets() (samples [][]float64, labels []string) {
	for i := range t.header {
		vs, err := t.column(i)
		if err != nil {
			// non-numeric columns are skipped rather than fatal, so a
			// file with a leading id column still works
			continue
		}
		samples = append(samples, vs)
		labels = append(labels, t.header[i])
	}
	return samples, labels
}

// barSeries interprets the table as a category column followed by
// height columns.
func (t *table) barSeries() (categories []string, heights [][]float64, labels []string, err error) {
	if len(t.header) < 2 {
		return nil, nil, nil, fmt.Errorf("csv needs a category column and at least one series column")
	}
	for _, row := range t.rows {
		categories = append(categories, row[0])
	}
	for i := 1; i < len(t.header); i++ {
		hs, err := t.column(i)
		if err != nil {
			return nil, nil, nil, err
		}
		heights = append(heights, hs)
		labels = append(labels, t.header[i])
	}
	return categories, heights, labels, nil
}
