// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subplots

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/anthonynsimon/bild/transform"
	"gonum.org/v1/plot"

	"github.com/plit-go/plit"
	"github.com/plit-go/plit/imagex"
)

// Pager groups subplots into pages and saves each full page as a
// montage image plus one cropped image per subplot, recording where
// each subplot landed in a mappings.csv file:
//
//	output/
//	  montages/<prefix>-0000.png
//	  individuals/0000-00.png
//	  mappings.csv   (individual, title, montage, subplot, row, col)
//
// A page is saved automatically when a Pop overflows it; the final,
// possibly partial page is saved by [Pager.Close].
type Pager struct {
	dir      string
	prefix   string
	pageSize int

	matrixOpts []MatrixOption
	matrix     *Matrix
	page       int
	titles     []string

	csvFile *os.File
	csvw    *csv.Writer
}

// PagerOption configures a [Pager].
type PagerOption func(*Pager)

// WithPrefix sets the montage filename prefix (default "montage").
func WithPrefix(prefix string) PagerOption {
	return func(pg *Pager) { pg.prefix = prefix }
}

// WithPageSize sets the number of subplots per montage (default 100).
func WithPageSize(n int) PagerOption {
	return func(pg *Pager) { pg.pageSize = n }
}

// WithMatrixOptions passes options through to each page matrix.
func WithMatrixOptions(opts ...MatrixOption) PagerOption {
	return func(pg *Pager) { pg.matrixOpts = opts }
}

// NewPager creates the montages and individuals directories under dir
// along with the mappings.csv file, and returns a pager ready for
// [Pager.Pop].
func NewPager(dir string, opts ...PagerOption) (*Pager, error) {
	pg := &Pager{
		dir:      dir,
		prefix:   "montage",
		pageSize: 100,
	}
	for _, opt := range opts {
		opt(pg)
	}
	if err := os.MkdirAll(filepath.Join(dir, "montages"), 0o750); err != nil {
		return nil, fmt.Errorf("subplots: creating montage directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "individuals"), 0o750); err != nil {
		return nil, fmt.Errorf("subplots: creating individuals directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "mappings.csv"))
	if err != nil {
		return nil, fmt.Errorf("subplots: creating mappings file: %w", err)
	}
	pg.csvFile = f
	pg.csvw = csv.NewWriter(f)
	if err := pg.csvw.Write([]string{"individual", "title", "montage", "subplot", "row", "col"}); err != nil {
		f.Close()
		return nil, fmt.Errorf("subplots: writing mappings header: %w", err)
	}
	pg.matrix = NewMatrix(pg.pageSize, pg.matrixOpts...)
	return pg, nil
}

// Page returns the zero-based sequence number of the current page.
func (pg *Pager) Page() int { return pg.page }

// Filename returns the montage filename of the current page.
func (pg *Pager) Filename() string {
	return fmt.Sprintf("%s-%04d.png", pg.prefix, pg.page)
}

// Pop returns the next free subplot, associated with the given title.
// When the current page is full it is saved first and a new page
// started.
func (pg *Pager) Pop(title string) *plot.Plot {
	if pg.matrix.Filled() >= pg.pageSize {
		if err := pg.Save(); err != nil {
			slog.Error("subplots: saving full montage page", "page", pg.page, "err", err)
		}
		pg.page++
		pg.matrix = NewMatrix(pg.pageSize, pg.matrixOpts...)
	}
	pg.titles = append(pg.titles, title)
	return pg.matrix.Pop()
}

// Add places an already built chart in the next subplot, handling page
// overflow like [Pager.Pop].
func (pg *Pager) Add(c *plit.Chart, title string) error {
	p := pg.Pop(title)
	if p == nil {
		return ErrMatrixFull
	}
	*p = *c.Plot
	return nil
}

// Save writes the current page: the montage image, the cropped
// individual subplot images, and their mappings.csv rows. Saving an
// empty page is a no-op.
func (pg *Pager) Save() error {
	used := pg.matrix.Filled()
	if used == 0 {
		return nil
	}
	pg.matrix.Trim()
	img := pg.matrix.Image()
	montage := filepath.Join(pg.dir, "montages", pg.Filename())
	if err := imagex.Save(img, montage); err != nil {
		return fmt.Errorf("subplots: saving montage: %w", err)
	}
	if err := pg.saveIndividuals(img, used); err != nil {
		return err
	}
	return pg.writeMappings(used)
}

// Close saves any pending partial page and closes the mappings file.
func (pg *Pager) Close() error {
	err := pg.Save()
	pg.csvw.Flush()
	if ferr := pg.csvw.Error(); err == nil {
		err = ferr
	}
	if cerr := pg.csvFile.Close(); err == nil {
		err = cerr
	}
	return err
}

// saveIndividuals chops the montage into per-subplot images: a
// fixed-geometry crop per tile, tightened to the drawn content with a
// small pad.
func (pg *Pager) saveIndividuals(img image.Image, used int) error {
	rows := (used + pg.matrix.Cols() - 1) / pg.matrix.Cols()
	b := img.Bounds()
	tileW := b.Dx() / pg.matrix.Cols()
	tileH := b.Dy() / rows

	for i := 0; i < used; i++ {
		row, col := i/pg.matrix.Cols(), i%pg.matrix.Cols()
		rect := image.Rect(
			b.Min.X+col*tileW, b.Min.Y+row*tileH,
			b.Min.X+(col+1)*tileW, b.Min.Y+(row+1)*tileH,
		)
		tile := transform.Crop(img, rect)
		tight := transform.Crop(tile, contentBounds(tile, 4))
		name := filepath.Join(pg.dir, "individuals", fmt.Sprintf("%04d-%02d.png", pg.page, i))
		if err := imagex.Save(tight, name); err != nil {
			return fmt.Errorf("subplots: saving individual %d: %w", i, err)
		}
	}
	return nil
}

// writeMappings appends one csv row per subplot on the page and resets
// the recorded titles.
func (pg *Pager) writeMappings(used int) error {
	montage := pg.Filename()
	for i := 0; i < used && i < len(pg.titles); i++ {
		row, col := i/pg.matrix.Cols(), i%pg.matrix.Cols()
		rec := []string{
			fmt.Sprintf("%04d-%02d.png", pg.page, i),
			pg.titles[i],
			montage,
			strconv.Itoa(i),
			strconv.Itoa(row),
			strconv.Itoa(col),
		}
		if err := pg.csvw.Write(rec); err != nil {
			return fmt.Errorf("subplots: writing mapping row: %w", err)
		}
	}
	pg.titles = pg.titles[:0]
	pg.csvw.Flush()
	return pg.csvw.Error()
}

// contentBounds returns the bounding box of the non-background pixels
// of the image, expanded by pad and clipped to the image bounds. The
// background is taken from the top-left pixel.
func contentBounds(img image.Image, pad int) image.Rectangle {
	b := img.Bounds()
	bg := color.RGBAModel.Convert(img.At(b.Min.X, b.Min.Y)).(color.RGBA)
	box := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c == bg {
				continue
			}
			if x < box.Min.X {
				box.Min.X = x
			}
			if y < box.Min.Y {
				box.Min.Y = y
			}
			if x+1 > box.Max.X {
				box.Max.X = x + 1
			}
			if y+1 > box.Max.Y {
				box.Max.Y = y + 1
			}
		}
	}
	if box.Empty() { // blank tile
		return b
	}
	box.Min.X -= pad
	box.Min.Y -= pad
	box.Max.X += pad
	box.Max.Y += pad
	return box.Intersect(b)
}
