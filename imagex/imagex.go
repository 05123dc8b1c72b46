// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides the image encoding, decoding, and
// golden-file comparison helpers used by chart saving and by the
// rendering tests.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a supported image encoding format.
type Format int32

const (
	None Format = iota
	PNG
	JPEG
	TIFF
	BMP
)

// ExtToFormat returns the Format for a filename extension, with or
// without the leading dot.
func ExtToFormat(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	}
	return None, fmt.Errorf("imagex: extension %q not recognized", ext)
}

// Open opens an image from the given filename, inferring the format
// from the contents. png, jpeg, tiff, and bmp are supported.
func Open(filename string) (image.Image, Format, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read decodes an image from the given reader, inferring the format
// from the contents.
func Read(r io.Reader) (image.Image, Format, error) {
	im, ext, err := image.Decode(r)
	if err != nil {
		return im, None, err
	}
	f, err := ExtToFormat(ext)
	return im, f, err
}

// Save writes the image to the given filename, with the format
// inferred from the extension.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	defer bw.Flush()
	return Write(im, bw, f)
}

// Write encodes the image to the given writer in the given format.
func Write(im image.Image, w io.Writer, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	default:
		return fmt.Errorf("imagex: format %d not valid", f)
	}
}
