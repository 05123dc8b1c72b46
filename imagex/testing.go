// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is an interface wrapper around *testing.T.
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether [Assert] should overwrite the
// saved test images instead of comparing against them. It is set by
// the PLIT_UPDATE_TESTDATA=true environment variable, and should only
// be turned on when rendering behavior has intentionally changed.
var UpdateTestImages = os.Getenv("PLIT_UPDATE_TESTDATA") == "true"

// closeEnough reports whether two channel values differ by at most
// tol.
func closeEnough(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

// CompareColors reports whether two colors are within tol on every
// channel.
func CompareColors(a, b color.RGBA, tol int) bool {
	return closeEnough(a.R, b.R, tol) && closeEnough(a.G, b.G, tol) &&
		closeEnough(a.B, b.B, tol) && closeEnough(a.A, b.A, tol)
}

// DiffImage returns an image holding the per-pixel absolute difference
// of the two given images.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ac := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			bc := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.Set(x, y, color.RGBA{absDiff(ac.R, bc.R), absDiff(ac.G, bc.G), absDiff(ac.B, bc.B), 255})
		}
	}
	return di
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Assert asserts that the given image matches the one stored under the
// given filename in the testdata directory (".png" is appended when
// the filename has no extension). A missing golden file is created
// from the given image. On mismatch the test fails and the rendered
// and difference images are written next to the golden file with
// ".fail" and ".diff" suffixes.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o750); err != nil {
		t.Errorf("imagex.Assert: error making testdata directory: %v", err)
		return
	}

	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	if UpdateTestImages {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: error saving updated image: %v", err)
		}
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
		return
	}

	golden, _, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("imagex.Assert: error opening saved image: %v", err)
			return
		}
		// no golden image yet, so this run creates it
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: error saving new image: %v", err)
		}
		return
	}

	failed := false
	ib := img.Bounds()
	gb := golden.Bounds()
	if ib != gb {
		t.Errorf("imagex.Assert: expected bounds %v for %s, got %v; see %s", gb, filename, ib, failFilename)
		failed = true
	} else {
	pixels:
		for y := ib.Min.Y; y < ib.Max.Y; y++ {
			for x := ib.Min.X; x < ib.Max.X; x++ {
				ic := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				gc := color.RGBAModel.Convert(golden.At(x, y)).(color.RGBA)
				if !CompareColors(ic, gc, 10) {
					t.Errorf("imagex.Assert: image for %s differs from golden at (%d, %d): expected %v, got %v; see %s",
						filename, x, y, gc, ic, failFilename)
					failed = true
					break pixels
				}
			}
		}
	}

	if !failed {
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
		return
	}
	if err := Save(img, failFilename); err != nil {
		t.Errorf("imagex.Assert: error saving fail image: %v", err)
	}
	if ib == gb {
		if err := Save(DiffImage(img, golden), diffFilename); err != nil {
			t.Errorf("imagex.Assert: error saving diff image: %v", err)
		}
	}
}
