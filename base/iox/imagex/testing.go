// Copyright 2023 Cogent Core. All rights reserved.
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

// TestingT is the part of *testing.T used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] overwrite the saved images instead of
// comparing against them. It is set by PROTRACTOR_UPDATE_TESTDATA=true,
// for use after a deliberate rendering change.
var UpdateTestImages = os.Getenv("PROTRACTOR_UPDATE_TESTDATA") == "true"

// Tolerance is the largest per channel difference [Assert] accepts.
const Tolerance = 10

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func rgbaAt(im image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(im.At(x, y)).(color.RGBA)
}

// CompareColors returns whether no channel of a and b differs by more than tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	t := uint8(min(max(tol, 0), 255))
	return absDiff(a.R, b.R) <= t && absDiff(a.G, b.G) <= t &&
		absDiff(a.B, b.B) <= t && absDiff(a.A, b.A) <= t
}

// DiffImage returns an opaque image of the per channel
// absolute differences between a and b.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ca, cb := rgbaAt(a, x, y), rgbaAt(b, x, y)
			di.SetRGBA(x, y, color.RGBA{absDiff(ca.R, cb.R), absDiff(ca.G, cb.G), absDiff(ca.B, cb.B), 255})
		}
	}
	return di
}

// firstDiff returns the first pixel where a and b differ beyond tolerance.
func firstDiff(a, b image.Image) (image.Point, bool) {
	ab := a.Bounds()
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			if !CompareColors(rgbaAt(a, x, y), rgbaAt(b, x, y), Tolerance) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// Assert checks that img matches the image saved under testdata with the
// given name (".png" is added when there is no extension). A missing
// image is created. On mismatch the test fails and the new image and a
// diff image are saved next to the expected one as name.fail.png and
// name.diff.png.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".png"
		filename += ext
	}
	base := strings.TrimSuffix(filename, ext)
	failFilename := base + ".fail" + ext
	diffFilename := base + ".diff" + ext

	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: making testdata directory: %v", err)
		return
	}
	clean := func() {
		os.Remove(failFilename)
		os.Remove(diffFilename)
	}

	want, _, err := Open(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", filename, err)
		}
		clean()
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", filename, err)
		return
	}

	if got, exp := img.Bounds(), want.Bounds(); got != exp {
		t.Errorf("imagex.Assert: %s has bounds %v, but got %v; see %s", filename, exp, got, failFilename)
	} else if p, diff := firstDiff(img, want); diff {
		t.Errorf("imagex.Assert: %s differs at %v: expected %v but got %v; see %s",
			filename, p, rgbaAt(want, p.X, p.Y), rgbaAt(img, p.X, p.Y), failFilename)
	} else {
		clean()
		return
	}
	if err := Save(img, failFilename); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", failFilename, err)
	}
	if img.Bounds() == want.Bounds() {
		if err := Save(DiffImage(img, want), diffFilename); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", diffFilename, err)
		}
	}
}
