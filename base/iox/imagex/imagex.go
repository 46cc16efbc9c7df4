// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex reads and writes image files and provides
// golden image assertions for tests.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats are the supported image file formats.
type Formats int32 //enums:enum

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
)

// codec is the name, file extensions and encoder of a format.
type codec struct {
	name   string
	exts   []string
	encode func(w io.Writer, im image.Image) error
}

var codecs = [...]codec{
	None: {name: "None"},
	PNG:  {"PNG", []string{"png"}, png.Encode},
	JPEG: {"JPEG", []string{"jpg", "jpeg"}, func(w io.Writer, im image.Image) error {
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	}},
	GIF: {"GIF", []string{"gif"}, func(w io.Writer, im image.Image) error {
		return gif.Encode(w, im, nil)
	}},
	TIFF: {"TIFF", []string{"tif", "tiff"}, func(w io.Writer, im image.Image) error {
		return tiff.Encode(w, im, nil)
	}},
	BMP: {"BMP", []string{"bmp"}, bmp.Encode},
}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(codecs) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return codecs[f].name
}

// ExtToFormat returns the format for the given file extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return None, fmt.Errorf("imagex: empty extension")
	}
	for f, c := range codecs {
		for _, e := range c.exts {
			if e == ext {
				return Formats(f), nil
			}
		}
	}
	return None, fmt.Errorf("imagex: extension %q not recognized", ext)
}

// Open reads the image in the given file, detecting its format.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image, detecting its format.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, name, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(name)
	return im, f, err
}

// Save writes the image to the given file in the format
// given by its extension.
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
	if err := Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write encodes the image to w in the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	if f <= None || int(f) >= len(codecs) {
		return fmt.Errorf("imagex: cannot write format %v", f)
	}
	return codecs[f].encode(w, im)
}

// CloneAsRGBA returns an RGBA copy of src, or nil for a nil src.
func CloneAsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	img := image.NewRGBA(b)
	draw.Draw(img, b, src, b.Min, draw.Src)
	return img
}
