// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/protractor/base/iox/imagex"
	"cogentcore.org/protractor/colors"
	"cogentcore.org/protractor/math32"
	"cogentcore.org/protractor/protractor"
	"github.com/stretchr/testify/assert"
)

var red = color.RGBA{255, 0, 0, 255}

func testDial() *protractor.Dial {
	d := protractor.New(protractor.DefaultConfig())
	d.SetArcWidth(8).SetArcProgressWidth(8).SetThumbColor(red)
	d.Layout(400, 400, 1)
	d.SetAngle(90)
	return d
}

func at(img *image.RGBA, angle, radius float32) color.RGBA {
	p := protractor.AngleToPoint(angle, radius, math32.Vec2(200, 200))
	return img.RGBAAt(int(p.X), int(p.Y))
}

func TestDrawArc(t *testing.T) {
	img := Image(testDial().Render(), 400, 222)
	assert.Equal(t, image.Rect(0, 0, 400, 222), img.Bounds())

	assert.Equal(t, colors.DefaultBlueLight, at(img, 45, 158))
	assert.Equal(t, colors.ProgressGray, at(img, 135, 158))
	assert.Equal(t, colors.Transparent, at(img, 45, 100))
	assert.Equal(t, colors.Transparent, img.RGBAAt(200, 150))
	assert.Equal(t, red, at(img, 90, 158))

	imagex.Assert(t, img, "dial-90")
}

func TestDrawDisabled(t *testing.T) {
	d := testDial()
	d.SetEnabled(false)
	img := Image(d.Render(), 400, 222)
	assert.Equal(t, colors.DefaultBlueLight, at(img, 90, 158))
}

func TestDrawTicks(t *testing.T) {
	d := testDial()
	d.SetTickWidth(4, 4)
	img := Image(d.Render(), 400, 222)

	// ticks run from radius 170 to 180
	assert.Equal(t, colors.DefaultBlueLight, at(img, 15, 175))
	assert.Equal(t, colors.ProgressGray, at(img, 165, 175))
	assert.Equal(t, colors.Transparent, at(img, 15, 165))

	imagex.Assert(t, img, "dial-ticks")
}

func TestDrawLabels(t *testing.T) {
	img := Image(testDial().Render(), 400, 222)
	n := 0
	for y := 15; y < 35; y++ {
		for x := 185; x < 215; x++ {
			if img.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	assert.Positive(t, n)
}

func TestDrawDegenerate(t *testing.T) {
	d := protractor.New(protractor.DefaultConfig())
	d.Layout(10, 10, 1)
	assert.NotPanics(t, func() {
		Image(d.Render(), 10, 27)
	})
}
