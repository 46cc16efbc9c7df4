// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws a [protractor.DrawPlan] into an [image.RGBA]
// using an anti-aliasing vector rasterizer and the Go fonts.
package raster

import (
	"image"
	"image/color"
	"sync"

	"cogentcore.org/protractor/base/errors"
	"cogentcore.org/protractor/math32"
	"cogentcore.org/protractor/protractor"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/vector"
)

// goRegular is the parsed Go Regular font used for labels.
var goRegular = sync.OnceValue(func() *opentype.Font {
	return errors.Log1(opentype.Parse(goregular.TTF))
})

// Renderer draws dial plans into an image.
type Renderer struct {

	// Image is the image we are rendering to.
	Image *image.RGBA

	ras *vector.Rasterizer

	// faces are the label font faces by pixel size.
	faces map[float32]font.Face
}

// New returns a new renderer drawing into the given image.
func New(img *image.RGBA) *Renderer {
	return &Renderer{Image: img, ras: &vector.Rasterizer{}, faces: map[float32]font.Face{}}
}

// Draw draws the given plan into img.
func Draw(img *image.RGBA, plan *protractor.DrawPlan) {
	New(img).Draw(plan)
}

// Image returns a new transparent image of the given size
// with the given plan drawn into it.
func Image(plan *protractor.DrawPlan, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	Draw(img, plan)
	return img
}

// Draw draws the plan: background arc, progress arc, ticks,
// labels and then the thumb on top.
func (rs *Renderer) Draw(plan *protractor.DrawPlan) {
	pt := &plan.Paint
	arc := &plan.Arc
	if arc.Radius > 0 {
		rs.arc(arc.Center, arc.Radius, arc.Start, arc.Start+arc.Sweep, pt.ArcWidth, pt.RoundedEdges, pt.ArcColor)
		if arc.ProgressSweep > 0 {
			rs.arc(arc.Center, arc.Radius, arc.Start, arc.Start+arc.ProgressSweep, pt.ArcProgressWidth, pt.RoundedEdges, pt.ArcProgressColor)
		}
	}
	for _, tk := range plan.Ticks {
		if tk.Active {
			rs.line(tk.Start, tk.End, pt.TickProgressWidth, pt.TickProgressColor)
		} else {
			rs.line(tk.Start, tk.End, pt.TickWidth, pt.TickColor)
		}
	}
	for _, lb := range plan.Labels {
		clr := pt.TextColor
		if lb.Active {
			clr = pt.TextProgressColor
		}
		rs.text(lb.Pos, lb.Text, pt.TextSize, clr)
	}
	if plan.Thumb.Visible {
		sz := plan.Thumb.Size.MulScalar(0.5)
		rs.ellipse(plan.Thumb.Pos, sz.X, sz.Y, pt.ThumbColor)
	}
}

// start resets the rasterizer to the image size.
func (rs *Renderer) start() {
	sz := rs.Image.Bounds().Size()
	rs.ras.Reset(sz.X, sz.Y)
}

// fill fills the current path with the given color.
func (rs *Renderer) fill(clr color.RGBA) {
	if clr.A == 0 {
		return
	}
	rs.ras.Draw(rs.Image, rs.Image.Bounds(), image.NewUniform(clr), image.Point{})
}

func (rs *Renderer) moveTo(p math32.Vector2) { rs.ras.MoveTo(p.X, p.Y) }
func (rs *Renderer) lineTo(p math32.Vector2) { rs.ras.LineTo(p.X, p.Y) }

// arc fills a ring sector of the given stroke width centered on radius,
// between two dial angles in degrees. Round caps add a half disc at
// each end.
func (rs *Renderer) arc(c math32.Vector2, radius, from, to, width float32, round bool, clr color.RGBA) {
	if width <= 0 || to <= from {
		return
	}
	hw := width / 2
	inner := math32.Max(radius-hw, 0)
	outer := radius + hw
	steps := max(int(math32.Ceil(to-from)), 1)
	step := (to - from) / float32(steps)

	rs.start()
	rs.moveTo(protractor.AngleToPoint(from, outer, c))
	for i := 1; i <= steps; i++ {
		rs.lineTo(protractor.AngleToPoint(from+float32(i)*step, outer, c))
	}
	for i := steps; i >= 0; i-- {
		rs.lineTo(protractor.AngleToPoint(from+float32(i)*step, inner, c))
	}
	rs.ras.ClosePath()
	rs.fill(clr)

	if round {
		rs.ellipse(protractor.AngleToPoint(from, radius, c), hw, hw, clr)
		rs.ellipse(protractor.AngleToPoint(to, radius, c), hw, hw, clr)
	}
}

// line fills a segment from a to b of the given width with butt ends.
func (rs *Renderer) line(a, b math32.Vector2, width float32, clr color.RGBA) {
	d := b.Sub(a)
	l := d.Length()
	if width <= 0 || l == 0 {
		return
	}
	n := math32.Vec2(-d.Y, d.X).MulScalar(width / (2 * l))
	rs.start()
	rs.moveTo(a.Add(n))
	rs.lineTo(b.Add(n))
	rs.lineTo(b.Sub(n))
	rs.lineTo(a.Sub(n))
	rs.ras.ClosePath()
	rs.fill(clr)
}

// ellipse fills an ellipse with the given center and radii.
func (rs *Renderer) ellipse(c math32.Vector2, rx, ry float32, clr color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	const steps = 64
	rs.start()
	rs.moveTo(c.Add(math32.Vec2(rx, 0)))
	for i := 1; i < steps; i++ {
		s, co := math32.Sincos(2 * math32.Pi * float32(i) / steps)
		rs.lineTo(c.Add(math32.Vec2(rx*co, ry*s)))
	}
	rs.ras.ClosePath()
	rs.fill(clr)
}

// face returns the label font face for the given pixel size.
func (rs *Renderer) face(size float32) font.Face {
	if f, ok := rs.faces[size]; ok {
		return f
	}
	if goRegular() == nil {
		return nil
	}
	f := errors.Log1(opentype.NewFace(goRegular(), &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	}))
	rs.faces[size] = f
	return f
}

// text draws text centered on the given position.
func (rs *Renderer) text(pos math32.Vector2, txt string, size float32, clr color.RGBA) {
	if size <= 0 || txt == "" || clr.A == 0 {
		return
	}
	face := rs.face(size)
	if face == nil {
		return
	}
	width := font.MeasureString(face, txt)
	dot := pos.ToFixed()
	dot.X -= width / 2
	dot.Y += face.Metrics().CapHeight / 2
	d := &font.Drawer{
		Dst:  rs.Image,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(txt)
}
