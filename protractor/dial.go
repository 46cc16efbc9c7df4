// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protractor provides a semicircular dial widget engine: an arc
// with ticks and angle labels and a draggable thumb that reports an
// angle between 0 and 180 degrees.
//
// A [Dial] does not draw anything itself. A host lays it out with
// [Dial.Layout], feeds it pointer events with [Dial.HandleEvent], and
// draws the [DrawPlan] returned by [Dial.Render].
package protractor

import (
	"image/color"
	"log/slog"

	"cogentcore.org/protractor/colors"
	"cogentcore.org/protractor/events"
	"cogentcore.org/protractor/math32"
)

// Dial is a semicircular angle picker. It is not safe for concurrent
// use: hosts must serialize all calls, as a UI event loop does.
type Dial struct {
	name string
	cfg  Config

	// metrics are the config sizes in pixels for the current density.
	metrics Metrics

	density       float32
	width, height float32

	bounds   Bounds
	ticks    []Tick
	thumbPos math32.Vector2

	// angle is the current angle in [0, 180].
	angle   int
	enabled bool

	touch touchSession

	listener Listener
	handlers events.Listeners

	needsRender bool
}

// touchSession is the state of the pointer interaction.
// It is only non-idle between a pointer down and the matching up.
type touchSession struct {
	state TouchStates
}

// New returns a new dial with the given config.
// Out of range values in the config are clamped.
func New(cfg Config) *Dial {
	cfg.Clamp()
	d := &Dial{cfg: cfg, density: 1}
	d.angle = cfg.Angle
	d.enabled = cfg.Enabled
	d.init()
	d.update()
	return d
}

func (d *Dial) init() {
	d.handlers.Add(events.PointerDown, func(e events.Event) {
		if d.pointerDown(e.Pos()) {
			e.SetHandled()
		}
	})
	d.handlers.Add(events.PointerMove, func(e events.Event) {
		if d.pointerMove(e.Pos()) {
			e.SetHandled()
		}
	})
	up := func(e events.Event) {
		if d.pointerUp() {
			e.SetHandled()
		}
	}
	d.handlers.Add(events.PointerUp, up)
	d.handlers.Add(events.PointerCancel, up)
}

// String returns the name of the dial.
func (d *Dial) String() string {
	if d.name == "" {
		return "Dial"
	}
	return d.name
}

// Name returns the name used for the dial in logs.
func (d *Dial) Name() string { return d.name }

// SetName sets the name used for the dial in logs.
func (d *Dial) SetName(name string) *Dial {
	d.name = name
	return d
}

// Layout lays out the dial in the given available size at the given
// display density (pixels per dp) and returns its measured size.
// A non-positive density is treated as 1.
func (d *Dial) Layout(width, height, density float32) (mw, mh float32) {
	if density <= 0 {
		density = 1
	}
	d.width, d.height, d.density = width, height, density
	d.update()
	slog.Debug("Dial Layout", "dial", d, "size", d.bounds.Size, "radius", d.bounds.Radius)
	return d.bounds.Size.X, d.bounds.Size.Y
}

// update recomputes everything derived from the config and the last
// layout. It must be called after any change to either.
func (d *Dial) update() {
	d.metrics = d.cfg.Dots(d.density)
	m := &d.metrics
	d.bounds = ComputeBounds(d.width, d.height, m.TickOffset, m.TickLength, m.Density, m.Margin)
	d.ticks = BuildTicks(d.metrics, d.bounds)
	d.thumbPos = ThumbPosition(d.angle, d.bounds.Radius, d.bounds.Center)
	d.needsRender = true
}

// Bounds returns the geometry of the last layout.
func (d *Dial) Bounds() Bounds { return d.bounds }

// Ticks returns the ticks of the last layout.
func (d *Dial) Ticks() []Tick { return d.ticks }

// ThumbPos returns the center of the thumb.
func (d *Dial) ThumbPos() math32.Vector2 { return d.thumbPos }

// Angle returns the current angle in degrees.
func (d *Dial) Angle() int { return d.angle }

// SetAngle sets the angle, clamped to [0, 180], and notifies the
// listener with fromUser false. It does not affect a drag in progress.
func (d *Dial) SetAngle(angle int) {
	d.setAngle(angle, false)
}

// setAngle sets the angle and notifies the listener. Pointer driven
// changes are only sent when the angle actually changes.
func (d *Dial) setAngle(angle int, fromUser bool) {
	angle = clampAngle(angle)
	if fromUser && angle == d.angle {
		return
	}
	d.angle = angle
	d.thumbPos = ThumbPosition(angle, d.bounds.Radius, d.bounds.Center)
	d.needsRender = true
	if d.listener != nil {
		d.listener.ProgressChanged(d, angle, fromUser)
	}
}

// Listener returns the current listener, or nil.
func (d *Dial) Listener() Listener { return d.listener }

// SetListener sets the listener, replacing any previous one.
// A nil listener unregisters.
func (d *Dial) SetListener(l Listener) {
	d.listener = l
}

// IsEnabled returns whether the dial handles pointer events.
func (d *Dial) IsEnabled() bool { return d.enabled }

// SetEnabled sets whether the dial handles pointer events.
// Disabling the dial during a drag ends the drag.
func (d *Dial) SetEnabled(enabled bool) *Dial {
	if !enabled {
		d.endTouch()
	}
	d.enabled = enabled
	d.needsRender = true
	return d
}

// TouchState returns the state of the pointer interaction.
func (d *Dial) TouchState() TouchStates { return d.touch.state }

// IsDragging returns whether a drag is in progress.
func (d *Dial) IsDragging() bool { return d.touch.state == TouchDragging }

// NeedsRender returns whether the dial changed since the last [Dial.Render].
func (d *Dial) NeedsRender() bool { return d.needsRender }

// HandleEvent processes a pointer event and returns whether it was
// handled. A disabled dial handles nothing.
func (d *Dial) HandleEvent(e events.Event) bool {
	if !d.enabled || e.IsHandled() {
		return false
	}
	return d.handlers.Call(e)
}

func (d *Dial) pointerDown(p math32.Vector2) bool {
	if d.touch.state == TouchDragging {
		d.endTouch()
	}
	if d.ignoreTouch(p) {
		d.touch.state = TouchIgnored
		slog.Debug("Dial touch ignored", "dial", d, "pos", p, "dist", p.DistanceTo(d.bounds.Center))
		return false
	}
	d.touch.state = TouchDragging
	if d.listener != nil {
		d.listener.StartTrackingTouch(d)
	}
	d.dragTo(p)
	return true
}

func (d *Dial) pointerMove(p math32.Vector2) bool {
	switch d.touch.state {
	case TouchIdle:
		return false
	case TouchDragging:
		if !d.ignoreTouch(p) {
			d.dragTo(p)
		}
	}
	return true
}

func (d *Dial) pointerUp() bool {
	if d.touch.state == TouchIdle {
		return false
	}
	d.endTouch()
	return true
}

// endTouch ends the touch session, notifying the listener if
// a drag was in progress.
func (d *Dial) endTouch() {
	dragging := d.touch.state == TouchDragging
	d.touch = touchSession{}
	if dragging && d.listener != nil {
		d.listener.StopTrackingTouch(d)
	}
}

func (d *Dial) dragTo(p math32.Vector2) {
	a := math32.Round(PointToAngle(p, d.bounds.Center))
	d.setAngle(int(a), true)
}

// ignoreRadius returns the radius of the dead zone around the center.
func (d *Dial) ignoreRadius() float32 {
	r := d.bounds.Radius
	if d.cfg.TouchInside {
		return r / 1.5
	}
	thumbHalf := math32.Min(d.metrics.ThumbWidth, d.metrics.ThumbHeight) / 2
	return math32.Max(r-thumbHalf, 0)
}

// ignoreTouch returns whether a touch at p is outside the touchable area.
// Without TouchInside, touches beyond the ticks are ignored too.
// Nothing is touchable in a degenerate layout.
func (d *Dial) ignoreTouch(p math32.Vector2) bool {
	r := d.bounds.Radius
	if r <= 0 {
		return true
	}
	dist := p.DistanceTo(d.bounds.Center)
	if dist < d.ignoreRadius() {
		return true
	}
	if !d.cfg.TouchInside && dist > r+d.metrics.TickLength+d.metrics.TickOffset {
		return true
	}
	return false
}

// Render returns the draw plan for the current state.
func (d *Dial) Render() *DrawPlan {
	b := d.bounds
	p := &DrawPlan{
		Size: b.Size,
		Arc: ArcPlan{
			Rect:          b.Rect,
			Center:        b.Center,
			Radius:        b.Radius,
			Start:         0,
			Sweep:         MaxAngle,
			ProgressSweep: float32(d.angle),
		},
		Thumb: ThumbPlan{
			Pos:     d.thumbPos,
			Size:    math32.Vec2(d.metrics.ThumbWidth, d.metrics.ThumbHeight),
			Visible: d.enabled,
		},
		Paint: paints(&d.cfg, d.metrics),
	}
	for _, t := range d.ticks {
		active := t.Value <= d.angle
		if t.Label {
			p.Labels = append(p.Labels, Label{Pos: t.Pos, Text: t.Text, Value: t.Value, Active: active})
			continue
		}
		p.Ticks = append(p.Ticks, TickMark{Start: t.Start, End: t.End, Value: t.Value, Active: active})
	}
	d.needsRender = false
	return p
}

// Config returns the current config, including the current
// angle and enabled state.
func (d *Dial) Config() Config {
	c := d.cfg
	c.Angle = d.angle
	c.Enabled = d.enabled
	return c
}

// SetConfig replaces the visual parameters of the dial with those of
// the given config. The angle and enabled state are kept.
func (d *Dial) SetConfig(cfg Config) *Dial {
	cfg.Clamp()
	d.cfg = cfg
	d.update()
	return d
}

// ArcWidth returns the stroke width of the background arc in dp.
func (d *Dial) ArcWidth() float32 { return d.cfg.ArcWidth }

// SetArcWidth sets the stroke width of the background arc in dp.
func (d *Dial) SetArcWidth(w float32) *Dial {
	d.cfg.ArcWidth = math32.Max(w, 0)
	d.update()
	return d
}

// ArcProgressWidth returns the stroke width of the progress arc in dp.
func (d *Dial) ArcProgressWidth() float32 { return d.cfg.ArcProgressWidth }

// SetArcProgressWidth sets the stroke width of the progress arc in dp.
func (d *Dial) SetArcProgressWidth(w float32) *Dial {
	d.cfg.ArcProgressWidth = math32.Max(w, 0)
	d.update()
	return d
}

// RoundedEdges returns whether the arcs have round caps.
func (d *Dial) RoundedEdges() bool { return d.cfg.RoundedEdges }

// SetRoundedEdges sets whether the arcs have round caps.
func (d *Dial) SetRoundedEdges(rounded bool) *Dial {
	d.cfg.RoundedEdges = rounded
	d.update()
	return d
}

// AngleTextSize returns the label text size in dp.
func (d *Dial) AngleTextSize() float32 { return d.cfg.AngleTextSize }

// SetAngleTextSize sets the label text size in dp.
func (d *Dial) SetAngleTextSize(size float32) *Dial {
	d.cfg.AngleTextSize = math32.Max(size, 0)
	d.update()
	return d
}

// TickOffset returns the gap between the arc and the ticks in dp.
func (d *Dial) TickOffset() float32 { return d.cfg.TickOffset }

// SetTickOffset sets the gap between the arc and the ticks in dp.
// This changes the layout.
func (d *Dial) SetTickOffset(offset float32) *Dial {
	d.cfg.TickOffset = math32.Max(offset, 0)
	d.update()
	return d
}

// TickLength returns the tick length in dp.
func (d *Dial) TickLength() float32 { return d.cfg.TickLength }

// SetTickLength sets the tick length in dp. This changes the layout.
func (d *Dial) SetTickLength(length float32) *Dial {
	d.cfg.TickLength = math32.Max(length, 0)
	d.update()
	return d
}

// SetTickWidth sets the stroke widths of the ticks in dp,
// outside and within the progress.
func (d *Dial) SetTickWidth(width, progressWidth float32) *Dial {
	d.cfg.TickWidth = math32.Max(width, 0)
	d.cfg.TickProgressWidth = math32.Max(progressWidth, 0)
	d.update()
	return d
}

// TickInterval returns the number of degrees between ticks.
func (d *Dial) TickInterval() int { return d.cfg.TickInterval }

// SetTickInterval sets the number of degrees between ticks.
// Values below 1 are clamped to 1.
func (d *Dial) SetTickInterval(interval int) *Dial {
	d.cfg.TickInterval = max(interval, 1)
	d.update()
	return d
}

// TicksBetweenLabel returns the number of plain ticks between labels.
func (d *Dial) TicksBetweenLabel() TicksBetweenLabel { return d.cfg.TicksBetweenLabel }

// SetTicksBetweenLabel sets the number of plain ticks between labels.
func (d *Dial) SetTicksBetweenLabel(n TicksBetweenLabel) *Dial {
	d.cfg.TicksBetweenLabel = math32.Clamp(n, TicksBetweenLabelZero, TicksBetweenLabelThree)
	d.update()
	return d
}

// TouchInside returns whether touches inside the arc start a drag.
func (d *Dial) TouchInside() bool { return d.cfg.TouchInside }

// SetTouchInside sets whether touches inside the arc start a drag.
// It also applies to the moves of a drag in progress.
func (d *Dial) SetTouchInside(inside bool) *Dial {
	d.cfg.TouchInside = inside
	return d
}

// SetThumbSize sets the intrinsic size of the thumb in dp.
func (d *Dial) SetThumbSize(width, height float32) *Dial {
	d.cfg.ThumbWidth = math32.Max(width, 0)
	d.cfg.ThumbHeight = math32.Max(height, 0)
	d.update()
	return d
}

// SetArcColor sets the color of the background arc.
func (d *Dial) SetArcColor(c color.Color) *Dial {
	d.cfg.ArcColor = colors.C(c)
	d.needsRender = true
	return d
}

// SetArcProgressColor sets the color of the progress arc.
func (d *Dial) SetArcProgressColor(c color.Color) *Dial {
	d.cfg.ArcProgressColor = colors.C(c)
	d.needsRender = true
	return d
}

// SetTextColor sets the label colors outside and within the progress.
func (d *Dial) SetTextColor(c, progress color.Color) *Dial {
	d.cfg.TextColor = colors.C(c)
	d.cfg.TextProgressColor = colors.C(progress)
	d.needsRender = true
	return d
}

// SetTickColor sets the tick colors outside and within the progress.
func (d *Dial) SetTickColor(c, progress color.Color) *Dial {
	d.cfg.TickColor = colors.C(c)
	d.cfg.TickProgressColor = colors.C(progress)
	d.needsRender = true
	return d
}

// SetThumbColor sets the color of the thumb.
func (d *Dial) SetThumbColor(c color.Color) *Dial {
	d.cfg.ThumbColor = colors.C(c)
	d.needsRender = true
	return d
}
