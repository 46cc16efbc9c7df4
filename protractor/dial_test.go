// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

import (
	"fmt"
	"image/color"
	"testing"

	"cogentcore.org/protractor/events"
	"cogentcore.org/protractor/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

func (r *recorder) ProgressChanged(d *Dial, angle int, fromUser bool) {
	r.calls = append(r.calls, fmt.Sprintf("progress %d %v", angle, fromUser))
}

func (r *recorder) StartTrackingTouch(d *Dial) { r.calls = append(r.calls, "start") }
func (r *recorder) StopTrackingTouch(d *Dial)  { r.calls = append(r.calls, "stop") }

// newTestDial returns a default dial laid out in 400x400 at density 1:
// radius 158 centered at (200, 200).
func newTestDial(t *testing.T) (*Dial, *recorder) {
	d := New(DefaultConfig()).SetName("test")
	mw, mh := d.Layout(400, 400, 1)
	require.Equal(t, float32(400), mw)
	require.Equal(t, float32(222), mh)
	r := &recorder{}
	d.SetListener(r)
	return d, r
}

func send(d *Dial, typ events.Types, x, y float32) bool {
	return d.HandleEvent(events.NewPointer(typ, x, y))
}

func TestDialDrag(t *testing.T) {
	d, r := newTestDial(t)

	// down in the dead zone is not accepted
	assert.False(t, send(d, events.PointerDown, 200, 200))
	assert.Equal(t, TouchIgnored, d.TouchState())
	assert.True(t, send(d, events.PointerMove, 200, 42))
	assert.Equal(t, 0, d.Angle())
	assert.True(t, send(d, events.PointerUp, 200, 42))
	assert.Equal(t, TouchIdle, d.TouchState())
	assert.Empty(t, r.calls)

	// down on the arc at angle 0, drag to the top, release
	assert.True(t, send(d, events.PointerDown, 42, 200))
	assert.True(t, d.IsDragging())
	assert.True(t, send(d, events.PointerMove, 200, 42))
	assert.Equal(t, 90, d.Angle())
	assert.True(t, send(d, events.PointerUp, 200, 42))
	assert.Equal(t, TouchIdle, d.TouchState())
	assert.Equal(t, []string{"start", "progress 90 true", "stop"}, r.calls)
	assert.Equal(t, math32.Vec2(200, 42), math32.FromPoint(d.ThumbPos().ToPoint()))
}

func TestDialDragDown(t *testing.T) {
	d, r := newTestDial(t)

	// the down is processed as a move
	assert.True(t, send(d, events.PointerDown, 358, 200))
	assert.Equal(t, 180, d.Angle())
	assert.Equal(t, []string{"start", "progress 180 true"}, r.calls)

	// moves that do not change the angle are not reported
	send(d, events.PointerMove, 358, 201)
	send(d, events.PointerMove, 358, 260)
	assert.Len(t, r.calls, 2)

	// a move into the dead zone is dropped but the drag continues
	send(d, events.PointerMove, 210, 200)
	assert.Equal(t, 180, d.Angle())
	assert.True(t, d.IsDragging())

	assert.True(t, send(d, events.PointerCancel, 0, 0))
	assert.Equal(t, []string{"start", "progress 180 true", "stop"}, r.calls)

	// events without a session are not handled
	assert.False(t, send(d, events.PointerMove, 42, 200))
	assert.False(t, send(d, events.PointerUp, 42, 200))
}

func TestDialTouchOutside(t *testing.T) {
	d, r := newTestDial(t)
	d.SetTouchInside(false)

	// ignore radius is 158-12, outer bound is 158+10+12
	assert.False(t, send(d, events.PointerDown, 200, 100))
	send(d, events.PointerUp, 200, 100)
	assert.False(t, send(d, events.PointerDown, 10, 200))
	send(d, events.PointerUp, 10, 200)
	assert.Empty(t, r.calls)

	assert.True(t, send(d, events.PointerDown, 50, 200))
	assert.Equal(t, []string{"start"}, r.calls)
	send(d, events.PointerMove, 200, 21)
	assert.Equal(t, 90, d.Angle())
	send(d, events.PointerMove, 200, 10)
	send(d, events.PointerMove, 300, 200)
	assert.Equal(t, 90, d.Angle())
	send(d, events.PointerUp, 300, 200)
	assert.Equal(t, []string{"start", "progress 90 true", "stop"}, r.calls)
}

func TestDialDeadZoneDuringDrag(t *testing.T) {
	d, r := newTestDial(t)
	assert.True(t, send(d, events.PointerDown, 42, 200))

	// radius 358 centered at (400, 400), dead zone 358/1.5
	d.Layout(800, 800, 1)
	assert.True(t, send(d, events.PointerMove, 400, 250))
	assert.Equal(t, 0, d.Angle())
	assert.True(t, d.IsDragging())
	send(d, events.PointerUp, 400, 250)
	assert.Equal(t, []string{"start", "stop"}, r.calls)

	d, r = newTestDial(t)
	assert.True(t, send(d, events.PointerDown, 42, 200))

	// dead zone grows from 158/1.5 to 158-12
	d.SetTouchInside(false)
	assert.True(t, send(d, events.PointerMove, 200, 80))
	assert.Equal(t, 0, d.Angle())
	send(d, events.PointerMove, 200, 21)
	assert.Equal(t, 90, d.Angle())
	send(d, events.PointerUp, 200, 21)
	assert.Equal(t, []string{"start", "progress 90 true", "stop"}, r.calls)
}

func TestDialSetAngle(t *testing.T) {
	d, r := newTestDial(t)
	d.SetAngle(90)
	assert.Equal(t, 90, d.Angle())
	assert.Equal(t, []string{"progress 90 false"}, r.calls)
	assert.Equal(t, TouchIdle, d.TouchState())
	p := d.ThumbPos()
	assert.InDelta(t, 200, p.X, 1e-3)
	assert.InDelta(t, 42, p.Y, 1e-3)

	r.calls = nil
	d.SetAngle(-10)
	assert.Equal(t, 0, d.Angle())
	d.SetAngle(300)
	assert.Equal(t, 180, d.Angle())
	d.SetAngle(180)
	assert.Equal(t, []string{"progress 0 false", "progress 180 false", "progress 180 false"}, r.calls)

	// a drag in progress is not affected
	send(d, events.PointerDown, 42, 200)
	d.SetAngle(45)
	assert.True(t, d.IsDragging())
	assert.Equal(t, 45, d.Angle())
}

func TestDialListener(t *testing.T) {
	d, r := newTestDial(t)
	var got []int
	d.SetListener(&ListenerFuncs{OnProgressChanged: func(d *Dial, angle int, fromUser bool) {
		got = append(got, angle)
	}})
	d.SetAngle(10)
	send(d, events.PointerDown, 42, 200)
	send(d, events.PointerUp, 42, 200)
	assert.Equal(t, []int{10, 0}, got)
	assert.Empty(t, r.calls)

	d.SetListener(nil)
	assert.Nil(t, d.Listener())
	assert.NotPanics(t, func() {
		d.SetAngle(20)
		send(d, events.PointerDown, 42, 200)
		send(d, events.PointerUp, 42, 200)
	})
}

func TestDialDisabled(t *testing.T) {
	d, r := newTestDial(t)
	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
	assert.False(t, send(d, events.PointerDown, 42, 200))
	assert.Equal(t, TouchIdle, d.TouchState())
	assert.Empty(t, r.calls)
	assert.False(t, d.Render().Thumb.Visible)

	d.SetEnabled(true)
	assert.True(t, d.Render().Thumb.Visible)
	send(d, events.PointerDown, 42, 200)
	d.SetEnabled(false)
	assert.Equal(t, TouchIdle, d.TouchState())
	assert.Equal(t, []string{"start", "stop"}, r.calls)

	cfg := DefaultConfig()
	cfg.Enabled = false
	assert.False(t, New(cfg).IsEnabled())
}

func TestDialRenderInvariant(t *testing.T) {
	d, _ := newTestDial(t)
	p0 := d.Render()
	assert.False(t, d.NeedsRender())
	d.SetAngle(90)
	assert.True(t, d.NeedsRender())
	p90 := d.Render()

	require.Len(t, p0.Ticks, 8)
	require.Len(t, p0.Labels, 5)
	for i := range p0.Ticks {
		assert.Equal(t, p0.Ticks[i].Start, p90.Ticks[i].Start)
		assert.Equal(t, p0.Ticks[i].End, p90.Ticks[i].End)
	}
	for i := range p0.Labels {
		assert.Equal(t, p0.Labels[i].Pos, p90.Labels[i].Pos)
		assert.Equal(t, p0.Labels[i].Text, p90.Labels[i].Text)
	}
	assert.Equal(t, 1, p0.NumActive())
	assert.Equal(t, 7, p90.NumActive())
	assert.True(t, p90.Labels[2].Active)
	assert.False(t, p90.Labels[3].Active)

	assert.Equal(t, p0.Arc.Rect, p90.Arc.Rect)
	assert.Equal(t, float32(0), p90.Arc.Start)
	assert.Equal(t, float32(180), p90.Arc.Sweep)
	assert.Equal(t, float32(90), p90.Arc.ProgressSweep)
	assert.Equal(t, math32.Vec2(24, 24), p90.Thumb.Size)
	assert.Equal(t, math32.Vec2(400, 222), p90.Size)
}

func TestDialSetters(t *testing.T) {
	d, _ := newTestDial(t)
	d.SetTickLength(20)
	assert.Equal(t, float32(148), d.Bounds().Radius)
	assert.Equal(t, float32(232), d.Bounds().Size.Y)

	d.SetTickOffset(2).SetTickLength(0)
	assert.Equal(t, float32(178), d.Bounds().Radius)

	d.SetTickInterval(0)
	assert.Equal(t, 1, d.TickInterval())
	assert.Len(t, d.Ticks(), 181)

	d.SetTickInterval(15).SetTicksBetweenLabel(TicksBetweenLabelZero)
	assert.Equal(t, TicksBetweenLabelZero, d.TicksBetweenLabel())
	assert.Empty(t, d.Render().Ticks)
	assert.Len(t, d.Render().Labels, 13)

	d.SetArcWidth(-1).SetArcProgressWidth(4).SetRoundedEdges(false).SetAngleTextSize(20)
	p := d.Render()
	assert.Equal(t, float32(0), p.Paint.ArcWidth)
	assert.Equal(t, float32(4), p.Paint.ArcProgressWidth)
	assert.False(t, p.Paint.RoundedEdges)
	assert.Equal(t, float32(20), p.Paint.TextSize)

	red := color.RGBA{255, 0, 0, 255}
	d.SetArcColor(red).SetThumbColor(red).SetTickColor(red, red).SetTextColor(red, red).SetArcProgressColor(red)
	assert.True(t, d.NeedsRender())
	p = d.Render()
	assert.Equal(t, red, p.Paint.ArcColor)
	assert.Equal(t, red, p.Paint.ThumbColor)
	assert.Equal(t, red, p.Paint.TickProgressColor)
	assert.Equal(t, red, p.Paint.TextColor)

	d.SetThumbSize(30, 10)
	assert.Equal(t, math32.Vec2(30, 10), d.Render().Thumb.Size)
}

func TestDialDensity(t *testing.T) {
	d := New(DefaultConfig())
	mw, mh := d.Layout(400, 400, 2)
	assert.Equal(t, float32(400), mw)
	assert.Equal(t, float32(244), mh)
	assert.Equal(t, float32(116), d.Bounds().Radius)
	p := d.Render()
	assert.Equal(t, float32(4), p.Paint.ArcWidth)
	assert.Equal(t, float32(24), p.Paint.TextSize)
	assert.Equal(t, math32.Vec2(48, 48), p.Thumb.Size)
}

func TestDialDegenerate(t *testing.T) {
	d := New(DefaultConfig())
	p := d.Render()
	assert.Equal(t, float32(0), p.Arc.Radius)
	assert.False(t, d.HandleEvent(events.NewPointer(events.PointerDown, 0, 0)))

	mw, mh := d.Layout(10, 10, 1)
	assert.Equal(t, float32(10), mw)
	assert.Equal(t, float32(27), mh)
	assert.False(t, d.HandleEvent(events.NewPointer(events.PointerDown, 5, 5)))
	p = d.Render()
	assert.Equal(t, float32(0), p.Arc.Radius)
	assert.Len(t, p.Ticks, 8)
}

func TestDialConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Angle = 400
	cfg.TickInterval = -3
	d := New(cfg)
	assert.Equal(t, 180, d.Angle())
	assert.Equal(t, 1, d.Config().TickInterval)

	d.SetAngle(30)
	nc := DefaultConfig()
	nc.TickLength = 20
	nc.Angle = 90
	d.SetConfig(nc)
	assert.Equal(t, 30, d.Angle())
	assert.Equal(t, 30, d.Config().Angle)
	assert.Equal(t, float32(20), d.TickLength())
}

func TestDialHandledEvent(t *testing.T) {
	d, r := newTestDial(t)
	e := events.NewPointer(events.PointerDown, 42, 200)
	e.SetHandled()
	assert.False(t, d.HandleEvent(e))
	assert.Empty(t, r.calls)
	assert.Equal(t, "test", d.String())
}
