// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

import "cogentcore.org/protractor/math32"

// DrawPlan is everything a renderer needs to draw a [Dial] in its
// current state. It is a snapshot: later changes to the dial do not
// modify a plan that was already returned.
type DrawPlan struct {

	// Size is the measured size of the dial.
	Size math32.Vector2

	// Arc is the background and progress arc.
	Arc ArcPlan

	// Ticks are the plain tick segments.
	Ticks []TickMark

	// Labels are the angle labels.
	Labels []Label

	// Thumb is the draggable indicator.
	Thumb ThumbPlan

	// Paint has the resolved widths and colors.
	Paint Paints
}

// ArcPlan describes the arc of a [DrawPlan]. Angles are in degrees
// in the dial orientation: 0 on the left, sweeping over the top.
type ArcPlan struct {
	Rect   math32.Box2
	Center math32.Vector2
	Radius float32

	// Start and Sweep are the background arc, always 0 and 180.
	Start, Sweep float32

	// ProgressSweep is the current angle.
	ProgressSweep float32
}

// TickMark is a plain tick segment of a [DrawPlan].
type TickMark struct {
	Start, End math32.Vector2
	Value      int

	// Active is whether the tick is within the progress.
	Active bool
}

// Label is an angle label of a [DrawPlan].
type Label struct {

	// Pos is the center of the text.
	Pos    math32.Vector2
	Text   string
	Value  int
	Active bool
}

// ThumbPlan is the thumb of a [DrawPlan].
type ThumbPlan struct {

	// Pos is the center of the thumb.
	Pos  math32.Vector2
	Size math32.Vector2

	// Visible is false when the dial is disabled.
	Visible bool
}

// NumActive returns the number of ticks and labels within the progress.
func (p *DrawPlan) NumActive() int {
	n := 0
	for _, t := range p.Ticks {
		if t.Active {
			n++
		}
	}
	for _, l := range p.Labels {
		if l.Active {
			n++
		}
	}
	return n
}
