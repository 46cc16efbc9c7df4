// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

import (
	"strconv"

	"cogentcore.org/protractor/math32"
)

// Tick describes one tick position on the dial: either a plain
// tick segment or a text label.
type Tick struct {

	// Index is the position of the tick in the sequence.
	Index int

	// Value is the angle of the tick in degrees.
	Value int

	// Label is whether the tick is drawn as a text label
	// instead of a segment.
	Label bool

	// Start and End are the segment end points of a plain tick.
	Start, End math32.Vector2

	// Pos is the center of the text of a label tick.
	Pos math32.Vector2

	// Text is the text of a label tick.
	Text string
}

// BuildTicks returns the ticks of a dial with the given metrics and bounds.
// Ticks are generated every TickInterval degrees, walking the underside of
// the circle from 360 down to 180 so that the displayed values go from 0
// up to 180. The first tick is a label and then every TicksBetweenLabel+1-th.
// The result depends only on the metrics and bounds, never on the angle.
func BuildTicks(m Metrics, b Bounds) []Tick {
	interval := max(m.TickInterval, 1)
	between := int(m.TicksBetweenLabel)
	inner := b.Radius + m.TickOffset
	outer := inner + m.TickLength
	mid := inner + m.TickLength/2

	ticks := make([]Tick, 0, 180/interval+1)
	count := between
	for i := 360; i >= 180; i -= interval {
		v := 360 - i
		tk := Tick{Index: len(ticks), Value: v}
		if count == between {
			tk.Label = true
			tk.Text = strconv.Itoa(v)
			tk.Pos = AngleToPoint(float32(v), mid, b.Center)
			count = 0
		} else {
			tk.Start = AngleToPoint(float32(v), inner, b.Center)
			tk.End = AngleToPoint(float32(v), outer, b.Center)
			count++
		}
		ticks = append(ticks, tk)
	}
	return ticks
}
