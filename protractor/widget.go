// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

import (
	"cogentcore.org/protractor/events"
)

// Widget is the capability set a host needs to drive a dial.
type Widget interface {
	Layout(width, height, density float32) (mw, mh float32)
	HandleEvent(e events.Event) bool
	Render() *DrawPlan
	SetAngle(angle int)
	Angle() int
	SetListener(l Listener)
}

var _ Widget = (*Dial)(nil)
