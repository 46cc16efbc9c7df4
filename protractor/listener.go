// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

// Listener receives the change notifications of a [Dial].
// All methods are called synchronously, before the call that
// caused the change returns.
type Listener interface {

	// ProgressChanged is called when the angle changes.
	// fromUser is true when the change came from a pointer drag.
	// A drag move that leaves the angle unchanged is not reported.
	ProgressChanged(d *Dial, angle int, fromUser bool)

	// StartTrackingTouch is called when a drag starts.
	StartTrackingTouch(d *Dial)

	// StopTrackingTouch is called when a drag ends.
	StopTrackingTouch(d *Dial)
}

// ListenerFuncs is a [Listener] built from optional functions.
// Nil functions are skipped.
type ListenerFuncs struct {
	OnProgressChanged    func(d *Dial, angle int, fromUser bool)
	OnStartTrackingTouch func(d *Dial)
	OnStopTrackingTouch  func(d *Dial)
}

func (lf *ListenerFuncs) ProgressChanged(d *Dial, angle int, fromUser bool) {
	if lf.OnProgressChanged != nil {
		lf.OnProgressChanged(d, angle, fromUser)
	}
}

func (lf *ListenerFuncs) StartTrackingTouch(d *Dial) {
	if lf.OnStartTrackingTouch != nil {
		lf.OnStartTrackingTouch(d)
	}
}

func (lf *ListenerFuncs) StopTrackingTouch(d *Dial) {
	if lf.OnStopTrackingTouch != nil {
		lf.OnStopTrackingTouch(d)
	}
}
