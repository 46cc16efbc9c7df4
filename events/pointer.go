// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/protractor/math32"
)

// Event is the interface for the events delivered to a widget.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Pos returns the position of the event, relative to the widget origin.
	Pos() math32.Vector2

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so the host should not propagate it further.
	SetHandled()
}

// Pointer is a pointer event: a mouse cursor or a touch object.
type Pointer struct {
	// Typ is the type of the event.
	Typ Types `toml:"type" yaml:"type"`

	// Where is the event location, relative to the widget origin.
	Where math32.Vector2 `toml:"-" yaml:"-"`

	// X and Y are the scripted coordinates, copied into Where by [Pointer.Normalize].
	X float32 `toml:"x" yaml:"x"`
	Y float32 `toml:"y" yaml:"y"`

	handled bool
}

// NewPointer returns a new pointer event of the given type at the given position.
func NewPointer(typ Types, x, y float32) *Pointer {
	return &Pointer{Typ: typ, Where: math32.Vec2(x, y), X: x, Y: y}
}

// Normalize copies the scripted X and Y coordinates into Where.
// It is used after decoding events from a config file.
func (ev *Pointer) Normalize() {
	ev.Where = math32.Vec2(ev.X, ev.Y)
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Pos: %v}", ev.Typ, ev.Where)
}

func (ev *Pointer) Type() Types         { return ev.Typ }
func (ev *Pointer) Pos() math32.Vector2 { return ev.Where }
func (ev *Pointer) IsHandled() bool     { return ev.handled }
func (ev *Pointer) SetHandled()         { ev.handled = true }
