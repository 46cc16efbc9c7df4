// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"
)

// Types determines the type of pointer event. Hosts translate their
// native mouse and touch streams into these four types, with positions
// already relative to the widget origin.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerDown happens when a mouse button or touch goes down.
	PointerDown

	// PointerMove happens when the pointer moves while it is down.
	PointerMove

	// PointerUp happens when the mouse button or touch is released.
	PointerUp

	// PointerCancel happens when the host aborts the gesture,
	// for example because a parent took over the pointer.
	PointerCancel

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{"UnknownType", "PointerDown", "PointerMove", "PointerUp", "PointerCancel"}

// typesShort are the names accepted in event scripts,
// in addition to the full names.
var typesShort = map[string]Types{
	"down":   PointerDown,
	"move":   PointerMove,
	"up":     PointerUp,
	"cancel": PointerCancel,
}

// String returns the string representation of this Types value.
func (i Types) String() string {
	if i < 0 || i >= TypesN {
		return fmt.Sprintf("Types(%d)", int32(i))
	}
	return typesNames[i]
}

// SetString sets the Types value from its string representation,
// which may be the full name or one of the short names down, move, up, cancel.
// Matching is case insensitive.
func (i *Types) SetString(s string) error {
	ls := strings.ToLower(s)
	if t, ok := typesShort[ls]; ok {
		*i = t
		return nil
	}
	for t, nm := range typesNames {
		if strings.ToLower(nm) == ls {
			*i = Types(t)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Types", s)
}

// Values returns all possible values for the type Types.
func (i Types) Values() []Types {
	return []Types{UnknownType, PointerDown, PointerMove, PointerUp, PointerCancel}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Types) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Types) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
