// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

import (
	"fmt"
	"strconv"
	"strings"
)

// TicksBetweenLabel is the number of unlabeled ticks drawn
// between two labeled ticks.
type TicksBetweenLabel int32 //enums:enum

const (
	TicksBetweenLabelZero TicksBetweenLabel = iota
	TicksBetweenLabelOne
	TicksBetweenLabelTwo
	TicksBetweenLabelThree

	// TicksBetweenLabelN is the number of valid values.
	TicksBetweenLabelN
)

var ticksBetweenLabelNames = [...]string{"Zero", "One", "Two", "Three"}

// String returns the string representation of this TicksBetweenLabel value.
func (i TicksBetweenLabel) String() string {
	if i < 0 || i >= TicksBetweenLabelN {
		return strconv.Itoa(int(i))
	}
	return ticksBetweenLabelNames[i]
}

// SetString sets the TicksBetweenLabel value from its name
// (case insensitive) or its decimal value.
func (i *TicksBetweenLabel) SetString(s string) error {
	for v, nm := range ticksBetweenLabelNames {
		if strings.EqualFold(nm, s) {
			*i = TicksBetweenLabel(v)
			return nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < int(TicksBetweenLabelN) {
		*i = TicksBetweenLabel(n)
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type TicksBetweenLabel", s)
}

// Values returns all possible values for the type TicksBetweenLabel.
func (i TicksBetweenLabel) Values() []TicksBetweenLabel {
	return []TicksBetweenLabel{TicksBetweenLabelZero, TicksBetweenLabelOne, TicksBetweenLabelTwo, TicksBetweenLabelThree}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i TicksBetweenLabel) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *TicksBetweenLabel) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// TouchStates are the states of the pointer interaction with a [Dial].
type TouchStates int32 //enums:enum -trim-prefix Touch

const (
	// TouchIdle is when no pointer is down.
	TouchIdle TouchStates = iota

	// TouchDragging is when a pointer went down on the touchable
	// ring and moves update the angle.
	TouchDragging

	// TouchIgnored is when a pointer went down inside the dead zone
	// or outside the ring. The dial keeps the pointer until it is
	// released, but the angle does not change.
	TouchIgnored
)

var touchStatesNames = [...]string{"Idle", "Dragging", "Ignored"}

// String returns the string representation of this TouchStates value.
func (i TouchStates) String() string {
	if i < 0 || int(i) >= len(touchStatesNames) {
		return strconv.Itoa(int(i))
	}
	return touchStatesNames[i]
}
