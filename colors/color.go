// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Color is an RGBA color that reads and writes itself as a hex
// string in config files.
type Color color.RGBA

// C returns the given color as a [Color].
func C(c color.Color) Color {
	return Color(AsRGBA(c))
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// AsRGBA returns the color as a [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	return color.RGBA(c)
}

func (c Color) String() string {
	return AsHex(color.RGBA(c))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *Color) UnmarshalText(text []byte) error {
	rc, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = Color(rc)
	return nil
}
