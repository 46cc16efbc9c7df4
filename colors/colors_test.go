// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#33b5e5")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlueLight, c)

	c, err = FromHex("fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	c, err = FromHex("#10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0x40}, c)

	_, err = FromHex("#12345")
	assert.Error(t, err)
	_, err = FromHex("#zzzzzz")
	assert.Error(t, err)

	assert.Panics(t, func() { MustFromHex("nope") })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#9E9E9EFF", AsHex(ProgressGray))
	assert.Equal(t, "nil", AsHex(nil))
	assert.Equal(t, color.RGBA{}, AsRGBA(nil))
}

func TestColorText(t *testing.T) {
	c := C(DefaultBlueLight)
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#33B5E5FF", string(b))

	var d Color
	require.NoError(t, d.UnmarshalText([]byte("#9e9e9e")))
	assert.Equal(t, ProgressGray, d.AsRGBA())
	assert.Error(t, d.UnmarshalText([]byte("blue")))

	r, _, _, a := d.RGBA()
	assert.Equal(t, uint32(0x9e9e), r)
	assert.Equal(t, uint32(0xffff), a)
}
