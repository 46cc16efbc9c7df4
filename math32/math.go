// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is float32 math and 2D geometry for dial layout.
// The scalar functions forward to chewxy/math32, which implements
// them natively in float32.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

const (
	Pi = math.Pi

	// DegToRadFactor converts degrees to radians by multiplication.
	DegToRadFactor = Pi / 180

	// RadToDegFactor converts radians to degrees by multiplication.
	RadToDegFactor = 180 / Pi
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 { return degrees * DegToRadFactor }

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 { return radians * RadToDegFactor }

// Atan2 is the float32 [math.Atan2].
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }

// Sincos is the float32 [math.Sincos].
func Sincos(x float32) (sin, cos float32) { return math32.Sincos(x) }

func Hypot(p, q float32) float32 { return math32.Hypot(p, q) }
func Floor(x float32) float32    { return math32.Floor(x) }
func Ceil(x float32) float32     { return math32.Ceil(x) }

// Round rounds half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Max returns the larger of x and y. Unlike the builtin max,
// it returns NaN if either is NaN.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Min returns the smaller of x and y, or NaN if either is NaN.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Clamp returns x limited to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
