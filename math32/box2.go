// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 is an axis aligned rectangle given by its
// minimum and maximum corners.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the box with the given corner coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// Square returns the square box with the given center and half side.
func Square(center Vector2, half float32) Box2 {
	h := Vector2Scalar(half)
	return Box2{center.Sub(h), center.Add(h)}
}

// Center returns the center of the box.
func (b Box2) Center() Vector2 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Size returns the width and height of the box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}
