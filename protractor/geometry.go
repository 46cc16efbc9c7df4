// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

import "cogentcore.org/protractor/math32"

// The dial is drawn upside down and mirrored relative to the usual
// math convention: angle 0 is at the left end of the baseline, 90 at
// the top of the arc, and 180 at the right end. All functions in this
// file use that convention.

// Bounds is the geometry of a laid out dial.
type Bounds struct {

	// Rect is the bounding square of the full circle of the arc.
	Rect math32.Box2

	// Center is the center of the arc, on its baseline.
	Center math32.Vector2

	// Radius is the arc radius; 0 for a degenerate layout.
	Radius float32

	// Size is the size the dial measures itself at,
	// including the tick band below the radius.
	Size math32.Vector2
}

// ComputeBounds returns the bounds of a dial laid out in the given size.
// The smaller of width and height defines a square whose upper half
// holds the semicircle. The arc diameter is that side minus the tick
// band on each side and minus margin (in dp, scaled by density) on each
// side. A diameter that would be negative is clamped to 0.
func ComputeBounds(width, height, tickOffset, tickLength, density, margin float32) Bounds {
	width = math32.Max(width, 0)
	height = math32.Max(height, 0)
	side := math32.Min(width, height)
	half := side / 2
	tickBand := tickOffset + tickLength

	diameter := side - 2*tickBand - 2*margin*density
	diameter = math32.Max(diameter, 0)
	radius := diameter / 2

	center := math32.Vec2(width/2, half)
	return Bounds{
		Rect:   math32.Square(center, radius),
		Center: center,
		Radius: radius,
		Size:   math32.Vec2(width, half+tickBand),
	}
}

// AngleToPoint returns the display position at the given angle in
// degrees and the given distance from center.
func AngleToPoint(angle, radius float32, center math32.Vector2) math32.Vector2 {
	return center.Sub(math32.Vector2Polar(math32.DegToRad(angle), radius))
}

// PointToAngle returns the dial angle in [0, 180] of the given point
// relative to center. Points below the baseline fold back onto the
// nearer end of the arc; see [FoldBack].
func PointToAngle(p, center math32.Vector2) float32 {
	d := p.Sub(center)
	raw := math32.RadToDeg(math32.Atan2(d.Y, d.X) + math32.Pi)
	return FoldBack(raw)
}

// FoldBack maps a raw angle in [0, 360] onto the arc: angles
// in (270, 360] become 0, angles in (180, 270] become 180,
// and all others are returned unchanged.
func FoldBack(raw float32) float32 {
	switch {
	case raw > 270:
		return 0
	case raw > 180:
		return MaxAngle
	}
	return raw
}

// ThumbPosition returns the position of the thumb for the given angle.
func ThumbPosition(angle int, radius float32, center math32.Vector2) math32.Vector2 {
	return AngleToPoint(float32(angle), radius, center)
}
