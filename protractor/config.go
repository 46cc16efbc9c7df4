// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

import (
	"image/color"

	"cogentcore.org/protractor/colors"
	"cogentcore.org/protractor/math32"
)

// MaxAngle is the largest angle a dial can report.
const MaxAngle = 180

// Config contains the parameters of a [Dial]. All sizes are in
// density-independent pixels (dp) and are converted to pixels
// at layout time using the display density.
type Config struct {

	// ArcWidth is the stroke width of the background arc.
	ArcWidth float32 `toml:"arc_width" yaml:"arc_width"`

	// ArcProgressWidth is the stroke width of the progress arc.
	ArcProgressWidth float32 `toml:"arc_progress_width" yaml:"arc_progress_width"`

	// RoundedEdges is whether the arcs are drawn with round caps.
	RoundedEdges bool `toml:"rounded_edges" yaml:"rounded_edges"`

	// AngleTextSize is the text size of the tick labels.
	AngleTextSize float32 `toml:"angle_text_size" yaml:"angle_text_size"`

	// TickOffset is the gap between the arc and the start of the ticks.
	TickOffset float32 `toml:"tick_offset" yaml:"tick_offset"`

	// TickLength is the length of a tick.
	TickLength float32 `toml:"tick_length" yaml:"tick_length"`

	// TickWidth is the stroke width of a tick before the progress.
	TickWidth float32 `toml:"tick_width" yaml:"tick_width"`

	// TickProgressWidth is the stroke width of a tick within the progress.
	TickProgressWidth float32 `toml:"tick_progress_width" yaml:"tick_progress_width"`

	// TickInterval is the number of degrees between two ticks.
	// It must be positive; it does not have to divide 180.
	TickInterval int `toml:"tick_interval" yaml:"tick_interval"`

	// TicksBetweenLabel is how many plain ticks are drawn between labels.
	TicksBetweenLabel TicksBetweenLabel `toml:"ticks_between_label" yaml:"ticks_between_label"`

	// TouchInside is whether touches inside the arc start a drag.
	// When off, only touches on the ring around the arc are accepted.
	TouchInside bool `toml:"touch_inside" yaml:"touch_inside"`

	// Enabled is the initial enabled state.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// Angle is the initial angle, clamped to [0, 180].
	Angle int `toml:"angle" yaml:"angle"`

	// ThumbWidth and ThumbHeight are the intrinsic size of the thumb.
	ThumbWidth  float32 `toml:"thumb_width" yaml:"thumb_width"`
	ThumbHeight float32 `toml:"thumb_height" yaml:"thumb_height"`

	// Margin is removed from each side of the arc diameter to leave
	// room for the labels.
	Margin float32 `toml:"margin" yaml:"margin"`

	ArcColor          colors.Color `toml:"arc_color" yaml:"arc_color"`
	ArcProgressColor  colors.Color `toml:"arc_progress_color" yaml:"arc_progress_color"`
	TextColor         colors.Color `toml:"text_color" yaml:"text_color"`
	TextProgressColor colors.Color `toml:"text_progress_color" yaml:"text_progress_color"`
	TickColor         colors.Color `toml:"tick_color" yaml:"tick_color"`
	TickProgressColor colors.Color `toml:"tick_progress_color" yaml:"tick_progress_color"`
	ThumbColor        colors.Color `toml:"thumb_color" yaml:"thumb_color"`
}

// DefaultConfig returns the default dial configuration.
func DefaultConfig() Config {
	gray := colors.C(colors.ProgressGray)
	blue := colors.C(colors.DefaultBlueLight)
	return Config{
		ArcWidth:          2,
		ArcProgressWidth:  2,
		RoundedEdges:      true,
		AngleTextSize:     12,
		TickOffset:        12,
		TickLength:        10,
		TickWidth:         2,
		TickProgressWidth: 2,
		TickInterval:      15,
		TicksBetweenLabel: TicksBetweenLabelTwo,
		TouchInside:       true,
		Enabled:           true,
		ThumbWidth:        24,
		ThumbHeight:       24,
		Margin:            20,
		ArcColor:          gray,
		ArcProgressColor:  blue,
		TextColor:         gray,
		TextProgressColor: blue,
		TickColor:         gray,
		TickProgressColor: blue,
		ThumbColor:        blue,
	}
}

// Clamp clamps the config values into their valid ranges:
// sizes are at least 0, the tick interval is at least 1,
// and the angle is within [0, 180].
func (c *Config) Clamp() {
	for _, v := range []*float32{&c.ArcWidth, &c.ArcProgressWidth, &c.AngleTextSize,
		&c.TickOffset, &c.TickLength, &c.TickWidth, &c.TickProgressWidth,
		&c.ThumbWidth, &c.ThumbHeight, &c.Margin} {
		*v = math32.Max(*v, 0)
	}
	c.TickInterval = max(c.TickInterval, 1)
	c.TicksBetweenLabel = math32.Clamp(c.TicksBetweenLabel, TicksBetweenLabelZero, TicksBetweenLabelThree)
	c.Angle = clampAngle(c.Angle)
}

// Metrics are the sizes of a [Config] resolved to pixels
// for a given display density.
type Metrics struct {
	Density           float32
	ArcWidth          float32
	ArcProgressWidth  float32
	AngleTextSize     float32
	TickOffset        float32
	TickLength        float32
	TickWidth         float32
	TickProgressWidth float32
	ThumbWidth        float32
	ThumbHeight       float32

	// Margin stays in dp: [ComputeBounds] scales it by the density.
	Margin float32

	TickInterval      int
	TicksBetweenLabel TicksBetweenLabel
}

// Dots returns the config sizes converted to pixels at the given density.
// A non-positive density is treated as 1.
func (c *Config) Dots(density float32) Metrics {
	if density <= 0 {
		density = 1
	}
	return Metrics{
		Density:           density,
		ArcWidth:          c.ArcWidth * density,
		ArcProgressWidth:  c.ArcProgressWidth * density,
		AngleTextSize:     c.AngleTextSize * density,
		TickOffset:        c.TickOffset * density,
		TickLength:        c.TickLength * density,
		TickWidth:         c.TickWidth * density,
		TickProgressWidth: c.TickProgressWidth * density,
		ThumbWidth:        c.ThumbWidth * density,
		ThumbHeight:       c.ThumbHeight * density,
		Margin:            c.Margin,
		TickInterval:      max(c.TickInterval, 1),
		TicksBetweenLabel: c.TicksBetweenLabel,
	}
}

// Paints are the resolved stroke widths, text size and colors
// a renderer needs to draw a [DrawPlan].
type Paints struct {
	ArcWidth          float32
	ArcProgressWidth  float32
	TickWidth         float32
	TickProgressWidth float32
	TextSize          float32
	RoundedEdges      bool

	ArcColor          color.RGBA
	ArcProgressColor  color.RGBA
	TextColor         color.RGBA
	TextProgressColor color.RGBA
	TickColor         color.RGBA
	TickProgressColor color.RGBA
	ThumbColor        color.RGBA
}

// paints returns the [Paints] for the given config and metrics.
func paints(c *Config, m Metrics) Paints {
	return Paints{
		ArcWidth:          m.ArcWidth,
		ArcProgressWidth:  m.ArcProgressWidth,
		TickWidth:         m.TickWidth,
		TickProgressWidth: m.TickProgressWidth,
		TextSize:          m.AngleTextSize,
		RoundedEdges:      c.RoundedEdges,
		ArcColor:          c.ArcColor.AsRGBA(),
		ArcProgressColor:  c.ArcProgressColor.AsRGBA(),
		TextColor:         c.TextColor.AsRGBA(),
		TextProgressColor: c.TextProgressColor.AsRGBA(),
		TickColor:         c.TickColor.AsRGBA(),
		TickProgressColor: c.TickProgressColor.AsRGBA(),
		ThumbColor:        c.ThumbColor.AsRGBA(),
	}
}

func clampAngle(angle int) int {
	return math32.Clamp(angle, 0, MaxAngle)
}
