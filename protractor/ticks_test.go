// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protractor

import (
	"testing"

	"cogentcore.org/protractor/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetrics() Metrics {
	c := DefaultConfig()
	return c.Dots(1)
}

func TestBuildTicks(t *testing.T) {
	m := testMetrics()
	b := ComputeBounds(400, 400, m.TickOffset, m.TickLength, 1, m.Margin)
	ticks := BuildTicks(m, b)
	require.Len(t, ticks, 13)

	var labels []int
	var texts []string
	for i, tk := range ticks {
		assert.Equal(t, i, tk.Index)
		assert.Equal(t, i*15, tk.Value)
		if tk.Label {
			labels = append(labels, i)
			texts = append(texts, tk.Text)
		}
	}
	assert.Equal(t, []int{0, 3, 6, 9, 12}, labels)
	assert.Equal(t, []string{"0", "45", "90", "135", "180"}, texts)

	// label at 90 is centered on the tick band above the arc
	l := ticks[6]
	assert.InDelta(t, 200, l.Pos.X, 1e-3)
	assert.InDelta(t, 200-158-12-5, l.Pos.Y, 1e-3)

	// plain tick at 0 would run from the end of the offset to the end of the band
	mt := ticks[1]
	assert.False(t, mt.Label)
	assert.Empty(t, mt.Text)
	assert.InDelta(t, 170, mt.Start.DistanceTo(b.Center), 1e-3)
	assert.InDelta(t, 180, mt.End.DistanceTo(b.Center), 1e-3)
}

func TestBuildTicksLabelSpacing(t *testing.T) {
	m := testMetrics()
	b := ComputeBounds(400, 400, m.TickOffset, m.TickLength, 1, m.Margin)

	m.TicksBetweenLabel = TicksBetweenLabelZero
	for _, tk := range BuildTicks(m, b) {
		assert.True(t, tk.Label)
	}

	m.TicksBetweenLabel = TicksBetweenLabelThree
	n := 0
	for _, tk := range BuildTicks(m, b) {
		if tk.Label {
			assert.Zero(t, tk.Index%4)
			n++
		}
	}
	assert.Equal(t, 4, n)
}

func TestBuildTicksInterval(t *testing.T) {
	m := testMetrics()
	b := ComputeBounds(400, 400, m.TickOffset, m.TickLength, 1, m.Margin)

	m.TickInterval = 50
	ticks := BuildTicks(m, b)
	require.Len(t, ticks, 4)
	assert.Equal(t, 150, ticks[3].Value)

	m.TickInterval = 0
	assert.Len(t, BuildTicks(m, b), 181)
}

func TestBuildTicksDegenerate(t *testing.T) {
	m := testMetrics()
	m.TickOffset, m.TickLength = 0, 0
	b := ComputeBounds(0, 0, 0, 0, 1, 0)
	for _, tk := range BuildTicks(m, b) {
		assert.Equal(t, math32.Vector2{}, tk.Start.Add(tk.End).Add(tk.Pos))
	}
}
