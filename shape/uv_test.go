// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestStretchUVs(t *testing.T) {
	sp := &ShapeSpec{Width: 2, Height: 1, UVMode: Stretch}
	mb, err := Generate(sp)
	assert.NoError(t, err)

	// corners map exactly to the UV square, clockwise from top-left
	assert.Equal(t, math32.Vec2(0.5, 0.5), mb.UV(0))
	assert.Equal(t, math32.Vec2(0, 1), mb.UV(1))
	assert.Equal(t, math32.Vec2(1, 1), mb.UV(2))
	assert.Equal(t, math32.Vec2(1, 0), mb.UV(3))
	assert.Equal(t, math32.Vec2(0, 0), mb.UV(4))
}

func TestStretchUVsInRange(t *testing.T) {
	sp := &ShapeSpec{Width: 3, Height: 1, CornerRoundness: 0.3, CornerVertexCount: 6,
		UVMode: Stretch, Topology: CornerConnections}
	mb, err := Generate(sp)
	assert.NoError(t, err)

	for i := 0; i < mb.NumVertex(); i++ {
		uv := mb.UV(i)
		assert.GreaterOrEqual(t, uv.X, float32(0))
		assert.LessOrEqual(t, uv.X, float32(1))
		assert.GreaterOrEqual(t, uv.Y, float32(0))
		assert.LessOrEqual(t, uv.Y, float32(1))
	}
}

func TestAspectRatioFitUVs(t *testing.T) {
	sp := &ShapeSpec{Width: 2, Height: 1, UVMode: AspectRatioFit}
	mb, err := Generate(sp)
	assert.NoError(t, err)

	// long axis spans [0,1]; short axis spans [0.25, 0.75] centered on 0.5
	assert.Equal(t, math32.Vec2(0, 0.75), mb.UV(1))
	assert.Equal(t, math32.Vec2(1, 0.75), mb.UV(2))
	assert.Equal(t, math32.Vec2(1, 0.25), mb.UV(3))
	assert.Equal(t, math32.Vec2(0, 0.25), mb.UV(4))

	// the symmetric case: height dominant
	sp = &ShapeSpec{Width: 1, Height: 2, UVMode: AspectRatioFit}
	mb, err = Generate(sp)
	assert.NoError(t, err)
	assert.Equal(t, math32.Vec2(0.25, 1), mb.UV(1))
	assert.Equal(t, math32.Vec2(0.75, 1), mb.UV(2))
	assert.Equal(t, math32.Vec2(0.75, 0), mb.UV(3))
	assert.Equal(t, math32.Vec2(0.25, 0), mb.UV(4))
}

func TestUVsRecomputedFromPositions(t *testing.T) {
	sp := &ShapeSpec{Width: 2, Height: 1, CornerRoundness: 0.25, CornerVertexCount: 3,
		UVMode: Stretch}
	mb, err := Generate(sp)
	assert.NoError(t, err)

	for i := 0; i < mb.NumVertex(); i++ {
		p := mb.Pos(i)
		want := math32.Vec2(p.X/sp.Width+0.5, p.Y/sp.Height+0.5)
		assert.InDelta(t, want.X, mb.UV(i).X, 1e-6)
		assert.InDelta(t, want.Y, mb.UV(i).Y, 1e-6)
	}
}
