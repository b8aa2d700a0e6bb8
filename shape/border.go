// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// BorderN returns the number of vertex and index points for a border
// ring around an outline with the given outer ring size.
// In points, not floats.
func BorderN(outerCount int) (numVertex, numIndex int) {
	return 2 * outerCount, 6 * outerCount
}

// BuildBorder builds the flat border ring around an existing flat
// outline. Only the outline's outer silhouette ring is consumed: the
// border buffer holds that ring unchanged in [0, outerCount), followed by
// the offset ring in [outerCount, 2*outerCount), joined by a closed quad
// strip of 2*outerCount triangles.
//
// Rounded shapes offset each vertex radially from its corner's roundness
// center to distance cornerRadius+thickness, which keeps the arcs exactly
// circular. Sharp rectangles offset each vertex by thickness along the
// sign of each of its own coordinates, keeping the border width constant
// on every edge regardless of aspect ratio.
//
// The result carries two rings: the original ring, inward-facing when
// solidified, and the offset ring.
func BuildBorder(sp *ShapeSpec, bs *BorderSpec, outline *MeshBuffer) (*MeshBuffer, error) {
	if len(outline.Rings) == 0 {
		return nil, fmt.Errorf("%w: outline carries no silhouette ring", ErrInvalidBorder)
	}
	rg := outline.Rings[len(outline.Rings)-1]
	n := rg.Count
	nv, ni := BorderN(n)
	mb := NewMeshBuffer(nv, ni)

	t := bs.Thickness
	r := sp.CornerRadius()
	for i := 0; i < n; i++ {
		p := outline.Pos(rg.Start + i)
		mb.setVertex(i, p, flatNormal)
		var q math32.Vector2
		if sp.IsRounded() {
			c := roundnessCenter(sp, p.X, p.Y)
			d := math32.Vec2(p.X, p.Y).Sub(c).Normal()
			q = c.Add(d.MulScalar(r + t))
		} else {
			q = math32.Vec2(p.X+math32.Sign(p.X)*t, p.Y+math32.Sign(p.Y)*t)
		}
		mb.setVertex(n+i, math32.Vec3(q.X, q.Y, 0), flatNormal)
	}

	connectRings(mb.Index, 0, 0, uint32(n), n, false)
	mb.Rings = []Ring{
		{Start: 0, Count: n, Inward: true},
		{Start: n, Count: n},
	}
	return mb, nil
}

// roundnessCenter returns the roundness-circle center governing the
// given outline position: the position clamped to the inner rectangle.
// Arc vertices clamp to their corner's center; straight-edge vertices
// clamp to the nearest inner-edge point, so their outward direction
// comes out axis-aligned.
func roundnessCenter(sp *ShapeSpec, x, y float32) math32.Vector2 {
	r := sp.CornerRadius()
	cx := sp.Width/2 - r
	cy := sp.Height/2 - r
	return math32.Vec2(math32.Clamp(x, -cx, cx), math32.Clamp(y, -cy, cy))
}

// silhouetteDir returns the outward unit direction of the shape
// silhouette at the given outline position: radial from the roundness
// center for rounded shapes, the normalized coordinate-sign diagonal for
// sharp rectangle corners. Side-wall normals and border offsets share
// this geometry.
func silhouetteDir(sp *ShapeSpec, x, y float32) math32.Vector2 {
	if !sp.IsRounded() {
		return math32.Vec2(math32.Sign(x), math32.Sign(y)).Normal()
	}
	c := roundnessCenter(sp, x, y)
	return math32.Vec2(x, y).Sub(c).Normal()
}
