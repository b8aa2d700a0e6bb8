// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// flatNormal is the front-face normal of every flat outline vertex.
var flatNormal = math32.Vec3(0, 0, -1)

// OutlineN returns the number of vertex and index points for the flat
// outline of the given spec, under its effective topology.
// In points, not floats.
func OutlineN(sp *ShapeSpec) (numVertex, numIndex int) {
	if !sp.IsRounded() {
		if sp.EffectiveTopology() == CornerConnections {
			return 4, 6
		}
		return 5, 12
	}
	n := outerRingCount(sp.CornerVertexCount)
	if sp.EffectiveTopology() == CornerConnections {
		return 4 + n, 3 * (10 + 4*(sp.CornerVertexCount+1))
	}
	return 1 + n, 3 * n
}

// outerRingCount returns the outer silhouette vertex count of a rounded
// rectangle: 2 straight endpoints plus the corner arc vertices, per edge.
func outerRingCount(cornerVertexCount int) int {
	return 4 * (cornerVertexCount + 2)
}

// BuildOutline builds the flat mesh for the given spec: positions at z=0,
// all normals (0,0,-1), triangulated under the spec's effective topology.
// The resulting buffer carries one outer silhouette [Ring], with any inner
// vertices preceding it. The spec is assumed validated; only a corner
// radius too large for the dimensions is reported as an error here.
func BuildOutline(sp *ShapeSpec) (*MeshBuffer, error) {
	if !sp.IsRounded() {
		if sp.EffectiveTopology() == CornerConnections {
			return rectSplit(sp), nil
		}
		return rectFan(sp), nil
	}
	if r := sp.CornerRadius(); sp.Width < 2*r || sp.Height < 2*r {
		return nil, fmt.Errorf("%w: dimensions %v x %v cannot fit corner radius %v", ErrInvalidShape, sp.Width, sp.Height, r)
	}
	ring := outerRing(sp)
	if sp.EffectiveTopology() == CornerConnections {
		return roundedCorners(sp, ring), nil
	}
	return roundedFan(ring), nil
}

// rectCorners returns the four rectangle corners,
// clockwise from top-left.
func rectCorners(width, height float32) [4]math32.Vector2 {
	hw, hh := width/2, height/2
	return [4]math32.Vector2{{X: -hw, Y: hh}, {X: hw, Y: hh}, {X: hw, Y: -hh}, {X: -hw, Y: -hh}}
}

// rectFan builds a sharp rectangle as a center vertex plus the four
// corners, fanned into four triangles.
func rectFan(sp *ShapeSpec) *MeshBuffer {
	mb := NewMeshBuffer(5, 12)
	mb.setVertex(0, math32.Vector3{}, flatNormal)
	for i, p := range rectCorners(sp.Width, sp.Height) {
		mb.setVertex(1+i, math32.Vec3(p.X, p.Y, 0), flatNormal)
	}
	ioff := 0
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		mb.Index.Set(ioff, 0, uint32(1+i), uint32(1+j))
		ioff += 3
	}
	mb.Rings = []Ring{{Start: 1, Count: 4}}
	return mb
}

// rectSplit builds a sharp rectangle from its four corners alone, split
// into two triangles along the top-left to bottom-right diagonal. This is
// the degenerate [CornerConnections] form: no inner vertices remain.
func rectSplit(sp *ShapeSpec) *MeshBuffer {
	mb := NewMeshBuffer(4, 6)
	for i, p := range rectCorners(sp.Width, sp.Height) {
		mb.setVertex(i, math32.Vec3(p.X, p.Y, 0), flatNormal)
	}
	mb.Index.Set(0, 0, 1, 2, 0, 2, 3)
	mb.Rings = []Ring{{Start: 0, Count: 4}}
	return mb
}

// outerRing returns the outer silhouette of a rounded rectangle, walked
// clockwise from the start of the top edge: per edge the two straight
// endpoints, then the arc vertices of the corner that follows. The quarter
// arcs start at 90, 0, -90 and -180 degrees and sweep clockwise, so the
// four arcs and edges compose into one closed loop with no duplicate or
// missing points.
func outerRing(sp *ShapeSpec) []math32.Vector2 {
	r := sp.CornerRadius()
	hw, hh := sp.Width/2, sp.Height/2
	cx, cy := hw-r, hh-r
	nc := sp.CornerVertexCount

	edges := [4][2]math32.Vector2{
		{{X: -cx, Y: hh}, {X: cx, Y: hh}},   // top
		{{X: hw, Y: cy}, {X: hw, Y: -cy}},   // right
		{{X: cx, Y: -hh}, {X: -cx, Y: -hh}}, // bottom
		{{X: -hw, Y: -cy}, {X: -hw, Y: cy}}, // left
	}
	// roundness centers of the corner following each edge
	centers := [4]math32.Vector2{{X: cx, Y: cy}, {X: cx, Y: -cy}, {X: -cx, Y: -cy}, {X: -cx, Y: cy}}
	starts := [4]float32{90, 0, -90, -180}

	pts := make([]math32.Vector2, 0, outerRingCount(nc))
	step := 90 / float32(nc+1)
	for e := 0; e < 4; e++ {
		pts = append(pts, edges[e][0], edges[e][1])
		for k := 1; k <= nc; k++ {
			ang := math32.DegToRad(starts[e] - float32(k)*step)
			c := centers[e]
			pts = append(pts, math32.Vec2(c.X+r*math32.Cos(ang), c.Y+r*math32.Sin(ang)))
		}
	}
	return pts
}

// roundedFan builds a rounded rectangle as a center vertex fanned out to
// every consecutive pair of outer-ring vertices, wrapping at the end.
func roundedFan(ring []math32.Vector2) *MeshBuffer {
	n := len(ring)
	mb := NewMeshBuffer(1+n, 3*n)
	mb.setVertex(0, math32.Vector3{}, flatNormal)
	for i, p := range ring {
		mb.setVertex(1+i, math32.Vec3(p.X, p.Y, 0), flatNormal)
	}
	ioff := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mb.Index.Set(ioff, 0, uint32(1+i), uint32(1+j))
		ioff += 3
	}
	mb.Rings = []Ring{{Start: 1, Count: n}}
	return mb
}

// roundedCorners builds a rounded rectangle under [CornerConnections]:
// the four inner-rectangle vertices lead, followed by the outer ring.
// The inner rectangle takes 2 triangles, each straight edge a quad to its
// inner edge, and each corner a fan from its shared inner vertex across
// the arc, the final fan wrapping onto the first edge's starting vertex.
func roundedCorners(sp *ShapeSpec, ring []math32.Vector2) *MeshBuffer {
	n := len(ring)
	nc := sp.CornerVertexCount
	mb := NewMeshBuffer(4+n, 3*(10+4*(nc+1)))

	r := sp.CornerRadius()
	cx, cy := sp.Width/2-r, sp.Height/2-r
	inner := [4]math32.Vector2{{X: -cx, Y: cy}, {X: cx, Y: cy}, {X: cx, Y: -cy}, {X: -cx, Y: -cy}}
	for i, p := range inner {
		mb.setVertex(i, math32.Vec3(p.X, p.Y, 0), flatNormal)
	}
	for i, p := range ring {
		mb.setVertex(4+i, math32.Vec3(p.X, p.Y, 0), flatNormal)
	}

	ioff := 0
	mb.Index.Set(ioff, 0, 1, 2, 0, 2, 3)
	ioff += 6

	base := uint32(4)
	eLen := nc + 2
	for e := 0; e < 4; e++ {
		es := base + uint32(e*eLen) // straight-edge start
		ee := es + 1                // straight-edge end
		ie := uint32(e)             // inner vertex at edge start
		ij := uint32((e + 1) % 4)   // inner vertex at edge end: the corner center
		mb.Index.Set(ioff, ie, es, ee, ie, ee, ij)
		ioff += 6
		// corner fan from the shared inner vertex across the arc,
		// closing onto the next edge's starting vertex
		for k := 0; k <= nc; k++ {
			a := ee + uint32(k)
			b := a + 1
			if k == nc {
				b = base + uint32(((e+1)*eLen)%n)
			}
			mb.Index.Set(ioff, ij, a, b)
			ioff += 3
		}
	}
	mb.Rings = []Ring{{Start: 4, Count: n}}
	return mb
}
