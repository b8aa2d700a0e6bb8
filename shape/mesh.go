// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Ring identifies a contiguous run of silhouette vertices within a
// [MeshBuffer], in vertex units. Rings are what the border and solidify
// stages operate on: inner (non-silhouette) vertices always precede ring
// vertices, so a ring is fully described by its start offset and count.
type Ring struct {

	// Start is the index of the first ring vertex.
	Start int

	// Count is the number of ring vertices.
	Count int

	// Inward marks a ring bounding a hole (the inner silhouette of a
	// border): its side walls face the shape interior when solidified.
	Inward bool
}

// MeshBuffer holds one indexed triangle mesh as parallel per-vertex
// arrays: 3 floats per position and normal, 2 per texture coordinate,
// and indexes in triples wound counter-clockwise when viewed from the
// front of the shape (from -Z). Each generation call returns a fresh
// buffer owned solely by the caller.
type MeshBuffer struct {

	// Vertex has 3 floats per vertex position.
	Vertex math32.ArrayF32

	// Normal has 3 floats per vertex normal.
	Normal math32.ArrayF32

	// TexCoord has 2 floats per vertex texture coordinate.
	TexCoord math32.ArrayF32

	// Index has counter-clockwise triangle vertex indexes in triples.
	Index math32.ArrayU32

	// Rings lists the silhouette runs of this buffer.
	Rings []Ring
}

// NewMeshBuffer returns a buffer with arrays allocated for the given
// number of vertex and index points (in points, not floats).
func NewMeshBuffer(numVertex, numIndex int) *MeshBuffer {
	return &MeshBuffer{
		Vertex:   make(math32.ArrayF32, 3*numVertex),
		Normal:   make(math32.ArrayF32, 3*numVertex),
		TexCoord: make(math32.ArrayF32, 2*numVertex),
		Index:    make(math32.ArrayU32, numIndex),
	}
}

// NumVertex returns the number of vertex points.
func (mb *MeshBuffer) NumVertex() int {
	return len(mb.Vertex) / 3
}

// NumIndex returns the number of index points.
func (mb *MeshBuffer) NumIndex() int {
	return len(mb.Index)
}

// NumTriangles returns the number of index triples.
func (mb *MeshBuffer) NumTriangles() int {
	return len(mb.Index) / 3
}

// Pos returns the position of vertex i.
func (mb *MeshBuffer) Pos(i int) math32.Vector3 {
	return math32.Vec3(mb.Vertex[3*i], mb.Vertex[3*i+1], mb.Vertex[3*i+2])
}

// Norm returns the normal of vertex i.
func (mb *MeshBuffer) Norm(i int) math32.Vector3 {
	return math32.Vec3(mb.Normal[3*i], mb.Normal[3*i+1], mb.Normal[3*i+2])
}

// UV returns the texture coordinate of vertex i.
func (mb *MeshBuffer) UV(i int) math32.Vector2 {
	return math32.Vec2(mb.TexCoord[2*i], mb.TexCoord[2*i+1])
}

// Triangle returns the vertex indexes of triangle i.
func (mb *MeshBuffer) Triangle(i int) (a, b, c uint32) {
	return mb.Index[3*i], mb.Index[3*i+1], mb.Index[3*i+2]
}

// BBox returns the bounding box of all vertex positions.
func (mb *MeshBuffer) BBox() math32.Box3 {
	bb := math32.Box3{}
	bb.SetEmpty()
	nv := mb.NumVertex()
	for i := 0; i < nv; i++ {
		bb.ExpandByPoint(mb.Pos(i))
	}
	return bb
}

// setVertex sets the position and normal of vertex i.
func (mb *MeshBuffer) setVertex(i int, pos, norm math32.Vector3) {
	mb.Vertex.SetVector3(3*i, pos)
	mb.Normal.SetVector3(3*i, norm)
}

// connectRings writes 2*count triangles joining two equal-sized vertex
// rings starting at offsets a and b, as one quad per vertex pair with the
// final quad wrapping back onto the first pair. The default winding faces
// the quads the way an outer silhouette wall must; flip reverses it for
// rings whose wall faces the shape interior. Starts writing at index
// offset ioff and returns the offset after the last triangle.
func connectRings(idx math32.ArrayU32, ioff int, a, b uint32, count int, flip bool) int {
	for i := 0; i < count; i++ {
		j := (i + 1) % count
		ai, aj := a+uint32(i), a+uint32(j)
		bi, bj := b+uint32(i), b+uint32(j)
		if flip {
			idx.Set(ioff, ai, aj, bi, aj, bj, bi)
		} else {
			idx.Set(ioff, ai, bi, aj, aj, bi, bj)
		}
		ioff += 6
	}
	return ioff
}
