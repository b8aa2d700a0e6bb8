// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// SolidN returns the number of vertex and index points produced by
// solidifying the given flat buffer: front and back copies of every
// vertex, a front and back seam duplicate of every silhouette ring
// vertex, and two wall triangles per ring vertex on top of the doubled
// face triangles. In points, not floats.
func SolidN(flat *MeshBuffer) (numVertex, numIndex int) {
	nv := flat.NumVertex()
	nr := 0
	for _, rg := range flat.Rings {
		nr += rg.Count
	}
	return 2 * (nv + nr), 2*flat.NumIndex() + 6*nr
}

// Solidify extrudes a flat outline or border buffer into a closed 3D
// shell of the given depth, centered on the original plane. It operates
// identically on rectangle and border buffers: every [Ring] the flat
// buffer carries receives connecting side walls, which for a border
// means both of its silhouettes.
//
// The result is laid out as: the front face in [0, nv) at z=-depth/2,
// the back face in [nv, 2*nv) at z=+depth/2 with negated normals and
// mirrored triangle winding, then per ring a run of front seam
// duplicates followed by back seam duplicates. Seam duplicates exist
// because a hard edge needs one normal for the face and another,
// perpendicular to the wall, for the side geometry: radial from the
// corner's roundness center on arcs, axis-aligned on straight edges,
// negated for inward rings.
func Solidify(sp *ShapeSpec, flat *MeshBuffer, depth float32) *MeshBuffer {
	nv := flat.NumVertex()
	onv, oni := SolidN(flat)
	mb := NewMeshBuffer(onv, oni)
	hd := depth / 2

	for i := 0; i < nv; i++ {
		p := flat.Pos(i)
		n := flat.Norm(i)
		uv := flat.UV(i)
		mb.setVertex(i, math32.Vec3(p.X, p.Y, p.Z-hd), n)
		mb.setVertex(nv+i, math32.Vec3(p.X, p.Y, p.Z+hd), n.Negate())
		mb.TexCoord.Set(2*i, uv.X, uv.Y)
		mb.TexCoord.Set(2*(nv+i), uv.X, uv.Y)
	}

	// front triangles keep their winding; back triangles swap their
	// last two indexes so both faces wind outward
	ni := flat.NumIndex()
	for i := 0; i < ni; i += 3 {
		a, b, c := flat.Index[i], flat.Index[i+1], flat.Index[i+2]
		mb.Index.Set(i, a, b, c)
		mb.Index.Set(ni+i, uint32(nv)+a, uint32(nv)+c, uint32(nv)+b)
	}

	voff := 2 * nv
	ioff := 2 * ni
	mb.Rings = make([]Ring, 0, len(flat.Rings))
	for _, rg := range flat.Rings {
		fOff := voff
		bOff := voff + rg.Count
		for i := 0; i < rg.Count; i++ {
			p := flat.Pos(rg.Start + i)
			uv := flat.UV(rg.Start + i)
			d := silhouetteDir(sp, p.X, p.Y)
			if rg.Inward {
				d = d.Negate()
			}
			wn := math32.Vec3(d.X, d.Y, 0)
			mb.setVertex(fOff+i, math32.Vec3(p.X, p.Y, p.Z-hd), wn)
			mb.setVertex(bOff+i, math32.Vec3(p.X, p.Y, p.Z+hd), wn)
			mb.TexCoord.Set(2*(fOff+i), uv.X, uv.Y)
			mb.TexCoord.Set(2*(bOff+i), uv.X, uv.Y)
		}
		ioff = connectRings(mb.Index, ioff, uint32(fOff), uint32(bOff), rg.Count, rg.Inward)
		mb.Rings = append(mb.Rings, Ring{Start: fOff, Count: rg.Count, Inward: rg.Inward})
		voff += 2 * rg.Count
	}
	return mb
}
