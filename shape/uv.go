// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// MapUVs recomputes the texture coordinates of every vertex in the
// buffer from its x,y position and the spec's dimensions and UV mode.
// Texture coordinates are position-derived, not inherited, so every
// stage that adds or moves vertices must re-map.
func MapUVs(sp *ShapeSpec, mb *MeshBuffer) {
	mapUVSize(sp.Width, sp.Height, sp.UVMode, mb)
}

// mapUVSize maps x,y positions within the given bounding size to
// texture coordinates. Under [Stretch] the full box maps to [0,1] on
// both axes; under [AspectRatioFit] the larger axis maps to [0,1] and
// the smaller axis to a min/max fraction of it, centered on 0.5.
// Border buffers map against their expanded bounding size, which is why
// this takes explicit dimensions.
func mapUVSize(width, height float32, mode UVMode, mb *MeshBuffer) {
	sx, sy := float32(1), float32(1)
	if mode == AspectRatioFit {
		if width > height {
			sy = height / width
		} else if height > width {
			sx = width / height
		}
	}
	nv := mb.NumVertex()
	for i := 0; i < nv; i++ {
		x := mb.Vertex[3*i]
		y := mb.Vertex[3*i+1]
		mb.TexCoord.Set(2*i, sx*x/width+0.5, sy*y/height+0.5)
	}
}
