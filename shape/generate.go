// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Generate builds the mesh for the given spec: the flat outline with
// texture coordinates, solidified into a closed shell when Is3D.
// The spec is validated first; the returned buffer is fresh and owned by
// the caller.
func Generate(sp *ShapeSpec) (*MeshBuffer, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	mb, err := BuildOutline(sp)
	if err != nil {
		return nil, err
	}
	MapUVs(sp, mb)
	if sp.Is3D {
		mb = Solidify(sp, mb, sp.Depth)
		MapUVs(sp, mb)
	}
	return mb, nil
}

// GenerateWithBorder builds both the shape mesh and a surrounding border
// ring. The border's texture coordinates map against its expanded
// bounding box so the outermost silhouette still reaches the UV rim.
// When the shape is 3D the border is solidified to
// Depth+AdditionalDepth; both silhouettes of the border receive side
// walls.
func GenerateWithBorder(sp *ShapeSpec, bs *BorderSpec) (rect, border *MeshBuffer, err error) {
	if err := sp.Validate(); err != nil {
		return nil, nil, err
	}
	if err := bs.Validate(); err != nil {
		return nil, nil, err
	}
	outline, err := BuildOutline(sp)
	if err != nil {
		return nil, nil, err
	}
	MapUVs(sp, outline)

	border, err = BuildBorder(sp, bs, outline)
	if err != nil {
		return nil, nil, err
	}
	bw := sp.Width + 2*bs.Thickness
	bh := sp.Height + 2*bs.Thickness
	mapUVSize(bw, bh, sp.UVMode, border)

	rect = outline
	if sp.Is3D {
		rect = Solidify(sp, rect, sp.Depth)
		MapUVs(sp, rect)
		border = Solidify(sp, border, sp.Depth+bs.AdditionalDepth)
		mapUVSize(bw, bh, sp.UVMode, border)
	}
	return rect, border, nil
}
