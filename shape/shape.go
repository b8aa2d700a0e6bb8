// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates flat and extruded rounded-rectangle meshes,
// and optional surrounding border rings, as raw position / normal / uv /
// index buffers ready for any rendering pipeline.
//
// Generation is a pure function of the numeric shape descriptors: every
// call produces a fresh [MeshBuffer] and retains no state, so calls may
// run concurrently without coordination.
package shape

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// Topology selects how a flat outline is triangulated.
type Topology int32

const (
	// CenterFan places a single vertex at the shape center and fans one
	// triangle out to every consecutive pair of outer-ring vertices.
	CenterFan Topology = iota

	// CornerConnections places an inner axis-aligned rectangle at the
	// four corner roundness centers and connects it to the outer ring
	// with edge quads and per-corner vertex fans.
	CornerConnections
)

func (t Topology) String() string {
	switch t {
	case CornerConnections:
		return "CornerConnections"
	default:
		return "CenterFan"
	}
}

// UVMode selects how vertex positions map to texture coordinates.
type UVMode int32

const (
	// Stretch maps the full bounding box to [0,1] on both axes,
	// distorting the texture on non-square shapes.
	Stretch UVMode = iota

	// AspectRatioFit maps the larger dimension to [0,1] and centers the
	// smaller dimension's proportionally reduced range around 0.5,
	// preserving the texture aspect ratio.
	AspectRatioFit
)

func (m UVMode) String() string {
	switch m {
	case AspectRatioFit:
		return "AspectRatioFit"
	default:
		return "Stretch"
	}
}

const (
	// MaxCornerRoundness is the maximum corner roundness fraction:
	// half of the smaller dimension, i.e. fully rounded sides.
	MaxCornerRoundness = 0.5

	// MaxCornerVertexCount is the maximum number of extra vertices
	// generated per rounded corner.
	MaxCornerVertexCount = 64
)

// Validation errors returned by [ShapeSpec.Validate] and
// [BorderSpec.Validate]; matched with [errors.Is].
var (
	ErrInvalidShape  = errors.New("invalid shape")
	ErrInvalidBorder = errors.New("invalid border")
)

// ShapeSpec describes one rectangle mesh to generate.
// It is read-only during generation: a single spec value may drive any
// number of concurrent generation calls.
type ShapeSpec struct {

	// width of the rectangle (X axis)
	Width float32

	// height of the rectangle (Y axis)
	Height float32

	// CornerRoundness is the corner radius as a fraction of the smaller
	// dimension, in [0, 0.5]. 0 produces sharp corners, 0.5 fully
	// rounded sides.
	CornerRoundness float32 `min:"0" max:"0.5" step:"0.05"`

	// CornerVertexCount is the number of extra vertices per rounded
	// corner, in [0, 64]. 0 still yields one arc segment per quarter turn.
	CornerVertexCount int `min:"0" max:"64"`

	// Is3D extrudes the flat shape into a closed shell of Depth.
	Is3D bool

	// Depth is the extrusion depth along Z; must be positive when Is3D.
	Depth float32

	// UVMode selects the texture coordinate parameterization.
	UVMode UVMode

	// Topology selects the flat triangulation; see [ShapeSpec.EffectiveTopology].
	Topology Topology
}

func (sp *ShapeSpec) Defaults() {
	sp.Width = 1
	sp.Height = 1
	sp.CornerRoundness = 0.25
	sp.CornerVertexCount = 8
	sp.Depth = 0.2
	sp.UVMode = Stretch
	sp.Topology = CenterFan
}

// CornerRadius returns the absolute corner radius:
// the roundness fraction of the smaller dimension.
func (sp *ShapeSpec) CornerRadius() float32 {
	return math32.Min(sp.Width, sp.Height) * sp.CornerRoundness
}

// IsRounded reports whether the shape has rounded corners.
func (sp *ShapeSpec) IsRounded() bool {
	return sp.CornerRadius() > 0
}

// EffectiveTopology returns the topology actually used for generation.
// Shapes without rounding, and squares at maximal roundness (an N-gon),
// have no usable inner rectangle, so [CenterFan] is forced for them
// regardless of the requested topology.
func (sp *ShapeSpec) EffectiveTopology() Topology {
	if !sp.IsRounded() {
		return CenterFan
	}
	if sp.Width == sp.Height && sp.CornerRoundness >= MaxCornerRoundness {
		return CenterFan
	}
	return sp.Topology
}

// Validate checks the spec against the supported parameter ranges,
// returning an error wrapping [ErrInvalidShape] describing the first
// violation. Generation assumes a validated spec.
func (sp *ShapeSpec) Validate() error {
	if !(sp.Width > 0) {
		return fmt.Errorf("%w: width must be positive, got %v", ErrInvalidShape, sp.Width)
	}
	if !(sp.Height > 0) {
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidShape, sp.Height)
	}
	if !(sp.CornerRoundness >= 0 && sp.CornerRoundness <= MaxCornerRoundness) {
		return fmt.Errorf("%w: corner roundness must be in [0, %v], got %v", ErrInvalidShape, MaxCornerRoundness, sp.CornerRoundness)
	}
	if sp.CornerVertexCount < 0 || sp.CornerVertexCount > MaxCornerVertexCount {
		return fmt.Errorf("%w: corner vertex count must be in [0, %d], got %d", ErrInvalidShape, MaxCornerVertexCount, sp.CornerVertexCount)
	}
	if r := sp.CornerRadius(); sp.Width < 2*r || sp.Height < 2*r {
		return fmt.Errorf("%w: dimensions %v x %v cannot fit corner radius %v without self-intersecting", ErrInvalidShape, sp.Width, sp.Height, r)
	}
	if sp.Is3D && !(sp.Depth > 0) {
		return fmt.Errorf("%w: depth must be positive for a 3D shape, got %v", ErrInvalidShape, sp.Depth)
	}
	return nil
}

// IsValid reports whether the spec is valid, with the failure reason.
// It is the pre-check form of [ShapeSpec.Validate] for UI callers.
func (sp *ShapeSpec) IsValid() (bool, string) {
	if err := sp.Validate(); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// BorderSpec describes a border ring generated around a shape.
type BorderSpec struct {

	// Thickness is the border width, added outward from the shape
	// silhouette; must be positive.
	Thickness float32

	// AdditionalDepth extends the border extrusion beyond the shape
	// depth; only meaningful for 3D shapes.
	AdditionalDepth float32
}

func (bs *BorderSpec) Defaults() {
	bs.Thickness = 0.1
}

// Validate checks the border spec, returning an error wrapping
// [ErrInvalidBorder] describing the first violation.
func (bs *BorderSpec) Validate() error {
	if !(bs.Thickness > 0) {
		return fmt.Errorf("%w: thickness must be positive, got %v", ErrInvalidBorder, bs.Thickness)
	}
	if !(bs.AdditionalDepth >= 0) {
		return fmt.Errorf("%w: additional depth cannot be negative, got %v", ErrInvalidBorder, bs.AdditionalDepth)
	}
	return nil
}

// IsValid reports whether the border spec is valid, with the failure reason.
func (bs *BorderSpec) IsValid() (bool, string) {
	if err := bs.Validate(); err != nil {
		return false, err.Error()
	}
	return true, ""
}
