// Copyright (c) 2025, The Rounded Rectangle Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape_test

import (
	"fmt"

	"github.com/Bansi33/RoundedRectangleGenerator/shape"
)

func ExampleGenerate() {
	sp := &shape.ShapeSpec{}
	sp.Defaults()
	sp.Width = 2
	sp.Height = 1
	mb, err := shape.Generate(sp)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("vertices: %d triangles: %d\n", mb.NumVertex(), mb.NumTriangles())
	// Output: vertices: 41 triangles: 40
}

func ExampleGenerateWithBorder() {
	sp := &shape.ShapeSpec{}
	sp.Defaults()
	sp.Width = 2
	sp.Height = 1
	bs := &shape.BorderSpec{}
	bs.Defaults()
	_, border, err := shape.GenerateWithBorder(sp, bs)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("border vertices: %d triangles: %d\n", border.NumVertex(), border.NumTriangles())
	// Output: border vertices: 80 triangles: 80
}
