// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smoother

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gridmesh/meshdata"
)

func Test_smooth01(tst *testing.T) {

	chk.PrintTitle("smooth01: a single off-grid triangle survives smoothing with no crossed cells")

	grid := meshdata.Grid{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.05, 0.05, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.95, 0.05, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.5, 0.95, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	out, err := Smooth(m, DefaultOptions())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("out = %d verts, %d elems\n", out.NumVertices(), out.NumElements())
	chk.IntAssert(out.NumElements(), 1)
}

func Test_smooth02(tst *testing.T) {

	chk.PrintTitle("smooth02: non-triangle elements pass through untouched")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.3, 0.3, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.7, 0.3, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Line, Verts: []int{v0, v1}})

	out, err := Smooth(m, DefaultOptions())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumElements(), 1)
	chk.Scalar(tst, "v0.X", 1e-12, out.Coordinates[v0].X, 0.3)
}

func Test_buildpatches01(tst *testing.T) {

	chk.PrintTitle("buildpatches01: two coplanar triangles in one cell form a single patch")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.1, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.9, 0.1, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.9, 0.9, 0))
	v3 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.9, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v2, v3}})

	patches, err := buildPatches(m, m.Groups[0], 30)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(patches), 1)
	chk.IntAssert(len(patches[0].elems), 2)
}

func Test_buildpatches02(tst *testing.T) {

	chk.PrintTitle("buildpatches02: a sharp fold splits into two patches")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.1, 0.1))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.9, 0.1, 0.1))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.5, 0.9, 0.1))
	v3 := m.AddVertex(meshdata.NewCoordinate(0.5, 0.5, 0.9))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v2, v3}})

	patches, err := buildPatches(m, m.Groups[0], 10)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(patches), 2)
}

func Test_singular01(tst *testing.T) {

	chk.PrintTitle("singular01: an isolated triangle's corners are all singular")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.1, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.9, 0.1, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.5, 0.9, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	p := patch{elems: []int{0}}
	singular := buildSingularIds(m, m.Groups[0], p, 30)
	for _, v := range []int{v0, v1, v2} {
		if !singular[v] {
			tst.Errorf("expected vertex %d to be singular: its interior angle is far from a straight 180 degrees", v)
		}
	}
}
