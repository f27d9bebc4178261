// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collapser

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gridmesh/meshdata"
)

func Test_collapse01(tst *testing.T) {

	chk.PrintTitle("collapse01: near-coincident vertices fuse after rounding")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0, 0, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(1, 0, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.5, 1, 0))
	v3 := m.AddVertex(meshdata.NewCoordinate(0.00000001, 0.00000001, 0)) // ~= v0 after rounding to 4 places
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})
	m.AppendElement(0, meshdata.Element{Type: meshdata.Line, Verts: []int{v3, v1}})

	out, err := Collapse(m, 4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("out = %d verts, %d elems\n", out.NumVertices(), out.NumElements())
	chk.IntAssert(out.NumVertices(), 3)
	chk.IntAssert(out.Groups[0].Elements[1].Verts[0], out.Groups[0].Elements[0].Verts[0])
}

func Test_collapse02(tst *testing.T) {

	chk.PrintTitle("collapse02: idempotence")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0, 0, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(1, 0, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.5, 1, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	once, err := Collapse(m, 4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	twice, err := Collapse(once, 4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(twice.NumVertices(), once.NumVertices())
	chk.IntAssert(twice.NumElements(), once.NumElements())
}

func Test_collapse03(tst *testing.T) {

	chk.PrintTitle("collapse03: degenerate sliver is collapsed away")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0, 0, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(1, 0, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.5, 0.0000001, 0)) // nearly collinear with v0,v1
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	out, err := Collapse(m, 4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for _, e := range out.Groups[0].Elements {
		if e.IsTriangle() {
			tst.Errorf("expected the sliver triangle to collapse away, got one surviving")
		}
	}
	chk.IntAssert(len(out.Groups[0].Elements), 0)
}
