// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicer

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gridmesh/collab"
	"github.com/cpmech/gridmesh/meshdata"
)

func Test_slice01(tst *testing.T) {

	chk.PrintTitle("slice01: triangle strictly inside one cell is untouched")

	grid := meshdata.Grid{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}, Z: []float64{0, 1, 2}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.1, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.9, 0.1, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.5, 0.9, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	out, err := Slice(m, collab.FanCDT{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("out = %d verts, %d elems\n", out.NumVertices(), out.NumElements())
	chk.IntAssert(out.NumElements(), 1)
	chk.IntAssert(out.NumVertices(), 3)
}

func Test_slice02(tst *testing.T) {

	chk.PrintTitle("slice02: line across two cells splits at the midpoint")

	// relative space: grid {-5,0,5} maps to relative planes {0,1,2};
	// a=(-2.4,-2.6,-5) and b=(2.4,-1.2,-5) become relative (0.52,0.48,0)
	// and (1.48,0.76,0), crossing relative plane x=1 at t=0.5.
	grid := meshdata.Grid{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}, Z: []float64{0, 1, 2}}
	m := meshdata.NewMesh(grid)
	a := meshdata.NewCoordinate(0.52, 0.48, 0)
	b := meshdata.NewCoordinate(1.48, 0.76, 0)
	v0 := m.AddVertex(a)
	v1 := m.AddVertex(b)
	m.AppendElement(0, meshdata.Element{Type: meshdata.Line, Verts: []int{v0, v1}})

	out, err := Slice(m, collab.FanCDT{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumVertices(), 3)
	chk.IntAssert(out.NumElements(), 2)

	mid := out.Coordinates[out.Groups[0].Elements[0].Verts[1]]
	chk.Scalar(tst, "mid.X", 1e-9, mid.X, 1)
	chk.Scalar(tst, "mid.Y", 1e-9, mid.Y, 0.62)
}

func Test_slice03(tst *testing.T) {

	chk.PrintTitle("slice03: node passes through unchanged")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.5, 0.5, 0.5))
	m.AppendElement(2, meshdata.Element{Type: meshdata.Node, Verts: []int{v0}})

	out, err := Slice(m, collab.FanCDT{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumElements(), 1)
	chk.IntAssert(out.Groups[0].ID, 2)
}

func Test_slice04(tst *testing.T) {

	chk.PrintTitle("slice04: quad is rejected with InvalidInput")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0, 0, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(1, 0, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(1, 1, 0))
	v3 := m.AddVertex(meshdata.NewCoordinate(0, 1, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2, v3}})

	_, err := Slice(m, collab.FanCDT{})
	if err == nil {
		tst.Errorf("expected an InvalidInput error for a quad")
	}
}
