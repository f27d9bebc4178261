// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structurer

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gridmesh/meshdata"
)

func Test_staircaseedge01(tst *testing.T) {

	chk.PrintTitle("staircaseedge01: a pure 3-axis diagonal staircases through 4 corners")

	cell := meshdata.Cell{I: 0, J: 0, K: 0}
	a := meshdata.NewCoordinate(0.1, 0.1, 0.1)
	b := meshdata.NewCoordinate(0.9, 0.9, 0.9)

	path := staircaseEdge(cell, a, b)
	chk.IntAssert(len(path), 4)
	if path[0] != (cornerKey{0, 0, 0}) {
		tst.Errorf("expected the path to start at the cell's lower corner, got %v", path[0])
	}
	if path[len(path)-1] != (cornerKey{1, 1, 1}) {
		tst.Errorf("expected the path to end at the cell's upper corner, got %v", path[len(path)-1])
	}
}

func Test_structure01(tst *testing.T) {

	chk.PrintTitle("structure01: a triangle spanning a face staircases to a single quad")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.1, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.9, 0.1, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.9, 0.9, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	out, err := Structure(m)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("out = %d verts, %d elems\n", out.NumVertices(), out.NumElements())

	var quads, lines int
	for _, e := range out.Groups[0].Elements {
		switch {
		case e.IsQuad():
			quads++
		case e.Type == meshdata.Line:
			lines++
		}
	}
	chk.IntAssert(quads, 1)
	chk.IntAssert(lines, 0)
}

func Test_structure02(tst *testing.T) {

	chk.PrintTitle("structure02: a triangle tucked into one corner staircases to a single node")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.1, 0.1))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.2, 0.1, 0.1))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.2, 0.1))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	out, err := Structure(m)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(out.Groups[0].Elements), 1)
	if out.Groups[0].Elements[0].Type != meshdata.Node {
		tst.Errorf("expected a single Node, got %v", out.Groups[0].Elements[0].Type)
	}
}

func Test_structure03(tst *testing.T) {

	chk.PrintTitle("structure03: a Node passes through Structure unchanged")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.5, 0.5, 0.5))
	m.AppendElement(1, meshdata.Element{Type: meshdata.Node, Verts: []int{v0}})

	out, err := Structure(m)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumElements(), 1)
	chk.IntAssert(out.Groups[0].ID, 1)
}

func Test_selectivemesh01(tst *testing.T) {

	chk.PrintTitle("selectivemesh01: elements outside the selected cell set pass through unchanged")

	grid := meshdata.Grid{X: []float64{0, 1, 2}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(1.1, 0.1, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(1.9, 0.1, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(1.9, 0.9, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	cellSet := map[meshdata.Cell]bool{{I: 0, J: 0, K: 0}: true} // cell (1,0,0) is not selected
	out, err := GetSelectiveMesh(m, cellSet)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(out.Groups[0].Elements), 1)
	if !out.Groups[0].Elements[0].IsTriangle() {
		tst.Errorf("expected the unselected triangle to survive untouched")
	}
}

func Test_facehelpers01(tst *testing.T) {

	chk.PrintTitle("facehelpers01: a face with 3 of 4 corners present reports the missing one")

	f := face{axis: 2, value: 0}
	present := map[cornerKey]bool{
		{0, 0, 0}: true,
		{1, 0, 0}: true,
		{1, 1, 0}: true,
		// {0,1,0} missing
	}
	missing, ok := missingCorner(f, present)
	if !ok {
		tst.Fatalf("expected exactly one missing corner")
	}
	if missing != (cornerKey{0, 1, 0}) {
		tst.Errorf("expected the missing corner to be {0,1,0}, got %v", missing)
	}

	present[missing] = true
	_, ok = orderFaceCorners(f, present)
	if !ok {
		tst.Errorf("expected the face to close once the missing corner is filled in")
	}
}

func Test_ispurediagonal01(tst *testing.T) {

	chk.PrintTitle("ispurediagonal01: opposite cube corners are a pure diagonal, face corners are not")

	if !isPureDiagonal(cornerKey{0, 0, 0}, cornerKey{1, 1, 1}) {
		tst.Errorf("expected the main diagonal to be pure")
	}
	if isPureDiagonal(cornerKey{0, 0, 0}, cornerKey{1, 1, 0}) {
		tst.Errorf("expected a face diagonal to not be pure")
	}
}
