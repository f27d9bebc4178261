// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gridmesh/meshdata"
	"github.com/cpmech/gridmesh/report"
)

func Test_buildstructuredmesh01(tst *testing.T) {

	chk.PrintTitle("buildstructuredmesh01: a small triangle round-trips through the structured pipeline")

	grid := meshdata.Grid{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.2, 0.2, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(0.8, 0.2, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.2, 0.8, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	out, err := BuildStructuredMesh(m, 4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("out = %d verts, %d elems\n", out.NumVertices(), out.NumElements())
	if out.NumElements() == 0 {
		tst.Errorf("expected at least one element to survive staircasing")
	}
	chk.Scalar(tst, "grid.X[0]", 1e-12, out.Grid.X[0], grid.X[0])
}

func Test_buildoffgridmesh01(tst *testing.T) {

	chk.PrintTitle("buildoffgridmesh01: the default off-grid pipeline runs end to end")

	grid := meshdata.Grid{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.3, 0.3, 0))
	v1 := m.AddVertex(meshdata.NewCoordinate(1.3, 0.3, 0))
	v2 := m.AddVertex(meshdata.NewCoordinate(0.3, 1.3, 0))
	m.AppendElement(0, meshdata.Element{Type: meshdata.Surface, Verts: []int{v0, v1, v2}})

	out, err := BuildOffgridMesh(m, DefaultOffgridOptions())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if out.NumElements() == 0 {
		tst.Errorf("expected the off-grid pipeline to produce at least one element")
	}
}

func Test_routevolumegroups01(tst *testing.T) {

	chk.PrintTitle("routevolumegroups01: a group outside volumeGroups is copied through untouched")

	grid := meshdata.Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := meshdata.NewMesh(grid)
	v0 := m.AddVertex(meshdata.NewCoordinate(0.1, 0.1, 0.1))
	m.AppendElement(3, meshdata.Element{Type: meshdata.Node, Verts: []int{v0}})

	out, err := routeVolumeGroups(m, nil, nil, nil, report.NullLogger{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumElements(), 1)
}
