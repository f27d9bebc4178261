// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshdata

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("mesh01: vertex arena and element appending")

	grid := Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := NewMesh(grid)

	v0 := m.AddVertex(NewCoordinate(0, 0, 0))
	v1 := m.AddVertex(NewCoordinate(1, 0, 0))
	v2 := m.AddVertex(NewCoordinate(0, 1, 0))
	chk.IntAssert(v0, 0)
	chk.IntAssert(v1, 1)
	chk.IntAssert(v2, 2)
	chk.IntAssert(m.NumVertices(), 3)

	m.AppendElement(5, Element{Type: Surface, Verts: []int{v0, v1, v2}})
	m.AppendElement(5, Element{Type: Line, Verts: []int{v0, v1}})
	chk.IntAssert(len(m.Groups), 1)
	chk.IntAssert(m.Groups[0].ID, 5)
	chk.IntAssert(m.NumElements(), 2)
}

func Test_mesh02(tst *testing.T) {

	chk.PrintTitle("mesh02: clone independence")

	grid := Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := NewMesh(grid)
	m.AddVertex(NewCoordinate(0, 0, 0))
	m.AppendElement(0, Element{Type: Node, Verts: []int{0}})

	n := m.Clone()
	n.Coordinates[0] = NewCoordinate(9, 9, 9)
	n.Groups[0].Elements[0].Verts[0] = 42

	chk.Scalar(tst, "original unaffected", 1e-15, m.Coordinates[0].X, 0)
	chk.IntAssert(m.Groups[0].Elements[0].Verts[0], 0)
}

func Test_mesh03(tst *testing.T) {

	chk.PrintTitle("mesh03: Walk visits every element once")

	grid := Grid{X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}}
	m := NewMesh(grid)
	m.AddVertex(NewCoordinate(0, 0, 0))
	m.AppendElement(0, Element{Type: Node, Verts: []int{0}})
	m.AppendElement(1, Element{Type: Node, Verts: []int{0}})

	count := 0
	m.Walk(func(gi, ei int, e Element) { count++ })
	chk.IntAssert(count, 2)
}
