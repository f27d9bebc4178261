// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicer

import (
	"github.com/cpmech/gridmesh/collab"
	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// Slice cuts every triangle and line in m by the grid's axis-aligned
// planes so that every output element lies inside exactly one cell
// (§4.2). Node elements pass through unchanged (a point cannot cross a
// plane). Quad/Volume elements are rejected with InvalidInput: by the
// time a mesh reaches the Slicer, volume groups have already been routed
// through the Repairer/Manifolder into triangulated surfaces by the
// driver (§4.7), so the Slicer itself only ever needs to handle
// triangles, lines and nodes.
func Slice(m meshdata.Mesh, cdt collab.CDT) (meshdata.Mesh, error) {
	if cdt == nil {
		cdt = collab.GetCDT("fan")
	}
	out := meshdata.Mesh{Grid: m.Grid.Clone()}

	for gi, g := range m.Groups {
		for ei, e := range g.Elements {
			switch {
			case e.Type == meshdata.Node:
				ne := e.Clone()
				for i, v := range ne.Verts {
					ne.Verts[i] = out.AddVertex(m.Coordinates[v])
				}
				out.AppendElement(g.ID, ne)

			case e.Type == meshdata.Line && len(e.Verts) == 2:
				a, b := m.Coordinates[e.Verts[0]], m.Coordinates[e.Verts[1]]
				points := sliceLine(a, b)
				if len(points) < 2 {
					id := out.AddVertex(points[0])
					out.AppendElement(g.ID, meshdata.Element{Verts: []int{id}, Type: meshdata.Node})
					continue
				}
				ids := make([]int, len(points))
				for i, p := range points {
					ids[i] = out.AddVertex(p)
				}
				for i := 0; i < len(ids)-1; i++ {
					out.AppendElement(g.ID, meshdata.Element{Verts: []int{ids[i], ids[i+1]}, Type: meshdata.Line})
				}

			case e.IsTriangle():
				a, b, c := m.Coordinates[e.Verts[0]], m.Coordinates[e.Verts[1]], m.Coordinates[e.Verts[2]]
				tris, err := sliceTriangle(cdt, a, b, c)
				if err != nil {
					return meshdata.Mesh{}, annotate(err, g.ID, ei)
				}
				for _, t := range tris {
					ids := [3]int{out.AddVertex(t[0]), out.AddVertex(t[1]), out.AddVertex(t[2])}
					out.AppendElement(g.ID, meshdata.Element{Verts: ids[:], Type: meshdata.Surface})
				}

			default:
				return meshdata.Mesh{}, gridtools.NewStageError("slicer.Slice", gridtools.InvalidInput, g.ID, ei,
					"Slicer only accepts Node, 2-vertex Line and 3-vertex Surface elements, got %s with %d verts", e.Type, len(e.Verts))
			}
		}
	}
	return out, nil
}

func annotate(err error, groupID, elemIdx int) error {
	if se, ok := err.(*gridtools.StageError); ok {
		se.GroupID = groupID
		se.ElemIdx = elemIdx
		return se
	}
	return err
}
