// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structurer

import (
	"github.com/cpmech/gridmesh/collapser"
	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// Structure maps every element of a sliced, collapsed mesh onto
// grid-aligned primitives (§4.6). Its precondition is that no element
// already crosses a cell boundary (gridtools.BuildCellElemMap); violating
// that precondition is reported as InvalidInput rather than asserted
// away, since by the time a caller reaches this stage it is fully
// data-dependent.
func Structure(m meshdata.Mesh) (meshdata.Mesh, error) {
	return structureWith(m, nil)
}

// GetSelectiveMesh staircases only elements whose containing cell is in
// cellSet; elements outside are copied unchanged into the same output
// coordinate arena, so a vertex that already sits exactly on a
// staircased corner is shared automatically via exact coordinate
// equality (§4.6 "Selective mode"). No gap filling is done where an
// untransformed boundary does not close along grid lines.
func GetSelectiveMesh(m meshdata.Mesh, cellSet map[meshdata.Cell]bool) (meshdata.Mesh, error) {
	return structureWith(m, cellSet)
}

func structureWith(m meshdata.Mesh, cellSet map[meshdata.Cell]bool) (meshdata.Mesh, error) {
	if _, err := gridtools.BuildCellElemMap(m.Grid, m.Groups, m.Coordinates); err != nil {
		return meshdata.Mesh{}, gridtools.NewStageError("structurer.Structure", gridtools.InvalidInput, 0, 0,
			"input is not fully sliced/collapsed: %v", err)
	}

	out := meshdata.Mesh{Grid: m.Grid.Clone()}
	canon := map[meshdata.Coordinate]int{}
	alloc := func(c meshdata.Coordinate) int {
		if id, ok := canon[c]; ok {
			return id
		}
		id := out.AddVertex(c)
		canon[c] = id
		return id
	}

	for _, g := range m.Groups {
		for ei, e := range g.Elements {
			cell, selected, err := elemCell(m, g, ei, cellSet)
			if err != nil {
				return meshdata.Mesh{}, err
			}
			if cellSet != nil && !selected {
				ids := make([]int, len(e.Verts))
				for i, v := range e.Verts {
					ids[i] = alloc(m.Coordinates[v])
				}
				out.AppendElement(g.ID, meshdata.Element{Verts: ids, Type: e.Type})
				continue
			}

			switch {
			case e.Type == meshdata.Node:
				id := alloc(m.Coordinates[e.Verts[0]])
				out.AppendElement(g.ID, meshdata.Element{Verts: []int{id}, Type: meshdata.Node})

			case e.Type == meshdata.Line && len(e.Verts) == 2:
				path := staircaseEdge(cell, m.Coordinates[e.Verts[0]], m.Coordinates[e.Verts[1]])
				emitPath(&out, g.ID, cell, path, alloc)

			case e.IsTriangle():
				verts := [3]meshdata.Coordinate{m.Coordinates[e.Verts[0]], m.Coordinates[e.Verts[1]], m.Coordinates[e.Verts[2]]}
				for _, p := range staircaseTriangle(cell, verts) {
					ids := make([]int, len(p.Corns))
					for i, k := range p.Corns {
						ids[i] = alloc(cornerCoord(cell, k))
					}
					out.AppendElement(g.ID, meshdata.Element{Verts: ids, Type: p.Type})
				}

			default:
				return meshdata.Mesh{}, gridtools.NewStageError("structurer.Structure", gridtools.InvalidInput, g.ID, ei,
					"Structurer only accepts Node, 2-vertex Line and 3-vertex Surface elements, got %s with %d verts", e.Type, len(e.Verts))
			}
		}
	}

	out = collapser.RemoveOverlappedLowerDimElements(out)
	out = collapser.RemoveRepeatedElements(out, true)
	return out, nil
}

func elemCell(m meshdata.Mesh, g meshdata.Group, ei int, cellSet map[meshdata.Cell]bool) (meshdata.Cell, bool, error) {
	e := g.Elements[ei]
	if len(e.Verts) == 0 {
		return meshdata.Cell{}, false, nil
	}
	lo := m.Coordinates[e.Verts[0]]
	for _, v := range e.Verts[1:] {
		for axis := 0; axis < 3; axis++ {
			if c := m.Coordinates[v].Comp(axis); c < lo.Comp(axis) {
				lo = lo.WithComp(axis, c)
			}
		}
	}
	cell, err := gridtools.ToCell(m.Grid, lo)
	if err != nil {
		return meshdata.Cell{}, false, err
	}
	if cellSet == nil {
		return cell, true, nil
	}
	return cell, cellSet[cell], nil
}

func emitPath(out *meshdata.Mesh, groupID int, cell meshdata.Cell, path []cornerKey, alloc func(meshdata.Coordinate) int) {
	if len(path) == 1 {
		out.AppendElement(groupID, meshdata.Element{Verts: []int{alloc(cornerCoord(cell, path[0]))}, Type: meshdata.Node})
		return
	}
	for i := 0; i+1 < len(path); i++ {
		a := alloc(cornerCoord(cell, path[i]))
		b := alloc(cornerCoord(cell, path[i+1]))
		out.AppendElement(groupID, meshdata.Element{Verts: []int{a, b}, Type: meshdata.Line})
	}
}
