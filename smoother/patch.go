// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smoother

import (
	"math"

	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// patch is a disjoint smooth set: the indices (within one group) of
// triangles that are mutually connected by shared edges whose dihedral
// angle stays within the feature-detection angle (§4.4, grounded on
// utils::Geometry::buildDisjointSmoothSets).
type patch struct {
	cell  meshdata.Cell
	elems []int // indices into the owning group's Elements
}

func normal(m meshdata.Mesh, e meshdata.Element) meshdata.Coordinate {
	a, b, c := m.Coordinates[e.Verts[0]], m.Coordinates[e.Verts[1]], m.Coordinates[e.Verts[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	norm := n.Norm()
	if norm < gridtools.Tol {
		return n
	}
	return n.Scale(1 / norm)
}

func angleBetween(a, b meshdata.Coordinate) float64 {
	d := a.Dot(b)
	if d > 1 {
		d = 1
	}
	if d < -1 {
		d = -1
	}
	return math.Acos(d) * 180 / math.Pi
}

// sharedEdge reports whether e1 and e2 (triangles) share exactly two
// vertex ids.
func sharedEdge(e1, e2 meshdata.Element) bool {
	shared := 0
	for _, v1 := range e1.Verts {
		for _, v2 := range e2.Verts {
			if v1 == v2 {
				shared++
			}
		}
	}
	return shared == 2
}

// buildPatches partitions a group's triangle indices into per-cell
// disjoint smooth sets. Non-triangle elements are ignored: they pass
// through Smooth unchanged.
func buildPatches(m meshdata.Mesh, g meshdata.Group, featureAngle float64) ([]patch, error) {
	byCell := map[meshdata.Cell][]int{}
	for ei, e := range g.Elements {
		if !e.IsTriangle() {
			continue
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
			return nil, err
		}
		byCell[cell] = append(byCell[cell], ei)
	}

	var patches []patch
	for cell, idxs := range byCell {
		parent := make(map[int]int, len(idxs))
		for _, i := range idxs {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			if parent[x] != x {
				parent[x] = find(parent[x])
			}
			return parent[x]
		}
		union := func(a, b int) {
			ra, rb := find(a), find(b)
			if ra != rb {
				parent[ra] = rb
			}
		}
		for a := 0; a < len(idxs); a++ {
			for b := a + 1; b < len(idxs); b++ {
				ea, eb := g.Elements[idxs[a]], g.Elements[idxs[b]]
				if !sharedEdge(ea, eb) {
					continue
				}
				if angleBetween(normal(m, ea), normal(m, eb)) <= featureAngle {
					union(idxs[a], idxs[b])
				}
			}
		}
		groups := map[int][]int{}
		for _, i := range idxs {
			r := find(i)
			groups[r] = append(groups[r], i)
		}
		for _, elems := range groups {
			patches = append(patches, patch{cell: cell, elems: elems})
		}
	}
	return patches, nil
}
