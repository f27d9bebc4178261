// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collapser reduces a sliced mesh to tolerance-clean form:
// quantise, fuse coincident vertices, remove unreferenced coordinates,
// collapse in-line-degenerate triangles, and remove repeated elements
// (§4.3).
package collapser

import (
	"math"

	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// maxDegenerateIterations bounds the degenerate-triangle collapse loop
// (§4.3 step 4).
const maxDegenerateIterations = 1000

// Collapse runs the full Collapser pipeline: round, fuse, clean, collapse
// degenerate triangles, remove repeated elements, and check no null
// areas remain. decimalPlaces sets the quantisation tolerance (factor =
// 10^decimalPlaces).
func Collapse(m meshdata.Mesh, decimalPlaces int) (meshdata.Mesh, error) {
	factor := math.Pow(10, float64(decimalPlaces))

	out := roundCoords(m, factor)
	out = fuseAndClean(out, factor)

	degenArea := 0.4 / (factor * factor)
	out, err := collapseDegenerate(out, factor, degenArea)
	if err != nil {
		return meshdata.Mesh{}, err
	}

	out = removeRepeatedElements(out, false)

	if err := checkNoNullAreas(out, degenArea); err != nil {
		return meshdata.Mesh{}, err
	}
	return out, nil
}

// roundCoords quantises every coordinate to the factor (§4.3 step 1).
func roundCoords(m meshdata.Mesh, factor float64) meshdata.Mesh {
	out := m.Clone()
	for i, c := range out.Coordinates {
		out.Coordinates[i] = c.Round(factor)
	}
	return out
}

// fuseAndClean fuses vertex ids that share a rounded coordinate (smallest
// id wins, §4.3 step 2, §5's "canonical-id rule... reproducible across
// runs"), remaps every element reference, then drops now-unreferenced
// coordinates and renumbers the survivors densely (§4.3 step 3).
func fuseAndClean(m meshdata.Mesh, factor float64) meshdata.Mesh {
	canon := make(map[meshdata.Coordinate]int, len(m.Coordinates))
	remap := make([]int, len(m.Coordinates))
	for i, c := range m.Coordinates {
		if id, ok := canon[c]; ok {
			if i < id {
				// first-seen id is already the smallest since we scan in
				// increasing i order, so this branch is unreachable; kept
				// for clarity of the "smallest id wins" rule.
				canon[c] = i
			}
			remap[i] = canon[c]
			continue
		}
		canon[c] = i
		remap[i] = i
	}

	out := meshdata.Mesh{Grid: m.Grid}
	groups := make([]meshdata.Group, len(m.Groups))
	for gi, g := range m.Groups {
		groups[gi] = meshdata.Group{ID: g.ID}
		for _, e := range g.Elements {
			ne := e.Clone()
			for i, v := range ne.Verts {
				ne.Verts[i] = remap[v]
			}
			groups[gi].Elements = append(groups[gi].Elements, ne)
		}
	}

	used := map[int]bool{}
	for _, g := range groups {
		for _, e := range g.Elements {
			for _, v := range e.Verts {
				used[v] = true
			}
		}
	}
	dense := make(map[int]int, len(used))
	var coords []meshdata.Coordinate
	for i := range m.Coordinates {
		if used[i] {
			dense[i] = len(coords)
			coords = append(coords, m.Coordinates[i])
		}
	}
	for gi := range groups {
		for ei := range groups[gi].Elements {
			verts := groups[gi].Elements[ei].Verts
			for i, v := range verts {
				verts[i] = dense[v]
			}
		}
	}
	out.Coordinates = coords
	out.Groups = groups
	return out
}

// triangleArea2 returns twice the area of the triangle a,b,c.
func triangleArea2(a, b, c meshdata.Coordinate) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Norm()
}

// collapseDegenerate repeatedly finds a triangle whose area is below
// degenArea, snaps its non-longest-edge vertex onto the nearer endpoint
// of its longest edge, and re-cleans, up to maxDegenerateIterations
// (§4.3 step 4).
func collapseDegenerate(m meshdata.Mesh, factor, degenArea float64) (meshdata.Mesh, error) {
	cur := m
	for iter := 0; iter < maxDegenerateIterations; iter++ {
		gi, ei, found := findDegenerateTriangle(cur, degenArea)
		if !found {
			return cur, nil
		}
		cur = snapDegenerateTriangle(cur, gi, ei)
		cur = fuseAndClean(cur, factor)
		cur = dropCollapsedElements(cur)
	}
	if _, _, found := findDegenerateTriangle(cur, degenArea); found {
		return meshdata.Mesh{}, gridtools.NewStageError("collapser.Collapse", gridtools.DegenerateAfterCollapse, 0, 0,
			"degenerate triangles remain after %d collapse iterations", maxDegenerateIterations)
	}
	return cur, nil
}

func findDegenerateTriangle(m meshdata.Mesh, degenArea float64) (gi, ei int, found bool) {
	for gidx, g := range m.Groups {
		for eidx, e := range g.Elements {
			if !e.IsTriangle() {
				continue
			}
			a, b, c := m.Coordinates[e.Verts[0]], m.Coordinates[e.Verts[1]], m.Coordinates[e.Verts[2]]
			if triangleArea2(a, b, c)/2 < degenArea {
				return gidx, eidx, true
			}
		}
	}
	return 0, 0, false
}

// snapDegenerateTriangle finds the longest edge of the triangle at
// (gi,ei) and snaps its remaining vertex onto the nearer of the two
// endpoints of that edge, by rewriting that vertex's coordinate in place
// (fuseAndClean will then merge the two ids on the next pass).
func snapDegenerateTriangle(m meshdata.Mesh, gi, ei int) meshdata.Mesh {
	out := m.Clone()
	verts := out.Groups[gi].Elements[ei].Verts
	pts := [3]meshdata.Coordinate{out.Coordinates[verts[0]], out.Coordinates[verts[1]], out.Coordinates[verts[2]]}

	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	longest, longestLen := 0, -1.0
	for i, e := range edges {
		l := pts[e[0]].Sub(pts[e[1]]).Norm()
		if l > longestLen {
			longest, longestLen = i, l
		}
	}
	p, q := edges[longest][0], edges[longest][1]
	other := 3 - p - q // the index not in {p,q}

	dp := pts[other].Sub(pts[p]).Norm()
	dq := pts[other].Sub(pts[q]).Norm()
	target := p
	if dq < dp {
		target = q
	}
	out.Coordinates[verts[other]] = out.Coordinates[verts[target]]
	return out
}

// dropCollapsedElements removes elements whose vertex list no longer has
// the minimum number of distinct ids for their type (a triangle with 2
// ids, a line with 1).
func dropCollapsedElements(m meshdata.Mesh) meshdata.Mesh {
	out := meshdata.Mesh{Grid: m.Grid, Coordinates: m.Coordinates}
	for _, g := range m.Groups {
		ng := meshdata.Group{ID: g.ID}
		for _, e := range g.Elements {
			if !stillValid(e) {
				continue
			}
			ng.Elements = append(ng.Elements, e)
		}
		out.Groups = append(out.Groups, ng)
	}
	return out
}

func stillValid(e meshdata.Element) bool {
	distinct := map[int]bool{}
	for _, v := range e.Verts {
		distinct[v] = true
	}
	switch e.Type {
	case meshdata.Node:
		return len(distinct) == 1
	case meshdata.Line:
		return len(distinct) == 2
	case meshdata.Surface:
		return len(distinct) == len(e.Verts)
	case meshdata.Volume:
		return len(distinct) == len(e.Verts)
	}
	return true
}

// checkNoNullAreas is the §4.3 step 6 post-condition: fatal if it fails.
func checkNoNullAreas(m meshdata.Mesh, degenArea float64) error {
	for gi, g := range m.Groups {
		for ei, e := range g.Elements {
			if !e.IsTriangle() {
				continue
			}
			a, b, c := m.Coordinates[e.Verts[0]], m.Coordinates[e.Verts[1]], m.Coordinates[e.Verts[2]]
			if triangleArea2(a, b, c)/2 < degenArea {
				return gridtools.NewStageError("collapser.Collapse", gridtools.DegenerateAfterCollapse, g.ID, ei,
					"triangle area %g is below tolerance", triangleArea2(a, b, c)/2)
			}
		}
	}
	return nil
}
