// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smoother

import "github.com/cpmech/gridmesh/meshdata"

// buildSingularIds returns the set of vertex ids, among a patch's
// boundary vertices, that sit at a feature edge or corner: a boundary
// vertex with other than exactly two boundary edges (a junction), or
// whose two boundary edges turn by more than featureAngle away from a
// straight line. Singular vertices are pinned: no migration step moves
// them (§4.4 step 1).
func buildSingularIds(m meshdata.Mesh, g meshdata.Group, p patch, featureAngle float64) map[int]bool {
	edgeCount := map[[2]int]int{}
	bump := func(a, b int) {
		k := [2]int{a, b}
		if a > b {
			k = [2]int{b, a}
		}
		edgeCount[k]++
	}
	for _, ei := range p.elems {
		e := g.Elements[ei]
		n := len(e.Verts)
		for i := 0; i < n; i++ {
			bump(e.Verts[i], e.Verts[(i+1)%n])
		}
	}

	boundary := map[int][][2]int{} // vertex -> its incident boundary edges
	for edge, count := range edgeCount {
		if count != 1 {
			continue
		}
		boundary[edge[0]] = append(boundary[edge[0]], edge)
		boundary[edge[1]] = append(boundary[edge[1]], edge)
	}

	singular := map[int]bool{}
	for v, edges := range boundary {
		if len(edges) != 2 {
			singular[v] = true
			continue
		}
		other := func(e [2]int) int {
			if e[0] == v {
				return e[1]
			}
			return e[0]
		}
		a := m.Coordinates[other(edges[0])].Sub(m.Coordinates[v])
		b := m.Coordinates[other(edges[1])].Sub(m.Coordinates[v])
		na, nb := a.Norm(), b.Norm()
		if na == 0 || nb == 0 {
			singular[v] = true
			continue
		}
		angle := angleBetween(a.Scale(1/na), b.Scale(1/nb))
		// a straight pass-through boundary has its two edges pointing in
		// opposite directions (angle ~ 180); deviation beyond featureAngle
		// marks a sharp corner.
		if angle < 180-featureAngle {
			singular[v] = true
		}
	}
	return singular
}
