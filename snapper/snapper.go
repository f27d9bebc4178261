// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapper

import (
	"math"

	"github.com/cpmech/gridmesh/collapser"
	"github.com/cpmech/gridmesh/meshdata"
)

// Snap implements §4.5: every coordinate within ForbiddenLength of a
// grid plane (or of one of EdgePoints interior sticky samples per cell
// edge) is moved onto it; elements that collapse as a result are
// downgraded (Surface with 2 distinct vertex positions -> Line, 1 ->
// Node; Line with 1 distinct position -> Node) rather than dropped. A
// Node stays a Node; only a Line/Surface with no vertices at all is
// dropped. Coordinates are not fused: a downgraded element keeps the
// first vertex id at each distinct position.
func Snap(m meshdata.Mesh, opts Options) (meshdata.Mesh, error) {
	out := m.Clone()

	sticky := [3][]float64{
		stickyValues(out.Grid.Nplanes(0), opts.EdgePoints),
		stickyValues(out.Grid.Nplanes(1), opts.EdgePoints),
		stickyValues(out.Grid.Nplanes(2), opts.EdgePoints),
	}

	for i, c := range out.Coordinates {
		out.Coordinates[i] = meshdata.Coordinate{
			X: snapComponent(c.X, sticky[0], opts.ForbiddenLength),
			Y: snapComponent(c.Y, sticky[1], opts.ForbiddenLength),
			Z: snapComponent(c.Z, sticky[2], opts.ForbiddenLength),
		}
	}

	for gi := range out.Groups {
		var kept []meshdata.Element
		for _, e := range out.Groups[gi].Elements {
			ne, ok := downgrade(out.Coordinates, e)
			if ok {
				kept = append(kept, ne)
			}
		}
		out.Groups[gi].Elements = kept
	}

	out = collapser.RemoveRepeatedElements(out, false)
	return out, nil
}

// stickyValues builds the sorted set of "sticky" targets along one
// axis: every grid plane index 0..nplanes-1, plus edgePoints evenly
// spaced interior samples within each unit cell.
func stickyValues(nplanes, edgePoints int) []float64 {
	var out []float64
	for k := 0; k < nplanes-1; k++ {
		out = append(out, float64(k))
		for s := 1; s <= edgePoints; s++ {
			out = append(out, float64(k)+float64(s)/float64(edgePoints+1))
		}
	}
	out = append(out, float64(nplanes-1))
	return out
}

func snapComponent(v float64, sticky []float64, forbidden float64) float64 {
	if forbidden <= 0 {
		return v
	}
	best, bestDist := v, math.Inf(1)
	for _, s := range sticky {
		d := math.Abs(v - s)
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	if bestDist <= forbidden {
		return best
	}
	return v
}

// downgrade returns the element's type lowered to match however many
// distinct vertex positions remain after snapping (ids whose coordinates
// coincide count once; with coords nil, ids alone are compared), or
// ok=false if the element must be dropped entirely (no distinct vertices
// left to anchor it).
func downgrade(coords []meshdata.Coordinate, e meshdata.Element) (meshdata.Element, bool) {
	distinctOrder := distinctInOrder(coords, e.Verts)
	switch e.Type {
	case meshdata.Node:
		return meshdata.Element{Verts: distinctOrder[:1], Type: meshdata.Node}, len(distinctOrder) >= 1
	case meshdata.Line:
		switch len(distinctOrder) {
		case 0:
			return meshdata.Element{}, false
		case 1:
			return meshdata.Element{Verts: distinctOrder, Type: meshdata.Node}, true
		default:
			return meshdata.Element{Verts: []int{distinctOrder[0], distinctOrder[len(distinctOrder)-1]}, Type: meshdata.Line}, true
		}
	case meshdata.Surface:
		switch len(distinctOrder) {
		case 0:
			return meshdata.Element{}, false
		case 1:
			return meshdata.Element{Verts: distinctOrder, Type: meshdata.Node}, true
		case 2:
			return meshdata.Element{Verts: distinctOrder, Type: meshdata.Line}, true
		default:
			return meshdata.Element{Verts: e.Verts, Type: meshdata.Surface}, true
		}
	default:
		return e, true
	}
}

func distinctInOrder(coords []meshdata.Coordinate, verts []int) []int {
	seen := map[int]bool{}
	seenAt := map[meshdata.Coordinate]bool{}
	var out []int
	for _, v := range verts {
		if seen[v] {
			continue
		}
		seen[v] = true
		if v < len(coords) {
			if seenAt[coords[v]] {
				continue
			}
			seenAt[coords[v]] = true
		}
		out = append(out, v)
	}
	return out
}
