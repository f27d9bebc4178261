// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicer

import (
	"github.com/cpmech/gridmesh/collab"
	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// minArea2 is the minimum area a cell-bounded sub-polygon may have; below
// it the polygon is considered a zero-area sliver and dropped before it is
// retriangulated
// (the Collapser does the bulk of degenerate removal, §4.3, but the
// Slicer's own post-condition, §4.2, already rules out exact zero area).
const minArea2 = 1e-20

// sliceTriangle cuts a triangle (three relative-space coordinates) by
// every grid plane strictly inside its bounding box, on all three axes,
// then retriangulates every resulting convex cell-bounded polygon with
// cdt. It returns the triangles as lists of coordinates (not yet
// appended to any mesh arena).
func sliceTriangle(cdt collab.CDT, a, b, c meshdata.Coordinate) ([][3]meshdata.Coordinate, error) {
	w := &workspace{}
	ia := w.add(a)
	ib := w.add(b)
	ic := w.add(c)
	polys := []polygon{{ia, ib, ic}}

	for axis := 0; axis < 3; axis++ {
		lo, hi := minmax3(a.Comp(axis), b.Comp(axis), c.Comp(axis))
		planes := integerPlanesStrictlyBetween(lo, hi)
		if len(planes) == 0 {
			continue
		}
		var next []polygon
		for _, p := range polys {
			next = append(next, splitByPlanes(w, p, axis, planes)...)
		}
		polys = next
	}

	var out [][3]meshdata.Coordinate
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		if polygonArea3D(w, p) < minArea2 {
			continue
		}
		coords := make([]meshdata.Coordinate, len(p))
		for i, id := range p {
			coords[i] = w.verts[id]
		}
		tris, err := cdt.Triangulate(coords)
		if err != nil {
			return nil, NonManifoldError(err)
		}
		for _, tri := range tris {
			t0, t1, t2 := coords[tri[0]], coords[tri[1]], coords[tri[2]]
			out = append(out, [3]meshdata.Coordinate{t0, t1, t2})
		}
	}
	return out, nil
}

// splitByPlanes successively clips poly into the slabs bounded by the
// sorted plane list along axis, each slab then recursively split by the
// remaining planes.
func splitByPlanes(w *workspace, poly polygon, axis int, planes []float64) []polygon {
	if len(planes) == 0 {
		return []polygon{poly}
	}
	p := planes[0]
	rest := planes[1:]
	lower := clipLower(w, poly, axis, p)
	upper := clipUpper(w, poly, axis, p)
	var out []polygon
	if len(lower) >= 3 {
		out = append(out, lower)
	}
	if len(upper) >= 3 {
		out = append(out, splitByPlanes(w, upper, axis, rest)...)
	}
	return out
}

// NonManifoldError wraps a CDT rejection as the typed §7 error.
func NonManifoldError(cause error) error {
	return gridtools.NewStageError("slicer.Slice", gridtools.NonManifoldInput, 0, 0, "CDT rejected a sub-polygon: %v", cause)
}
