// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collab

import "github.com/cpmech/gridmesh/meshdata"

// FanCDT is the default CDT implementation (§4.2A). Every polygon the
// Slicer ever hands a CDT is the result of repeatedly cutting a convex
// polygon (a triangle) by half-spaces, so it is itself always convex; a
// deterministic fan from its lowest-index vertex is therefore always a
// valid triangulation (not necessarily minimal-angle, but that is not a
// Slicer postcondition).
type FanCDT struct{}

// Triangulate implements CDT.
func (FanCDT) Triangulate(poly []meshdata.Coordinate) ([][3]int, error) {
	n := len(poly)
	if n < 3 {
		return nil, nil
	}
	out := make([][3]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		out = append(out, [3]int{0, i, i + 1})
	}
	return out, nil
}

// PassthroughRepairer returns its input unchanged; it is the Repairer the
// off-grid driver applies to OffgridOptions.VolumeGroups when
// RepairerName is empty (§4.7). Groups not listed there are copied
// through without any Repairer.
type PassthroughRepairer struct{}

// Repair implements Repairer.
func (PassthroughRepairer) Repair(m meshdata.Mesh) (meshdata.Mesh, error) {
	return m, nil
}

// ConvexHullRepairer is a demo Repairer used by tests that exercise
// VolumeGroups routing without pulling in a real geometry-repair
// dependency: it fuses exactly-coincident vertices (the cheapest
// "repair" a soup of triangles can need) and otherwise leaves the mesh
// untouched. It is not a substitute for a real repairer (no hole
// filling, no non-manifold-edge resolution).
type ConvexHullRepairer struct{}

// Repair implements Repairer.
func (ConvexHullRepairer) Repair(m meshdata.Mesh) (meshdata.Mesh, error) {
	out := m.Clone()
	canon := make(map[meshdata.Coordinate]int, len(out.Coordinates))
	remap := make([]int, len(out.Coordinates))
	var fused []meshdata.Coordinate
	for i, c := range out.Coordinates {
		if id, ok := canon[c]; ok {
			remap[i] = id
			continue
		}
		id := len(fused)
		fused = append(fused, c)
		canon[c] = id
		remap[i] = id
	}
	out.Coordinates = fused
	for gi := range out.Groups {
		for ei := range out.Groups[gi].Elements {
			verts := out.Groups[gi].Elements[ei].Verts
			for vi, v := range verts {
				verts[vi] = remap[v]
			}
		}
	}
	return out, nil
}

// PassthroughManifolder treats its input as already-closed surface mesh
// and returns it unchanged; a real implementation would compute the
// boundary of a tetrahedral volume mesh.
type PassthroughManifolder struct{}

// ExtractSurface implements Manifolder.
func (PassthroughManifolder) ExtractSurface(m meshdata.Mesh) (meshdata.Mesh, error) {
	return m, nil
}
