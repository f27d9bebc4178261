// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smoother

import (
	"math"

	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// patchState is the copy-on-spawn scratch a single goroutine migrates
// through steps 4-6 (§4.4/§5, grounded on gofem/msolid.State's GetCopy
// pattern): a local vertex-id slice and its own singular-id view, so
// that no two goroutines ever write through the same coordinate.
type patchState struct {
	p         patch
	singular  map[int]bool
	boundary  []int // vertex ids on the patch boundary loop, in order
	vertexSet map[int]bool
}

// snapToleranceForAngle converts an alignment angle (degrees) into the
// maximum perpendicular offset, in relative units, a point may have
// from a cell plane while still counting as "aligned" with it, under a
// unit-cell tangent approximation.
func snapToleranceForAngle(angleDeg float64) float64 {
	return math.Tan(angleDeg * math.Pi / 180)
}

func nearestInt(v float64) float64 { return math.Round(v) }

// remeshBoundary is a no-op in this design: every patch is built inside
// exactly one cell (buildPatches partitions by cell first), so by
// construction no boundary edge can cross a grid plane for the Smoother
// to resample around (§4.4 step 2's precondition already holds after
// slicing).
func remeshBoundary(m meshdata.Mesh, g meshdata.Group, p patch) {}

// collapsePointsOnCellEdges snaps non-singular vertices that already
// lie within contourAlignmentAngle of a cell edge (two planes at once)
// onto that edge (§4.4 step 3).
func collapsePointsOnCellEdges(coords []meshdata.Coordinate, vertexSet map[int]bool, singular map[int]bool, contourAlignmentAngle float64) {
	tol := snapToleranceForAngle(contourAlignmentAngle)
	pairs := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for v := range vertexSet {
		if singular[v] {
			continue
		}
		c := coords[v]
		comps := [3]float64{c.X, c.Y, c.Z}
		bestPair := -1
		bestOffset := math.Inf(1)
		for pi, pr := range pairs {
			o0 := math.Abs(comps[pr[0]] - nearestInt(comps[pr[0]]))
			o1 := math.Abs(comps[pr[1]] - nearestInt(comps[pr[1]]))
			if o0 <= tol && o1 <= tol {
				combined := o0 + o1
				if combined < bestOffset {
					bestOffset = combined
					bestPair = pi
				}
			}
		}
		if bestPair < 0 {
			continue
		}
		pr := pairs[bestPair]
		comps[pr[0]] = nearestInt(comps[pr[0]])
		comps[pr[1]] = nearestInt(comps[pr[1]])
		coords[v] = meshdata.Coordinate{X: comps[0], Y: comps[1], Z: comps[2]}
	}
}

// collapsePointsOnCellFaces migrates non-singular interior vertices to
// whichever cell face is nearest along the axis closest to already
// being on-plane (§4.4 step 4; unconditional, unlike the angle-gated
// cell-edge step, matching the source's unparametrised signature).
func collapsePointsOnCellFaces(coords []meshdata.Coordinate, vertexSet map[int]bool, singular map[int]bool) {
	for v := range vertexSet {
		if singular[v] {
			continue
		}
		c := coords[v]
		comps := [3]float64{c.X, c.Y, c.Z}
		axis, bestOffset := -1, math.Inf(1)
		for a := 0; a < 3; a++ {
			o := math.Abs(comps[a] - nearestInt(comps[a]))
			if o < bestOffset {
				bestOffset = o
				axis = a
			}
		}
		if axis < 0 || bestOffset >= 0.5-gridtools.Tol {
			continue
		}
		comps[axis] = nearestInt(comps[axis])
		coords[v] = meshdata.Coordinate{X: comps[0], Y: comps[1], Z: comps[2]}
	}
}

// collapsePointsOnFeatureEdges snaps a non-singular vertex onto the
// straight segment joining two singular vertices that bound the same
// boundary loop, when its perpendicular distance to that segment is
// within contourAlignmentAngle's tolerance (§4.4 step 5).
func collapsePointsOnFeatureEdges(coords []meshdata.Coordinate, boundary []int, singular map[int]bool, contourAlignmentAngle float64) {
	if len(boundary) < 3 {
		return
	}
	tol := snapToleranceForAngle(contourAlignmentAngle)
	n := len(boundary)
	for i := 0; i < n; i++ {
		v := boundary[i]
		if !singular[v] {
			continue
		}
		// walk forward to the next singular vertex, snapping everything
		// strictly between them onto the connecting segment.
		for j := (i + 1) % n; j != i; j = (j + 1) % n {
			if singular[boundary[j]] {
				snapRunOntoSegment(coords, boundary, i, j, n, tol)
				break
			}
		}
	}
}

func snapRunOntoSegment(coords []meshdata.Coordinate, boundary []int, i, j, n int, tol float64) {
	a := coords[boundary[i]]
	b := coords[boundary[j]]
	ab := b.Sub(a)
	length := ab.Norm()
	if length < gridtools.Tol {
		return
	}
	dir := ab.Scale(1 / length)
	for k := (i + 1) % n; k != j; k = (k + 1) % n {
		v := boundary[k]
		p := coords[v]
		t := p.Sub(a).Dot(dir)
		proj := a.Add(dir.Scale(t))
		if p.Sub(proj).Norm() <= tol {
			coords[v] = proj
		}
	}
}

// collapseInteriorPointsToBound migrates any still-interior, non-
// singular vertex of the patch onto its nearest boundary vertex, using
// a ProximityIndex (the gosl/gm.Bins-backed index, §4.1, §4.4 step 6).
func collapseInteriorPointsToBound(coords []meshdata.Coordinate, vertexSet map[int]bool, boundary []int) {
	if len(boundary) == 0 {
		return
	}
	boundarySet := map[int]bool{}
	for _, v := range boundary {
		boundarySet[v] = true
	}
	idx := gridtools.NewProximityIndex(meshdata.Coordinate{X: -1e6, Y: -1e6, Z: -1e6}, meshdata.Coordinate{X: 1e6, Y: 1e6, Z: 1e6}, 20)
	for _, v := range boundary {
		idx.Append(coords[v], v)
	}
	for v := range vertexSet {
		if boundarySet[v] {
			continue
		}
		if nearest := idx.Nearest(coords[v]); nearest >= 0 {
			coords[v] = coords[nearest]
		}
	}
}
