// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smoother

import (
	"sync"

	"github.com/cpmech/gridmesh/collapser"
	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// Smooth runs the full per-patch migration pipeline on a sliced and
// collapsed mesh (§4.4). Non-triangle elements pass through unchanged.
func Smooth(m meshdata.Mesh, opts Options) (meshdata.Mesh, error) {
	out := m.Clone()

	for gi := range out.Groups {
		g := out.Groups[gi]
		patches, err := buildPatches(out, g, opts.FeatureDetectionAngle)
		if err != nil {
			return meshdata.Mesh{}, err
		}

		states := make([]*patchState, len(patches))
		for pi, p := range patches {
			singular := buildSingularIds(out, g, p, opts.FeatureDetectionAngle)
			boundary := buildBoundaryLoop(g, p)
			vset := map[int]bool{}
			for _, ei := range p.elems {
				for _, v := range g.Elements[ei].Verts {
					vset[v] = true
				}
			}
			states[pi] = &patchState{p: p, singular: singular, boundary: boundary, vertexSet: vset}
			remeshBoundary(out, g, p)
		}

		// step 3 (contour alignment) is serial: patches in the same group
		// share no vertices at this point (each patch is confined to one
		// cell, and slicing already duplicates shared boundary vertices
		// across cells), so this could run in parallel too, but the source
		// keeps it serial ahead of the parallel region (§4.4/§5).
		for _, st := range states {
			collapsePointsOnCellEdges(out.Coordinates, st.vertexSet, st.singular, opts.ContourAlignmentAngle)
		}

		// steps 4-6 run one goroutine per patch: each patchState owns a
		// disjoint vertex-id set, so no two goroutines ever write the same
		// coordinate slot (§4.4/§5). No concurrency idiom survives in the
		// teacher corpus for this; patchState's copy-before-mutate shape
		// borrows from gofem/msolid.State's GetCopy, but the goroutine
		// fan-out itself is not grounded on any teacher code.
		var wg sync.WaitGroup
		done := make(chan int, len(states))
		for _, st := range states {
			wg.Add(1)
			go func(st *patchState) {
				defer wg.Done()
				collapsePointsOnCellFaces(out.Coordinates, st.vertexSet, st.singular)
				collapsePointsOnFeatureEdges(out.Coordinates, st.boundary, st.singular, opts.ContourAlignmentAngle)
				collapseInteriorPointsToBound(out.Coordinates, st.vertexSet, st.boundary)
				done <- 1
			}(st)
		}
		wg.Wait()
		close(done)
		for range done {
		}
	}

	out = collapser.RemoveRepeatedElements(out, false)

	if err := checkNoCellsAreCrossed(out); err != nil {
		return meshdata.Mesh{}, err
	}
	return out, nil
}

// buildBoundaryLoop orders a patch's boundary vertices into a cycle by
// walking shared-once edges; returns nil if the boundary is not a
// single simple loop (a vertex with other than two boundary edges, or
// more than one loop) or if the patch has no boundary edges at all. An
// isolated triangle yields its three vertices.
func buildBoundaryLoop(g meshdata.Group, p patch) []int {
	edgeCount := map[[2]int]int{}
	adj := map[int][]int{}
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
	for edge, count := range edgeCount {
		if count != 1 {
			continue
		}
		adj[edge[0]] = append(adj[edge[0]], edge[1])
		adj[edge[1]] = append(adj[edge[1]], edge[0])
	}
	if len(adj) == 0 {
		return nil
	}
	for _, nbrs := range adj {
		if len(nbrs) != 2 {
			return nil
		}
	}
	var start int
	for v := range adj {
		start = v
		break
	}
	loop := []int{start}
	visited := map[int]bool{start: true}
	prev := -1
	cur := start
	for {
		next := -1
		for _, cand := range adj[cur] {
			if cand != prev {
				next = cand
				break
			}
		}
		if next < 0 || next == start {
			break
		}
		if visited[next] {
			break
		}
		loop = append(loop, next)
		visited[next] = true
		prev, cur = cur, next
	}
	if len(loop) != len(adj) {
		return nil
	}
	return loop
}

// checkNoCellsAreCrossed is the §4.4 post-condition: fatal if migration
// pushed any triangle's vertices into more than one cell. A triangle
// whose vertices lie on a cell's faces still counts as inside that cell.
func checkNoCellsAreCrossed(m meshdata.Mesh) error {
	for gi, g := range m.Groups {
		for ei, e := range g.Elements {
			if !e.IsTriangle() {
				continue
			}
			lo, hi := m.Coordinates[e.Verts[0]], m.Coordinates[e.Verts[0]]
			for _, v := range e.Verts[1:] {
				for axis := 0; axis < 3; axis++ {
					if c := m.Coordinates[v].Comp(axis); c < lo.Comp(axis) {
						lo = lo.WithComp(axis, c)
					} else if c > hi.Comp(axis) {
						hi = hi.WithComp(axis, c)
					}
				}
			}
			cell, err := gridtools.ToCell(m.Grid, lo)
			if err != nil {
				return err
			}
			for axis := 0; axis < 3; axis++ {
				if hi.Comp(axis) > float64(cell.Comp(axis)+1)+gridtools.Tol {
					return gridtools.NewStageError("smoother.Smooth", gridtools.SmoothingBrokeInvariant, g.ID, ei,
						"triangle crosses cell boundary after smoothing (lower cell %v, upper bound %v)", cell, hi)
				}
			}
		}
	}
	return nil
}
