// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil

import (
	"math"

	"github.com/cpmech/gridmesh/meshdata"
)

// Sphere builds a topologically closed triangle soup approximating a
// unit sphere by recursively subdividing an octahedron nsubdiv times
// (§8's closedness fixture). Every edge keeps even valence at every
// subdivision level, since subdivision only ever splits a triangle into
// four without introducing a boundary.
func Sphere(grid meshdata.Grid, nsubdiv int) meshdata.Mesh {
	verts := []meshdata.Coordinate{
		{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
	}
	faces := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	for i := 0; i < nsubdiv; i++ {
		verts, faces = subdivide(verts, faces)
	}
	return buildSoup(grid, verts, faces, normalizeRadius(verts, 1.0))
}

// Alhambra builds a small faceted cone: an apex at z = 1 over a ring of
// nsides vertices at z = 0, closed off by a triangulated base disc (a fan
// from its centre), topologically closed like Sphere.
func Alhambra(grid meshdata.Grid, nsides int) meshdata.Mesh {
	var verts []meshdata.Coordinate
	apex := 0
	verts = append(verts, meshdata.NewCoordinate(0, 0, 1))
	ring := make([]int, nsides)
	for i := 0; i < nsides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(nsides)
		verts = append(verts, meshdata.NewCoordinate(math.Cos(theta), math.Sin(theta), 0))
		ring[i] = i + 1
	}
	center := len(verts)
	verts = append(verts, meshdata.NewCoordinate(0, 0, 0))

	var faces [][3]int
	for i := 0; i < nsides; i++ {
		a, b := ring[i], ring[(i+1)%nsides]
		faces = append(faces, [3]int{apex, a, b})
		faces = append(faces, [3]int{center, b, a})
	}
	return buildSoup(grid, verts, faces, nil)
}

func subdivide(verts []meshdata.Coordinate, faces [][3]int) ([]meshdata.Coordinate, [][3]int) {
	midCache := map[[2]int]int{}
	mid := func(a, b int) int {
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if id, ok := midCache[key]; ok {
			return id
		}
		m := verts[a].Lerp(verts[b], 0.5)
		verts = append(verts, m)
		id := len(verts) - 1
		midCache[key] = id
		return id
	}
	var out [][3]int
	for _, f := range faces {
		ab := mid(f[0], f[1])
		bc := mid(f[1], f[2])
		ca := mid(f[2], f[0])
		out = append(out,
			[3]int{f[0], ab, ca},
			[3]int{ab, f[1], bc},
			[3]int{ca, bc, f[2]},
			[3]int{ab, bc, ca},
		)
	}
	return verts, out
}

func normalizeRadius(verts []meshdata.Coordinate, r float64) []meshdata.Coordinate {
	out := make([]meshdata.Coordinate, len(verts))
	for i, v := range verts {
		n := v.Norm()
		if n == 0 {
			out[i] = v
			continue
		}
		out[i] = v.Scale(r / n)
	}
	return out
}

// buildSoup maps unit-sphere-ish verts into grid's bounding box (scaled
// to 90% of the half-extent so the soup stays interior) and emits a
// single-group mesh of faces.
func buildSoup(grid meshdata.Grid, verts []meshdata.Coordinate, faces [][3]int, normalized []meshdata.Coordinate) meshdata.Mesh {
	if normalized == nil {
		normalized = verts
	}
	cx := (grid.X[0] + grid.X[len(grid.X)-1]) / 2
	cy := (grid.Y[0] + grid.Y[len(grid.Y)-1]) / 2
	cz := (grid.Z[0] + grid.Z[len(grid.Z)-1]) / 2
	hx := (grid.X[len(grid.X)-1] - grid.X[0]) / 2 * 0.9
	hy := (grid.Y[len(grid.Y)-1] - grid.Y[0]) / 2 * 0.9
	hz := (grid.Z[len(grid.Z)-1] - grid.Z[0]) / 2 * 0.9

	m := meshdata.NewMesh(grid.Clone())
	ids := make([]int, len(normalized))
	for i, v := range normalized {
		c := meshdata.NewCoordinate(cx+v.X*hx, cy+v.Y*hy, cz+v.Z*hz)
		ids[i] = m.AddVertex(c)
	}
	var elems []meshdata.Element
	for _, f := range faces {
		elems = append(elems, meshdata.Element{
			Type:  meshdata.Surface,
			Verts: []int{ids[f[0]], ids[f[1]], ids[f[2]]},
		})
	}
	m.Groups = []meshdata.Group{{ID: 0, Elements: elems}}
	return m
}
