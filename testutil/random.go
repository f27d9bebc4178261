// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil

import (
	"math/rand"

	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// RandomGrid builds a grid with between 2 and 10 planes per axis (§8's
// property-based generator), using rng for every draw so callers get
// reproducible sequences by seeding rng themselves.
func RandomGrid(rng *rand.Rand, lo, hi float64) meshdata.Grid {
	axis := func() []float64 {
		n := 2 + rng.Intn(9)
		planes := gridtools.Linspace(lo, hi, n)
		return planes
	}
	return meshdata.Grid{X: axis(), Y: axis(), Z: axis()}
}

// RandomMesh builds a single-group triangle soup of between 1 and 200
// triangles (§8), with vertices uniformly sampled in grid's bounding
// box, suitable as Slicer input.
func RandomMesh(rng *rand.Rand, grid meshdata.Grid) meshdata.Mesh {
	m := meshdata.Mesh{Grid: grid.Clone()}
	n := 1 + rng.Intn(200)
	var elems []meshdata.Element
	for i := 0; i < n; i++ {
		var verts [3]int
		for j := 0; j < 3; j++ {
			c := meshdata.NewCoordinate(
				randInRange(rng, grid.X[0], grid.X[len(grid.X)-1]),
				randInRange(rng, grid.Y[0], grid.Y[len(grid.Y)-1]),
				randInRange(rng, grid.Z[0], grid.Z[len(grid.Z)-1]),
			)
			verts[j] = m.AddVertex(c)
		}
		elems = append(elems, meshdata.Element{Type: meshdata.Surface, Verts: verts[:]})
	}
	m.Groups = []meshdata.Group{{ID: 0, Elements: elems}}
	return m
}

func randInRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
