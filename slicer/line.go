// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicer

import (
	"sort"

	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// sliceLine subdivides the line a->b at every grid-plane crossing,
// producing a chain of sub-lines each inside one cell; if the chain
// collapses to a single point, that point is returned alone (the caller
// emits a Node instead of a Line, §4.2).
func sliceLine(a, b meshdata.Coordinate) []meshdata.Coordinate {
	var ts []float64
	for axis := 0; axis < 3; axis++ {
		al, bl := a.Comp(axis), b.Comp(axis)
		if al == bl {
			continue
		}
		loAx, hiAx := al, bl
		if loAx > hiAx {
			loAx, hiAx = hiAx, loAx
		}
		for _, p := range integerPlanesStrictlyBetween(loAx, hiAx) {
			t := (p - al) / (bl - al)
			ts = append(ts, t)
		}
	}
	ts = append(ts, 0.0, 1.0)
	sort.Float64s(ts)

	var points []meshdata.Coordinate
	for _, t := range ts {
		p := a.Lerp(b, t)
		if len(points) > 0 && points[len(points)-1].ApproxEqual(p, gridtools.Tol) {
			continue
		}
		points = append(points, p)
	}
	return points
}
