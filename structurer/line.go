// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structurer

import (
	"sort"

	"github.com/cpmech/gridmesh/meshdata"
)

// staircaseEdge builds the corner path from a to b within cell,
// advancing one axis at a time (§4.6 step 2). The axis visiting order
// is the order in which the original segment's parametric crossing of
// each differing axis's midpoint occurs; ties (a perfectly symmetric
// diagonal) are broken by ascending axis index.
func staircaseEdge(cell meshdata.Cell, a, b meshdata.Coordinate) []cornerKey {
	start := nearestCorner(cell, a)
	end := nearestCorner(cell, b)

	type axisCrossing struct {
		axis int
		t    float64
	}
	var order []axisCrossing
	for axis := 0; axis < 3; axis++ {
		if start[axis] == end[axis] {
			continue
		}
		al, bl := a.Comp(axis), b.Comp(axis)
		// the threshold separating "rounds to start[axis]" from "rounds
		// to end[axis]" is always the cell's axis-midpoint, since corner
		// keys are a single 0/1 step apart (every element reaching the
		// Structurer is already confined to one cell, §4.6 precondition).
		target := float64(cell.Comp(axis)) + 0.5
		var t float64
		if bl != al {
			t = (target - al) / (bl - al)
		}
		order = append(order, axisCrossing{axis: axis, t: t})
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].t != order[j].t {
			return order[i].t < order[j].t
		}
		return order[i].axis < order[j].axis
	})

	path := []cornerKey{start}
	cur := start
	for _, ac := range order {
		cur = cur.withAxis(ac.axis, end[ac.axis])
		path = append(path, cur)
	}
	return path
}
