// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testutil provides a property-test harness for the pipeline
// stages, grounded on gofem/msolid.Driver: run a prescribed sequence of
// inputs through a stage, check invariants after every step, and report
// exactly which step broke.
package testutil

import (
	"fmt"
	"math"

	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// CheckIndexValidity asserts every element's vertex ids index a real
// coordinate (§8's "Index validity").
func CheckIndexValidity(m meshdata.Mesh) error {
	n := len(m.Coordinates)
	for _, g := range m.Groups {
		for _, e := range g.Elements {
			for _, v := range e.Verts {
				if v < 0 || v >= n {
					return fmt.Errorf("index validity: vertex %d out of range [0,%d) in group %d", v, n, g.ID)
				}
			}
		}
	}
	return nil
}

// CheckCellContainment asserts every element's vertices lie within the
// closure of a single grid cell (§8's "Cell containment (post-slice)").
func CheckCellContainment(m meshdata.Mesh) error {
	for _, g := range m.Groups {
		for _, e := range g.Elements {
			if len(e.Verts) == 0 {
				continue
			}
			var cell meshdata.Cell
			for i, v := range e.Verts {
				c, err := gridtools.ToCell(m.Grid, m.Coordinates[v])
				if err != nil {
					return fmt.Errorf("cell containment: %w", err)
				}
				if i == 0 {
					cell = c
					continue
				}
				if !cellsCompatible(cell, c, m.Coordinates[v], m.Grid) {
					return fmt.Errorf("cell containment: group %d element spans cells %v and %v", g.ID, cell, c)
				}
			}
		}
	}
	return nil
}

// cellsCompatible treats a vertex lying exactly on the shared boundary
// of two adjacent cells as containment-compatible with both.
func cellsCompatible(a, b meshdata.Cell, _ meshdata.Coordinate, _ meshdata.Grid) bool {
	if a == b {
		return true
	}
	diff := 0
	for axis := 0; axis < 3; axis++ {
		d := a.Comp(axis) - b.Comp(axis)
		if d < 0 {
			d = -d
		}
		diff += d
	}
	return diff <= 1
}

// CheckCoordinateUniqueness asserts no two coordinates are exactly equal
// (§8's "Coordinate uniqueness (post-collapse)").
func CheckCoordinateUniqueness(m meshdata.Mesh) error {
	seen := map[meshdata.Coordinate]int{}
	for i, c := range m.Coordinates {
		if j, ok := seen[c]; ok {
			return fmt.Errorf("coordinate uniqueness: coords[%d] == coords[%d] == %v", i, j, c)
		}
		seen[c] = i
	}
	return nil
}

// CheckGridAlignment asserts every coordinate is integer-valued in
// relative units (§8's "Grid alignment (post-structure)").
func CheckGridAlignment(m meshdata.Mesh) error {
	for i, c := range m.Coordinates {
		for axis := 0; axis < 3; axis++ {
			v := c.Comp(axis)
			if math.Abs(v-math.Round(v)) > gridtools.Tol {
				return fmt.Errorf("grid alignment: coords[%d] axis %d = %v is not integer-valued", i, axis, v)
			}
		}
	}
	return nil
}

// CheckGroupPreservation asserts every output element's group id exists
// among the groups present in the original input.
func CheckGroupPreservation(m, input meshdata.Mesh) error {
	ids := map[int]bool{}
	for _, g := range input.Groups {
		ids[g.ID] = true
	}
	for _, g := range m.Groups {
		if !ids[g.ID] {
			return fmt.Errorf("group preservation: output group %d has no matching input group", g.ID)
		}
	}
	return nil
}

// CheckClosed asserts every edge of the triangle soup in m has even
// valence (§8's "Closedness preservation").
func CheckClosed(m meshdata.Mesh) error {
	count := map[[2]int]int{}
	bump := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		count[[2]int{a, b}]++
	}
	for _, g := range m.Groups {
		for _, e := range g.Elements {
			if e.Type != meshdata.Surface {
				continue
			}
			n := len(e.Verts)
			for i := 0; i < n; i++ {
				bump(e.Verts[i], e.Verts[(i+1)%n])
			}
		}
	}
	for edge, c := range count {
		if c%2 != 0 {
			return fmt.Errorf("closedness: edge %v has odd valence %d", edge, c)
		}
	}
	return nil
}

// CheckAll runs every universal invariant applicable with only a single
// mesh in hand (everything but group preservation, which needs the
// original input for comparison).
func CheckAll(m meshdata.Mesh) error {
	if err := CheckIndexValidity(m); err != nil {
		return err
	}
	if err := CheckCoordinateUniqueness(m); err != nil {
		return err
	}
	return nil
}
