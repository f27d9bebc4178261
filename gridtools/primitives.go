// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridtools

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gridmesh/meshdata"
)

// Tol is the canonical tolerance used by every predicate below to detect
// coincidence with grid planes, edges and corners, in relative units
// (§4.1). It is a contract constant: every stage that compares against a
// grid plane must use this same tolerance.
const Tol = 1e-12

// ApproxDir reports whether a and b, two values of the same coordinate
// component, coincide within Tol.
func ApproxDir(a, b float64) bool {
	return math.Abs(a-b) <= Tol
}

// ToCell maps a relative coordinate to the cell that contains it: floor
// each component; a relative lying exactly on plane k belongs to cell k
// for k < last, else cell k-1 (boundary clamp, §4.1).
func ToCell(grid meshdata.Grid, r meshdata.Coordinate) (meshdata.Cell, error) {
	i, err := toCellAxis(grid, 0, r.X)
	if err != nil {
		return meshdata.Cell{}, err
	}
	j, err := toCellAxis(grid, 1, r.Y)
	if err != nil {
		return meshdata.Cell{}, err
	}
	k, err := toCellAxis(grid, 2, r.Z)
	if err != nil {
		return meshdata.Cell{}, err
	}
	return meshdata.Cell{I: i, J: j, K: k}, nil
}

func toCellAxis(grid meshdata.Grid, axis int, comp float64) (int, error) {
	last := grid.Ncells(axis) // == Nplanes-1, i.e. the index of the last plane
	if comp < -Tol || comp > float64(last)+Tol {
		return 0, NewStageError("gridtools.ToCell", DomainError, 0, 0,
			"relative component %g on axis %d is outside the grid [0,%d]", comp, axis, last)
	}
	c := int(math.Floor(comp + Tol))
	if c > last-1 {
		c = last - 1 // boundary clamp: last plane belongs to the last cell
	}
	if c < 0 {
		c = 0
	}
	return c, nil
}

// ToRelative returns the exact integer-valued relative coordinate at
// cell's origin (lower) corner.
func ToRelative(c meshdata.Cell) meshdata.Coordinate {
	return meshdata.Coordinate{X: float64(c.I), Y: float64(c.J), Z: float64(c.K)}
}

// AbsoluteToRelative converts an absolute coordinate to relative space
// using the grid's (possibly non-uniform) plane sequences: piecewise
// affine and monotone per axis, integer-valued exactly at plane indices.
func AbsoluteToRelative(grid meshdata.Grid, x meshdata.Coordinate) (meshdata.Coordinate, error) {
	rx, err := absToRelAxis(grid.X, x.X)
	if err != nil {
		return meshdata.Coordinate{}, err
	}
	ry, err := absToRelAxis(grid.Y, x.Y)
	if err != nil {
		return meshdata.Coordinate{}, err
	}
	rz, err := absToRelAxis(grid.Z, x.Z)
	if err != nil {
		return meshdata.Coordinate{}, err
	}
	return meshdata.Coordinate{X: rx, Y: ry, Z: rz}, nil
}

func absToRelAxis(planes []float64, x float64) (float64, error) {
	n := len(planes)
	if x < planes[0] || x > planes[n-1] {
		return 0, NewStageError("gridtools.AbsoluteToRelative", DomainError, 0, 0,
			"absolute component %g is outside the grid range [%g,%g]", x, planes[0], planes[n-1])
	}
	for i := 0; i < n-1; i++ {
		if x >= planes[i] && x <= planes[i+1] {
			step := planes[i+1] - planes[i]
			if step == 0 {
				return float64(i), nil
			}
			return float64(i) + (x-planes[i])/step, nil
		}
	}
	return float64(n - 1), nil
}

// RelativeToAbsolute is the inverse of AbsoluteToRelative.
func RelativeToAbsolute(grid meshdata.Grid, r meshdata.Coordinate) (meshdata.Coordinate, error) {
	ax, err := relToAbsAxis(grid.X, r.X)
	if err != nil {
		return meshdata.Coordinate{}, err
	}
	ay, err := relToAbsAxis(grid.Y, r.Y)
	if err != nil {
		return meshdata.Coordinate{}, err
	}
	az, err := relToAbsAxis(grid.Z, r.Z)
	if err != nil {
		return meshdata.Coordinate{}, err
	}
	return meshdata.Coordinate{X: ax, Y: ay, Z: az}, nil
}

func relToAbsAxis(planes []float64, r float64) (float64, error) {
	n := len(planes)
	last := float64(n - 1)
	if r < -Tol || r > last+Tol {
		return 0, NewStageError("gridtools.RelativeToAbsolute", DomainError, 0, 0,
			"relative component %g is outside the grid [0,%g]", r, last)
	}
	i := int(math.Floor(r))
	if i >= n-1 {
		return planes[n-1], nil
	}
	if i < 0 {
		i = 0
	}
	frac := r - float64(i)
	return planes[i] + frac*(planes[i+1]-planes[i]), nil
}

// IsRelativeInCellEdge reports whether exactly two of r's components lie
// within Tol of an integer (grid plane) value — i.e. r sits on a cell
// edge.
func IsRelativeInCellEdge(r meshdata.Coordinate) bool {
	n := 0
	if isOnPlane(r.X) {
		n++
	}
	if isOnPlane(r.Y) {
		n++
	}
	if isOnPlane(r.Z) {
		n++
	}
	return n == 2
}

func isOnPlane(v float64) bool {
	return ApproxDir(v, math.Round(v))
}

// GetCellEdgeAxis returns the one axis that is free (varying) for an
// edge point r (the precondition is IsRelativeInCellEdge(r)).
func GetCellEdgeAxis(r meshdata.Coordinate) meshdata.Axis {
	if !isOnPlane(r.X) {
		return meshdata.AxisX
	}
	if !isOnPlane(r.Y) {
		return meshdata.AxisY
	}
	return meshdata.AxisZ
}

// GetTouchingCells returns every cell (up to 8) that shares the point r:
// a corner touches 8, an edge 4, a face 2, and an interior point 1.
// Results are clipped to the grid's valid cell range.
func GetTouchingCells(grid meshdata.Grid, r meshdata.Coordinate) []meshdata.Cell {
	var choices [3][]int
	comps := [3]float64{r.X, r.Y, r.Z}
	for axis := 0; axis < 3; axis++ {
		last := grid.Ncells(axis)
		v := comps[axis]
		if isOnPlane(v) {
			idx := int(math.Round(v))
			set := map[int]bool{}
			if idx-1 >= 0 {
				set[idx-1] = true
			}
			if idx <= last-1 {
				set[idx] = true
			}
			for c := range set {
				choices[axis] = append(choices[axis], c)
			}
		} else {
			choices[axis] = []int{int(math.Floor(v))}
		}
	}
	var out []meshdata.Cell
	for _, i := range choices[0] {
		for _, j := range choices[1] {
			for _, k := range choices[2] {
				out = append(out, meshdata.Cell{I: i, J: j, K: k})
			}
		}
	}
	return out
}

// BuildCellElemMap partitions element indices by the cell they lie in
// (the cell of the element's per-axis minimum corner, so vertices on that
// cell's faces count as inside it).
// Precondition (guaranteed after the Slicer runs): every element lies
// entirely within one cell; violating this is a DomainError, not a panic,
// since a caller could invoke this before slicing by mistake.
func BuildCellElemMap(grid meshdata.Grid, groups []meshdata.Group, coords []meshdata.Coordinate) (map[meshdata.Cell][]ElemRef, error) {
	out := make(map[meshdata.Cell][]ElemRef)
	for gi, g := range groups {
		for ei, e := range g.Elements {
			if len(e.Verts) == 0 {
				continue
			}
			lo, hi := coords[e.Verts[0]], coords[e.Verts[0]]
			for _, v := range e.Verts[1:] {
				for axis := 0; axis < 3; axis++ {
					if c := coords[v].Comp(axis); c < lo.Comp(axis) {
						lo = lo.WithComp(axis, c)
					} else if c > hi.Comp(axis) {
						hi = hi.WithComp(axis, c)
					}
				}
			}
			cell, err := ToCell(grid, lo)
			if err != nil {
				return nil, err
			}
			for axis := 0; axis < 3; axis++ {
				if hi.Comp(axis) > float64(cell.Comp(axis)+1)+Tol {
					return nil, NewStageError("gridtools.BuildCellElemMap", DomainError, g.ID, ei,
						"element crosses more than one cell (lower cell %v, upper bound %v)", cell, hi)
				}
			}
			out[cell] = append(out[cell], ElemRef{GroupIdx: gi, ElemIdx: ei})
		}
	}
	return out, nil
}

// ElemRef identifies one element by its position in Mesh.Groups.
type ElemRef struct {
	GroupIdx int
	ElemIdx  int
}

// GetExtendedDualGrid returns, for a primal plane sequence, the dual
// sequence: the midpoint of every primal interval, plus one half-step
// inserted outside each boundary (§4.7's "enlarged slicing grid"). The
// result has len(primal)+1 entries.
func GetExtendedDualGrid(primal []float64) []float64 {
	n := len(primal)
	out := make([]float64, 0, n+1)
	first := primal[1] - primal[0]
	out = append(out, primal[0]-first/2)
	for i := 0; i < n-1; i++ {
		out = append(out, (primal[i]+primal[i+1])/2)
	}
	last := primal[n-1] - primal[n-2]
	out = append(out, primal[n-1]+last/2)
	return out
}

// GetExtendedDualGridMesh applies GetExtendedDualGrid to every axis.
func GetExtendedDualGridMesh(g meshdata.Grid) meshdata.Grid {
	return meshdata.Grid{
		X: GetExtendedDualGrid(g.X),
		Y: GetExtendedDualGrid(g.Y),
		Z: GetExtendedDualGrid(g.Z),
	}
}

// Linspace returns n values evenly spaced over [min,max] (n >= 2). Built
// on gosl/utl.LinSpace, the same helper gofem's analytical fixtures use.
func Linspace(min, max float64, n int) []float64 {
	if n < 2 {
		Panic("gridtools.Linspace: n must be >= 2, got %d", n)
	}
	return utl.LinSpace(min, max, n)
}

// BuildCartesianGrid builds a uniform grid with n planes per axis over
// the common [min,max] cube.
func BuildCartesianGrid(min, max float64, n int) meshdata.Grid {
	return meshdata.Grid{
		X: Linspace(min, max, n),
		Y: Linspace(min, max, n),
		Z: Linspace(min, max, n),
	}
}
