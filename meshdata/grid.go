// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshdata

// Grid holds the three ordered sequences of plane coordinates that define
// a 3-D Cartesian rectilinear grid (§3). Each sequence must be strictly
// increasing and have at least 2 entries; GridTools (gridtools package)
// is responsible for enforcing and exploiting that invariant — Grid
// itself is a plain value type.
type Grid struct {
	X, Y, Z []float64
}

// Axes returns the three plane sequences indexed by axis (0,1,2).
func (g Grid) Axes() [3][]float64 {
	return [3][]float64{g.X, g.Y, g.Z}
}

// Axis returns the plane sequence for the given axis (0=X, 1=Y, 2=Z).
func (g Grid) Axis(axis int) []float64 {
	switch axis {
	case 0:
		return g.X
	case 1:
		return g.Y
	default:
		return g.Z
	}
}

// Nplanes returns the number of planes along axis.
func (g Grid) Nplanes(axis int) int {
	return len(g.Axis(axis))
}

// Ncells returns the number of cells along axis (Nplanes - 1).
func (g Grid) Ncells(axis int) int {
	return g.Nplanes(axis) - 1
}

// Clone returns a deep copy of g (each mesh value-owns its grid; §3).
func (g Grid) Clone() Grid {
	return Grid{
		X: append([]float64(nil), g.X...),
		Y: append([]float64(nil), g.Y...),
		Z: append([]float64(nil), g.Z...),
	}
}

// Cell is an integer triple indexing a grid cell by its lower (origin)
// corner (§3).
type Cell struct {
	I, J, K int
}

// Comp returns the cell index along axis.
func (c Cell) Comp(axis int) int {
	switch axis {
	case 0:
		return c.I
	case 1:
		return c.J
	default:
		return c.K
	}
}

// WithComp returns a copy of c with component axis replaced by v.
func (c Cell) WithComp(axis int, v int) Cell {
	switch axis {
	case 0:
		c.I = v
	case 1:
		c.J = v
	default:
		c.K = v
	}
	return c
}

// Axis identifies one of the three grid-plane families (0=X, 1=Y, 2=Z).
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// Surfel identifies one of the six faces of a cell: the lower face along
// Axis (§3).
type Surfel struct {
	C    Cell
	Axis Axis
}
