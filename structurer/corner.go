// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package structurer maps a sliced, collapsed mesh onto purely
// grid-aligned primitives: cell-corner nodes, cell-edge lines, and
// cell-face quads (§4.6, "Structurer/Staircaser").
package structurer

import (
	"math"

	"github.com/cpmech/gridmesh/meshdata"
)

// cornerKey is a cell corner expressed as a 0/1 offset from the cell's
// lower (origin) corner on each axis.
type cornerKey [3]int

func (k cornerKey) withAxis(axis, v int) cornerKey {
	nk := k
	nk[axis] = v
	return nk
}

// nearestCorner rounds a relative coordinate to the cell corner it is
// closest to, breaking exact ties (fractional part == 0.5) toward the
// upper corner (§4.6 step 1).
func nearestCorner(cell meshdata.Cell, r meshdata.Coordinate) cornerKey {
	return cornerKey{
		cornerOffset(cell.I, r.X),
		cornerOffset(cell.J, r.Y),
		cornerOffset(cell.K, r.Z),
	}
}

func cornerOffset(cellLower int, v float64) int {
	rounded := int(math.Floor(v + 0.5))
	if rounded <= cellLower {
		return 0
	}
	return 1
}

// cornerCoord returns the absolute relative coordinate of a cell corner.
func cornerCoord(cell meshdata.Cell, k cornerKey) meshdata.Coordinate {
	return meshdata.Coordinate{
		X: float64(cell.I + k[0]),
		Y: float64(cell.J + k[1]),
		Z: float64(cell.K + k[2]),
	}
}

// isPureDiagonal reports whether a and b differ on all three axes — the
// two corners are diagonally opposite on the cell (§4.6 step 3,
// GLOSSARY "Pure diagonal").
func isPureDiagonal(a, b cornerKey) bool {
	return a[0] != b[0] && a[1] != b[1] && a[2] != b[2]
}
