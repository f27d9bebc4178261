// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridtools

import (
	"github.com/cpmech/gosl/gm"

	"github.com/cpmech/gridmesh/meshdata"
)

// ProximityIndex is a broad-phase spatial index for "is there a vertex
// within tolerance of this point/line" queries. It wraps gosl/gm.Bins,
// the same structure gofem/out uses ("NodBins"/"IpBins") to find FE
// nodes/integration points near a given point — here used by the
// Smoother (nearest patch-boundary vertex), never by the Collapser, whose
// fusion is exact-after-rounding rather than radius based (§4.3), nor
// by the Snapper, whose sticky targets are a small fixed set per axis
// handled with plain arithmetic (§4.5).
type ProximityIndex struct {
	bins gm.Bins
	pts  []meshdata.Coordinate
	has  []bool
}

// NewProximityIndex builds an index over the enlarged bounding box
// [lo,hi], subdivided into ndiv bins per axis.
func NewProximityIndex(lo, hi meshdata.Coordinate, ndiv int) *ProximityIndex {
	idx := &ProximityIndex{}
	idx.bins.Init([]float64{lo.X, lo.Y, lo.Z}, []float64{hi.X, hi.Y, hi.Z}, ndiv)
	return idx
}

// Append registers a point under id (typically a vertex index).
func (p *ProximityIndex) Append(c meshdata.Coordinate, id int) error {
	if id >= len(p.pts) {
		grownPts := make([]meshdata.Coordinate, id+1)
		grownHas := make([]bool, id+1)
		copy(grownPts, p.pts)
		copy(grownHas, p.has)
		p.pts = grownPts
		p.has = grownHas
	}
	p.pts[id] = c
	p.has[id] = true
	return p.bins.Append([]float64{c.X, c.Y, c.Z}, id)
}

// FindWithin returns every registered id within tol of c. The
// candidate set comes from p.bins.FindAlongLine on the degenerate
// segment A=B=c (mirroring gofem/out's NodBins.FindAlongLine, here
// collapsed to a point query instead of a line), and each candidate is
// then confirmed with an exact ApproxEqual check rather than trusting
// the bin tolerance alone.
func (p *ProximityIndex) FindWithin(c meshdata.Coordinate, tol float64) []int {
	x := []float64{c.X, c.Y, c.Z}
	ids := p.bins.FindAlongLine(x, x, tol)
	var out []int
	for _, id := range ids {
		if id >= 0 && id < len(p.has) && p.has[id] && p.pts[id].ApproxEqual(c, tol) {
			out = append(out, id)
		}
	}
	return out
}

// Nearest returns the id of the registered point closest to c, or -1 if
// the index is empty, via p.bins.Find (the same broad-phase lookup
// gofem/out's NodBins.Find/IpBins.Find use).
func (p *ProximityIndex) Nearest(c meshdata.Coordinate) int {
	id := p.bins.Find([]float64{c.X, c.Y, c.Z})
	if id < 0 || id >= len(p.has) || !p.has[id] {
		return -1
	}
	return id
}
