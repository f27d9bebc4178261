// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicer cuts every input triangle and line by the three
// families of axis-aligned grid planes, producing a mesh whose every
// element lies inside exactly one grid cell (§4.2).
package slicer

import (
	"math"

	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
)

// workspace accumulates newly created vertices (plane/edge intersections)
// while slicing a single element; its coordinates are appended to the
// mesh's arena once slicing of that element completes.
type workspace struct {
	grid  meshdata.Grid
	verts []meshdata.Coordinate // relative-space coordinates, by local id
}

func (w *workspace) add(c meshdata.Coordinate) int {
	w.verts = append(w.verts, c)
	return len(w.verts) - 1
}

// polygon is an ordered, closed loop of local vertex ids into a
// workspace. Clipping a convex polygon against a half-space always
// yields a convex polygon (§4.2: "each is a convex polygon lying in one
// cell").
type polygon []int

// clipLower returns the portion of poly with comp(axis) <= plane+Tol,
// clipping at the plane where an edge crosses it (Sutherland-Hodgman).
// Vertices within gridtools.Tol of the plane count as inside both
// half-spaces, so an edge that lies exactly in the plane contributes no
// new vertex (§4.2's "degenerate intersections... resolved by projecting
// the edge onto the plane without creating new vertices").
func clipLower(w *workspace, poly polygon, axis int, plane float64) polygon {
	return clipHalfSpace(w, poly, axis, plane, true)
}

func clipUpper(w *workspace, poly polygon, axis int, plane float64) polygon {
	return clipHalfSpace(w, poly, axis, plane, false)
}

func clipHalfSpace(w *workspace, poly polygon, axis int, plane float64, lower bool) polygon {
	n := len(poly)
	if n == 0 {
		return nil
	}
	inside := func(c meshdata.Coordinate) bool {
		v := c.Comp(axis)
		if lower {
			return v <= plane+gridtools.Tol
		}
		return v >= plane-gridtools.Tol
	}
	var out polygon
	for i := 0; i < n; i++ {
		curId := poly[i]
		prevId := poly[(i-1+n)%n]
		cur := w.verts[curId]
		prev := w.verts[prevId]
		curIn := inside(cur)
		prevIn := inside(prev)
		if curIn != prevIn {
			t := (plane - prev.Comp(axis)) / (cur.Comp(axis) - prev.Comp(axis))
			cross := prev.Lerp(cur, t).WithComp(axis, plane)
			out = append(out, w.add(cross))
		}
		if curIn {
			out = append(out, curId)
		}
	}
	return dedupeLoop(w, out)
}

// dedupeLoop removes consecutive (and wrap-around) duplicate vertices
// introduced when a polygon vertex sits exactly on the clip plane (it is
// then "inside" on both sides of the crossing test and also emitted as a
// crossing point).
func dedupeLoop(w *workspace, poly polygon) polygon {
	if len(poly) < 2 {
		return poly
	}
	var out polygon
	for i, id := range poly {
		prevId := poly[(i-1+len(poly))%len(poly)]
		if i == 0 {
			out = append(out, id)
			continue
		}
		if w.verts[id].ApproxEqual(w.verts[prevId], gridtools.Tol) {
			continue
		}
		out = append(out, id)
	}
	if len(out) > 1 && w.verts[out[0]].ApproxEqual(w.verts[out[len(out)-1]], gridtools.Tol) {
		out = out[:len(out)-1]
	}
	return out
}

// integerPlanesStrictlyBetween returns every grid-plane index (an
// integer, since the core works in relative space where plane k sits at
// the exact value k, §3) strictly between lo and hi (§4.2 step 1).
func integerPlanesStrictlyBetween(lo, hi float64) []float64 {
	start := math.Ceil(lo + gridtools.Tol)
	var out []float64
	for k := start; k < hi-gridtools.Tol; k++ {
		if k > lo+gridtools.Tol {
			out = append(out, k)
		}
	}
	return out
}

func minmax3(a, b, c float64) (float64, float64) {
	lo, hi := a, a
	for _, v := range []float64{b, c} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// polygonArea3D returns the (unsigned) area of a planar polygon in 3-D,
// as half the norm of the summed fan cross products.
func polygonArea3D(w *workspace, poly polygon) float64 {
	if len(poly) < 3 {
		return 0
	}
	var sum meshdata.Coordinate
	origin := w.verts[poly[0]]
	for i := 1; i < len(poly)-1; i++ {
		a := w.verts[poly[i]].Sub(origin)
		b := w.verts[poly[i+1]].Sub(origin)
		sum = sum.Add(a.Cross(b))
	}
	return 0.5 * sum.Norm()
}
