// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collapser

import "github.com/cpmech/gridmesh/meshdata"

// removeRepeatedElements drops elements that are exact duplicates of an
// earlier element in the same group (§4.3 step 5). Triangles/quads are
// compared by their sorted vertex-id set (orientation does not matter for
// a filled surface); nodes/lines retain orientation unless
// ignoreOrientation is set, matching the
// removeRepeatedElementsIgnoringOrientation variant the Structurer needs
// for its own duplicate-line bookkeeping (§4.3, §4.6 step 7).
func removeRepeatedElements(m meshdata.Mesh, ignoreOrientation bool) meshdata.Mesh {
	out := meshdata.Mesh{Grid: m.Grid, Coordinates: m.Coordinates}
	for _, g := range m.Groups {
		ng := meshdata.Group{ID: g.ID}
		for _, e := range g.Elements {
			dup := false
			for _, kept := range ng.Elements {
				if kept.Type != e.Type {
					continue
				}
				switch e.Type {
				case meshdata.Surface, meshdata.Volume:
					if kept.SameVertsUnordered(e) {
						dup = true
					}
				default:
					if kept.SameVertsOrdered(e) {
						dup = true
					} else if ignoreOrientation && sameReversed(kept, e) {
						dup = true
					}
				}
				if dup {
					break
				}
			}
			if !dup {
				ng.Elements = append(ng.Elements, e)
			}
		}
		out.Groups = append(out.Groups, ng)
	}
	return out
}

// RemoveRepeatedElements is the exported entry point used outside this
// package (the Structurer reuses it, §4.6 step 7).
func RemoveRepeatedElements(m meshdata.Mesh, ignoreOrientation bool) meshdata.Mesh {
	return removeRepeatedElements(m, ignoreOrientation)
}

func sameReversed(a, b meshdata.Element) bool {
	if len(a.Verts) != len(b.Verts) {
		return false
	}
	n := len(a.Verts)
	for i := 0; i < n; i++ {
		if a.Verts[i] != b.Verts[n-1-i] {
			return false
		}
	}
	return true
}

// directionSum returns the component sum of an element's direction (its
// last vertex minus its first), used by RemoveOverlappedLowerDimElements
// as the deterministic tie-break key between two coincident lines of
// opposite orientation: the one with the larger sum is dropped.
func directionSum(e meshdata.Element, coords []meshdata.Coordinate) float64 {
	d := coords[e.Verts[len(e.Verts)-1]].Sub(coords[e.Verts[0]])
	return d.X + d.Y + d.Z
}

// RemoveOverlappedLowerDimElements implements the dominance rule used by
// the Structurer's output (§4.3's
// removeOverlappedDimensionOneAndLowerElementsAndEquivalentSurfaces): an
// edge/node is redundant if a quad or triangle in the same group already
// covers its coordinates; between two coincident lines, the one whose
// direction-sum is larger is dropped (so the smaller survives,
// deterministically, §4.6 tie-break summary).
func RemoveOverlappedLowerDimElements(m meshdata.Mesh) meshdata.Mesh {
	out := meshdata.Mesh{Grid: m.Grid, Coordinates: m.Coordinates}
	for _, g := range m.Groups {
		surfaceVertSets := make([]map[int]bool, 0)
		for _, e := range g.Elements {
			if e.Type == meshdata.Surface {
				set := make(map[int]bool, len(e.Verts))
				for _, v := range e.Verts {
					set[v] = true
				}
				surfaceVertSets = append(surfaceVertSets, set)
			}
		}
		coveredByFace := func(e meshdata.Element) bool {
			for _, set := range surfaceVertSets {
				all := true
				for _, v := range e.Verts {
					if !set[v] {
						all = false
						break
					}
				}
				if all {
					return true
				}
			}
			return false
		}

		ng := meshdata.Group{ID: g.ID}
		kept := make([]meshdata.Element, 0, len(g.Elements))
		for _, e := range g.Elements {
			if e.Type == meshdata.Surface {
				kept = append(kept, e)
				continue
			}
			if coveredByFace(e) {
				continue
			}
			kept = append(kept, e)
		}

		// between coincident lines (same unordered endpoint set), keep the
		// one with the smaller direction-sum.
		var final []meshdata.Element
		for i, e := range kept {
			if e.Type != meshdata.Line {
				final = append(final, e)
				continue
			}
			dominated := false
			for j, o := range kept {
				if j == i || o.Type != meshdata.Line {
					continue
				}
				if !e.SameVertsUnordered(o) {
					continue
				}
				if directionSum(e, m.Coordinates) > directionSum(o, m.Coordinates) {
					dominated = true
					break
				}
				if directionSum(e, m.Coordinates) == directionSum(o, m.Coordinates) && j < i {
					dominated = true
					break
				}
			}
			if !dominated {
				final = append(final, e)
			}
		}
		ng.Elements = final
		out.Groups = append(out.Groups, ng)
	}
	return out
}
