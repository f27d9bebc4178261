// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshdata

import "sort"

// ElementType distinguishes the four primitive kinds a mesh can carry
// (§3). Surface further distinguishes triangle vs quad by the number of
// vertex ids in the element.
type ElementType int

const (
	Node ElementType = iota
	Line
	Surface
	Volume
)

func (t ElementType) String() string {
	switch t {
	case Node:
		return "node"
	case Line:
		return "line"
	case Surface:
		return "surface"
	case Volume:
		return "volume"
	default:
		return "unknown"
	}
}

// Element is a (vertex-id list, type) pair. Vertex ids index a Mesh's
// Coordinates slice (§3's "arena + index" ownership model); order is
// significant for orientation.
type Element struct {
	Verts []int
	Type  ElementType
}

// IsTriangle reports whether e is a 3-vertex Surface element.
func (e Element) IsTriangle() bool {
	return e.Type == Surface && len(e.Verts) == 3
}

// IsQuad reports whether e is a 4-vertex Surface element.
func (e Element) IsQuad() bool {
	return e.Type == Surface && len(e.Verts) == 4
}

// IsTetrahedron reports whether e is a 4-vertex Volume element.
func (e Element) IsTetrahedron() bool {
	return e.Type == Volume && len(e.Verts) == 4
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	return Element{Verts: append([]int(nil), e.Verts...), Type: e.Type}
}

// sortedVerts returns a sorted copy of e.Verts, used to detect repeated
// surface/volume elements regardless of rotation/reflection (§4.3 step 5).
func (e Element) sortedVerts() []int {
	v := append([]int(nil), e.Verts...)
	sort.Ints(v)
	return v
}

// SameVertsUnordered reports whether e and o reference the same set of
// vertex ids, ignoring order — the repeated-triangle/quad test.
func (e Element) SameVertsUnordered(o Element) bool {
	if len(e.Verts) != len(o.Verts) {
		return false
	}
	a, b := e.sortedVerts(), o.sortedVerts()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SameVertsOrdered reports whether e and o reference the same vertex ids
// in the same order — used for nodes/lines, which retain orientation.
func (e Element) SameVertsOrdered(o Element) bool {
	if len(e.Verts) != len(o.Verts) {
		return false
	}
	for i := range e.Verts {
		if e.Verts[i] != o.Verts[i] {
			return false
		}
	}
	return true
}

// Group is an ordered sequence of elements sharing a material/group id.
type Group struct {
	ID       int
	Elements []Element
}

// Clone returns a deep copy of g.
func (g Group) Clone() Group {
	elems := make([]Element, len(g.Elements))
	for i, e := range g.Elements {
		elems[i] = e.Clone()
	}
	return Group{ID: g.ID, Elements: elems}
}
