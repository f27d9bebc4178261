// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshdata

// Mesh is the (Grid, Coordinates, Groups) triple every pipeline stage
// consumes and replaces (§3). Stage input is never aliased to stage
// output: every stage that modifies a mesh builds a new one, even though
// internal mutation during the build is permitted.
type Mesh struct {
	Grid        Grid
	Coordinates []Coordinate
	Groups      []Group
}

// NewMesh builds an empty mesh bound to grid.
func NewMesh(grid Grid) Mesh {
	return Mesh{Grid: grid}
}

// Clone returns a deep copy of m: new grid slices, new coordinate slice,
// new groups/elements. Callers that need a "scratch" mesh to mutate
// in-place while keeping the original untouched should Clone first.
func (m Mesh) Clone() Mesh {
	coords := append([]Coordinate(nil), m.Coordinates...)
	groups := make([]Group, len(m.Groups))
	for i, g := range m.Groups {
		groups[i] = g.Clone()
	}
	return Mesh{Grid: m.Grid.Clone(), Coordinates: coords, Groups: groups}
}

// NumVertices returns len(m.Coordinates).
func (m Mesh) NumVertices() int {
	return len(m.Coordinates)
}

// NumElements returns the total element count across every group.
func (m Mesh) NumElements() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Elements)
	}
	return n
}

// Walk calls fn for every (group index, element index, element) triple
// in the mesh, in group then element order.
func (m Mesh) Walk(fn func(groupIdx, elemIdx int, e Element)) {
	for gi, g := range m.Groups {
		for ei, e := range g.Elements {
			fn(gi, ei, e)
		}
	}
}

// AppendElement appends e to the group with the given id, creating the
// group if it does not yet exist. Groups are kept in first-seen order.
func (m *Mesh) AppendElement(groupID int, e Element) {
	for i := range m.Groups {
		if m.Groups[i].ID == groupID {
			m.Groups[i].Elements = append(m.Groups[i].Elements, e)
			return
		}
	}
	m.Groups = append(m.Groups, Group{ID: groupID, Elements: []Element{e}})
}

// AddVertex appends c to the coordinate arena and returns its new index.
func (m *Mesh) AddVertex(c Coordinate) int {
	m.Coordinates = append(m.Coordinates, c)
	return len(m.Coordinates) - 1
}
