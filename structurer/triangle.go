// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structurer

import "github.com/cpmech/gridmesh/meshdata"

// primitive is a grid-aligned output shape, in corner-key space, before
// vertex allocation.
type primitive struct {
	Type  meshdata.ElementType
	Corns []cornerKey
}

// staircaseTriangle implements §4.6 steps 1-6 for one triangle confined
// to cell: stairstep each edge, classify the resulting corners by cell
// face, emit a quad per fully populated face (synthesizing one missing
// corner when a pure diagonal justifies it), and emit every staircased
// edge segment as a line — redundancy between lines absorbed by a quad
// is resolved by the caller via collapser.RemoveOverlappedLowerDimElements
// (step 7), not here.
func staircaseTriangle(cell meshdata.Cell, verts [3]meshdata.Coordinate) []primitive {
	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	paths := make([][]cornerKey, 3)
	pureDiag := make([]bool, 3)
	present := map[cornerKey]bool{}
	for i, e := range edges {
		p := staircaseEdge(cell, verts[e[0]], verts[e[1]])
		paths[i] = p
		pureDiag[i] = isPureDiagonal(p[0], p[len(p)-1])
		for _, k := range p {
			present[k] = true
		}
	}

	if len(present) == 1 {
		var only cornerKey
		for k := range present {
			only = k
		}
		return []primitive{{Type: meshdata.Node, Corns: []cornerKey{only}}}
	}

	var out []primitive
	for _, f := range allFaces() {
		if corners, ok := orderFaceCorners(f, present); ok {
			out = append(out, primitive{Type: meshdata.Surface, Corns: corners[:]})
		}
	}

	anyPureDiag := pureDiag[0] || pureDiag[1] || pureDiag[2]
	if len(out) == 0 && anyPureDiag && len(present) == 6 {
		for _, f := range allFaces() {
			missing, ok := missingCorner(f, present)
			if !ok {
				continue
			}
			present[missing] = true
			if corners, ok := orderFaceCorners(f, present); ok {
				out = append(out, primitive{Type: meshdata.Surface, Corns: corners[:]})
				break
			}
			delete(present, missing)
		}
	}

	for _, p := range paths {
		for i := 0; i+1 < len(p); i++ {
			out = append(out, primitive{Type: meshdata.Line, Corns: []cornerKey{p[i], p[i+1]}})
		}
	}
	return out
}
