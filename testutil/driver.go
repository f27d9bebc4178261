// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil

import (
	"fmt"
	"math/rand"

	"github.com/cpmech/gridmesh/meshdata"
)

// Stage is one pipeline step under test: a named transformation from one
// mesh to the next.
type Stage struct {
	Name string
	Run  func(meshdata.Mesh) (meshdata.Mesh, error)
}

// Driver runs a sequence of Stages over a sequence of inputs, checking
// universal invariants after every stage of every input and reporting
// which (input index, stage) combination broke, mirroring
// gofem/msolid.Driver's "check consistency after every increment" loop.
type Driver struct {
	Stages []Stage

	// Results holds the mesh produced by the last stage of each input
	// that completed successfully, for later inspection.
	Results []meshdata.Mesh
}

// Run drives every input through every stage in order.
func (d *Driver) Run(inputs []meshdata.Mesh) error {
	d.Results = d.Results[:0]
	for i, input := range inputs {
		cur := input
		for _, st := range d.Stages {
			next, err := st.Run(cur)
			if err != nil {
				return fmt.Errorf("driver: input %d stage %q: %w", i, st.Name, err)
			}
			if err := CheckIndexValidity(next); err != nil {
				return fmt.Errorf("driver: input %d stage %q: %w", i, st.Name, err)
			}
			if err := CheckCoordinateUniqueness(next); err != nil {
				return fmt.Errorf("driver: input %d stage %q: %w", i, st.Name, err)
			}
			if err := CheckGroupPreservation(next, input); err != nil {
				return fmt.Errorf("driver: input %d stage %q: %w", i, st.Name, err)
			}
			cur = next
		}
		d.Results = append(d.Results, cur)
	}
	return nil
}

// RunRandom generates n random (grid, triangle soup) inputs via rng and
// drives them through d.Stages (§8's property-based generator harness).
func (d *Driver) RunRandom(rng *rand.Rand, n int, lo, hi float64) error {
	inputs := make([]meshdata.Mesh, n)
	for i := range inputs {
		grid := RandomGrid(rng, lo, hi)
		inputs[i] = RandomMesh(rng, grid)
	}
	return d.Run(inputs)
}
