// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridtools

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gridmesh/meshdata"
)

func Test_proximity01(tst *testing.T) {

	chk.PrintTitle("proximity01: nearest and within-tolerance, sparse ids")

	lo := meshdata.NewCoordinate(-10, -10, -10)
	hi := meshdata.NewCoordinate(10, 10, 10)
	idx := NewProximityIndex(lo, hi, 5)

	// register only ids 2 and 7 -- ids 0,1,3..6 must never be treated as
	// registered zero-value points
	if err := idx.Append(meshdata.NewCoordinate(1, 1, 1), 2); err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
	if err := idx.Append(meshdata.NewCoordinate(5, 5, 5), 7); err != nil {
		tst.Errorf("unexpected error: %v", err)
	}

	n := idx.Nearest(meshdata.NewCoordinate(0, 0, 0))
	chk.IntAssert(n, 2)

	within := idx.FindWithin(meshdata.NewCoordinate(0, 0, 0), 0.1)
	chk.IntAssert(len(within), 0)

	within = idx.FindWithin(meshdata.NewCoordinate(1, 1, 1), 0.1)
	chk.IntAssert(len(within), 1)
	chk.IntAssert(within[0], 2)
}

func Test_proximity02(tst *testing.T) {

	chk.PrintTitle("proximity02: empty index")

	lo := meshdata.NewCoordinate(0, 0, 0)
	hi := meshdata.NewCoordinate(1, 1, 1)
	idx := NewProximityIndex(lo, hi, 2)

	n := idx.Nearest(meshdata.NewCoordinate(0.5, 0.5, 0.5))
	chk.IntAssert(n, -1)
}
