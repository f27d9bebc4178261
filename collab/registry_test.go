// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collab

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gridmesh/meshdata"
)

func Test_registry01(tst *testing.T) {

	chk.PrintTitle("registry01: default registrations resolve")

	if GetCDT("fan") == nil {
		tst.Errorf("expected \"fan\" CDT to be registered")
	}
	if GetCDT("nonexistent") != nil {
		tst.Errorf("expected unknown CDT name to resolve to nil")
	}
	if GetRepairer("passthrough") == nil {
		tst.Errorf("expected \"passthrough\" Repairer to be registered")
	}
	if GetRepairer("convexhull") == nil {
		tst.Errorf("expected \"convexhull\" Repairer to be registered")
	}
	if GetManifolder("passthrough") == nil {
		tst.Errorf("expected \"passthrough\" Manifolder to be registered")
	}
}

func Test_registry02(tst *testing.T) {

	chk.PrintTitle("registry02: custom registration and override")

	RegisterCDT("stub-test", func() CDT { return FanCDT{} })
	if GetCDT("stub-test") == nil {
		tst.Errorf("expected custom registration to resolve")
	}

	calls := 0
	RegisterRepairer("counting-test", func() Repairer {
		calls++
		return PassthroughRepairer{}
	})
	GetRepairer("counting-test")
	GetRepairer("counting-test")
	chk.IntAssert(calls, 2)
}

func Test_fancdt01(tst *testing.T) {

	chk.PrintTitle("fancdt01: fan triangulation of a convex quad")

	poly := []meshdata.Coordinate{
		meshdata.NewCoordinate(0, 0, 0),
		meshdata.NewCoordinate(1, 0, 0),
		meshdata.NewCoordinate(1, 1, 0),
		meshdata.NewCoordinate(0, 1, 0),
	}
	tris, err := FanCDT{}.Triangulate(poly)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
	chk.IntAssert(len(tris), 2)
	chk.IntAssert(tris[0][0], 0)
	chk.IntAssert(tris[1][0], 0)
}
