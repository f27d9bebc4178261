// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshdata

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_coordinate01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Errorf("ERROR: %v", err)
		}
	}()

	chk.PrintTitle("coordinate01: component access")

	c := NewCoordinate(1, 2, 3)
	io.Pforan("c = %+v\n", c)
	chk.Scalar(tst, "c.Comp(0)", 1e-15, c.Comp(0), 1)
	chk.Scalar(tst, "c.Comp(1)", 1e-15, c.Comp(1), 2)
	chk.Scalar(tst, "c.Comp(2)", 1e-15, c.Comp(2), 3)

	d := c.WithComp(1, 99)
	chk.Scalar(tst, "d.Y", 1e-15, d.Y, 99)
	chk.Scalar(tst, "c.Y unchanged", 1e-15, c.Y, 2)
}

func Test_coordinate02(tst *testing.T) {

	chk.PrintTitle("coordinate02: arithmetic")

	a := NewCoordinate(1, 0, 0)
	b := NewCoordinate(0, 1, 0)
	chk.Scalar(tst, "dot", 1e-15, a.Dot(b), 0)

	cr := a.Cross(b)
	chk.Scalar(tst, "cross.Z", 1e-15, cr.Z, 1)

	mid := a.Lerp(b, 0.5)
	chk.Scalar(tst, "mid.X", 1e-15, mid.X, 0.5)
	chk.Scalar(tst, "mid.Y", 1e-15, mid.Y, 0.5)
}

func Test_coordinate03(tst *testing.T) {

	chk.PrintTitle("coordinate03: rounding and approx-equal")

	c := NewCoordinate(1.00004, 2.00004, 3.00004)
	r := c.Round(1e4)
	chk.Scalar(tst, "rounded.X", 1e-12, r.X, 1.0000)

	if !c.ApproxEqual(r, 1e-3) {
		tst.Errorf("expected c and r to be approx-equal within 1e-3")
	}
	if c.ApproxEqual(r, 1e-9) {
		tst.Errorf("expected c and r to NOT be approx-equal within 1e-9")
	}
}
