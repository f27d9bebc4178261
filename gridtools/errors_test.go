// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridtools

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_stageerror01(tst *testing.T) {

	chk.PrintTitle("stageerror01: message carries kind, group and elem")

	err := NewStageError("slicer.Slice", NonManifoldInput, 3, 7, "polygon %d is self-intersecting", 9)
	se, ok := err.(*StageError)
	if !ok {
		tst.Fatalf("expected *StageError, got %T", err)
	}
	chk.IntAssert(int(se.Kind), int(NonManifoldInput))
	chk.IntAssert(se.GroupID, 3)
	chk.IntAssert(se.ElemIdx, 7)

	msg := err.Error()
	if !strings.Contains(msg, "NonManifoldInput") || !strings.Contains(msg, "group=3") || !strings.Contains(msg, "elem=7") {
		tst.Errorf("error message missing expected fields: %s", msg)
	}
}

func Test_stageerror02(tst *testing.T) {

	chk.PrintTitle("stageerror02: panic is recoverable")

	defer func() {
		r := recover()
		if r == nil {
			tst.Errorf("expected Panic to panic")
		}
	}()
	Panic("should never happen: %d", 42)
}
