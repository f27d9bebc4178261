// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gridmesh/driver"
	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/report"
	"github.com/cpmech/gridmesh/testutil"
	"github.com/cpmech/gridmesh/vtkexport"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.Pfwhite("\ngridmesh -- FDTD grid-conforming mesh pipeline\n\n")

	mode := flag.String("mode", "offgrid", "pipeline to run: offgrid or structured")
	out := flag.String("out", "out.vtu", "output .vtu filename")
	nsides := flag.Int("nsides", 8, "number of sides in the demo dome fixture")
	nplanes := flag.Int("nplanes", 3, "number of grid planes per axis")
	flag.Parse()

	grid := gridtools.BuildCartesianGrid(-1, 1, *nplanes)
	input := testutil.Alhambra(grid, *nsides)

	log := report.ConsoleLogger{}

	var result = input
	var err error
	switch *mode {
	case "structured":
		result, err = driver.BuildStructuredMeshWithLogger(input, 4, log)
	case "offgrid":
		result, err = driver.BuildOffgridMeshWithLogger(input, driver.DefaultOffgridOptions(), log)
	default:
		chk.Panic("unknown -mode %q; use offgrid or structured", *mode)
	}
	if err != nil {
		chk.Panic("pipeline failed: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		chk.Panic("cannot create output file: %v", err)
	}
	defer f.Close()

	if err := vtkexport.WriteVTU(f, result); err != nil {
		chk.Panic("cannot write vtu: %v", err)
	}

	io.Pfgreen("wrote %s (%d vertices, %d elements)\n", *out, result.NumVertices(), result.NumElements())
}
