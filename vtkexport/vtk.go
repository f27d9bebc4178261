// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vtkexport writes a meshdata.Mesh as a VTK UnstructuredGrid
// (.vtu) file, for visual inspection of a pipeline stage's output. It
// implements collab.Writer.
package vtkexport

// VTK cell type codes, lifted from the VTK file format specification
// (the same subset gofem/shp's VtkCode fields use).
const (
	vtkVertex   = 1
	vtkLine     = 3
	vtkTriangle = 5
	vtkQuad     = 9
)
