// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vtkexport

import (
	"bytes"
	"io"

	"github.com/cpmech/gosl/chk"
	gio "github.com/cpmech/gosl/io"

	"github.com/cpmech/gridmesh/meshdata"
)

// WriteVTU writes m as a VTK UnstructuredGrid (.vtu, ASCII) to w. Every
// coordinate is written as-is; callers wanting a grid-relative mesh in
// absolute units should convert beforehand. Group ids are carried as a
// per-cell "group" scalar, mirroring GenVtu.go's per-cell "tag" field.
func WriteVTU(w io.Writer, m meshdata.Mesh) error {
	var points, cells, celldata bytes.Buffer

	gio.Ff(&points, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, c := range m.Coordinates {
		gio.Ff(&points, "%23.15e %23.15e %23.15e ", c.X, c.Y, c.Z)
	}
	gio.Ff(&points, "\n</DataArray>\n</Points>\n")

	nc := 0
	gio.Ff(&cells, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, g := range m.Groups {
		for _, e := range g.Elements {
			for _, v := range e.Verts {
				gio.Ff(&cells, "%d ", v)
			}
			nc++
		}
	}

	gio.Ff(&cells, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, g := range m.Groups {
		for _, e := range g.Elements {
			offset += len(e.Verts)
			gio.Ff(&cells, "%d ", offset)
		}
	}

	gio.Ff(&cells, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, g := range m.Groups {
		for _, e := range g.Elements {
			vtk, err := vtkCode(e)
			if err != nil {
				return err
			}
			gio.Ff(&cells, "%d ", vtk)
		}
	}
	gio.Ff(&cells, "\n</DataArray>\n</Cells>\n")

	gio.Ff(&celldata, "<CellData Scalars=\"group\">\n<DataArray type=\"Int32\" Name=\"group\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, g := range m.Groups {
		for range g.Elements {
			gio.Ff(&celldata, "%d ", g.ID)
		}
	}
	gio.Ff(&celldata, "\n</DataArray>\n</CellData>\n")

	var hdr, foo bytes.Buffer
	gio.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	gio.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(m.Coordinates), nc)
	gio.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	for _, buf := range []*bytes.Buffer{&hdr, &points, &cells, &celldata, &foo} {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// vtkCode maps an element to its VTK cell-type code, panicking via
// chk.Panic on shapes the format cannot express (mirrors GenVtu.go's
// "cannot handle cell type" guard).
func vtkCode(e meshdata.Element) (int, error) {
	switch {
	case e.Type == meshdata.Node && len(e.Verts) == 1:
		return vtkVertex, nil
	case e.Type == meshdata.Line && len(e.Verts) == 2:
		return vtkLine, nil
	case e.IsTriangle():
		return vtkTriangle, nil
	case e.IsQuad():
		return vtkQuad, nil
	default:
		chk.Panic("vtkexport: cannot write element of type %v with %d vertices", e.Type, len(e.Verts))
	}
	return 0, nil
}

// Writer implements collab.Writer, writing to an injected destination.
type Writer struct {
	Out io.Writer
}

// Write implements collab.Writer.
func (w Writer) Write(m meshdata.Mesh) error {
	return WriteVTU(w.Out, m)
}
