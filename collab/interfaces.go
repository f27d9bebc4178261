// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collab defines the external-collaborator contracts the core
// assumes (§6): Reader, Writer, Repairer, Manifolder and CDT. These are
// interfaces only — the core never implements a full mesh-file reader,
// a production repairer/manifolder, or a production-grade constrained
// Delaunay triangulator. It does register small, swappable default
// implementations (a convex-polygon fan CDT, a passthrough Repairer) so
// the pipeline is runnable end-to-end without an external dependency;
// real deployments are expected to register their own.
package collab

import "github.com/cpmech/gridmesh/meshdata"

// Reader returns a Mesh with a bound Grid and at least one Group of
// triangles (§6). Reading a concrete file format is out of scope for the
// core; this interface exists so drivers can be parameterised over it.
type Reader interface {
	Read() (meshdata.Mesh, error)
}

// Writer accepts a Mesh whose coordinates are absolute (§6). Writing a
// concrete file format is out of scope for the core.
type Writer interface {
	Write(m meshdata.Mesh) error
}

// Repairer fills holes, stitches, and resolves non-manifold edges in a
// volume or surface mesh; it fails if the mesh self-intersects (§6).
type Repairer interface {
	Repair(m meshdata.Mesh) (meshdata.Mesh, error)
}

// Manifolder returns the closed surface mesh bounding a volume mesh
// (§6).
type Manifolder interface {
	ExtractSurface(m meshdata.Mesh) (meshdata.Mesh, error)
}

// CDT triangulates a polygon (given as an ordered, closed loop of 3-D
// points already known to be coplanar and convex — §4.2A) with no
// additional constraining edges beyond its own boundary, returning
// vertex-index triples into the input slice.
type CDT interface {
	Triangulate(poly []meshdata.Coordinate) ([][3]int, error)
}
