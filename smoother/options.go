// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smoother migrates a sliced-and-collapsed mesh's off-grid
// vertices toward grid corners/edges while preserving sharp features
// (§4.4).
package smoother

// Options configures Smooth.
type Options struct {
	// FeatureDetectionAngle is the maximum angle, in degrees, between two
	// adjacent triangles' normals for them to belong to the same disjoint
	// smooth set (patch).
	FeatureDetectionAngle float64
	// ContourAlignmentAngle, in degrees, sets the distance tolerance
	// tan(angle), in relative units: collapsePointsOnCellEdges snaps a
	// vertex onto a cell edge when its offsets from both of that edge's
	// planes are within it, and collapsePointsOnFeatureEdges projects a
	// boundary vertex onto a feature edge when it lies within it.
	ContourAlignmentAngle float64
}

// DefaultOptions mirrors the off-grid driver's defaults.
func DefaultOptions() Options {
	return Options{FeatureDetectionAngle: 30, ContourAlignmentAngle: 5}
}
