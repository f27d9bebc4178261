// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snapper optionally snaps vertices within a forbidden distance
// of a grid plane onto that plane, downgrading elements that collapse
// as a result (§4.5).
package snapper

// Options configures Snap, grounded on the source's SnapperOptions.
type Options struct {
	// ForbiddenLength is the minimum distance, in relative units, a
	// coordinate must stand from a grid plane to avoid being snapped.
	ForbiddenLength float64
	// EdgePoints is how many interior samples per cell-edge are
	// considered "sticky" targets in addition to the plane itself.
	EdgePoints int
}
