// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver composes the pipeline stages with options, handling
// the non-core boundary: the Repairer/Manifolder hand-off for volume
// groups, and converting between absolute and relative coordinates at
// the entry/exit points (§4.7).
package driver

import "github.com/cpmech/gridmesh/snapper"

// OffgridOptions configures buildOffgridMesh (§6).
type OffgridOptions struct {
	// ForceSlicing: if false, the non-slicing enlarged grid is used and
	// only the post-slicing mesh carries the slicing grid.
	ForceSlicing bool
	// CollapseInternalPoints enables the Smoother.
	CollapseInternalPoints bool
	// Snap enables the Snapper.
	Snap bool
	// DecimalPlacesInCollapser sets the Collapser's quantisation factor.
	DecimalPlacesInCollapser int
	// SnapperOptions is forwarded to the Snapper when Snap is true.
	SnapperOptions snapper.Options
	// VolumeGroups names the group ids whose elements are treated as
	// solid bodies, routed through the Repairer then the Manifolder
	// before the rest of the pipeline sees them.
	VolumeGroups map[int]bool
	// Repairer/Manifolder collaborator names, resolved via collab's
	// registry; both default to "passthrough" when empty.
	RepairerName   string
	ManifolderName string
	// CDTName selects the Slicer's triangulation collaborator; default
	// "fan".
	CDTName string
}

// DefaultOffgridOptions matches §6's defaults.
func DefaultOffgridOptions() OffgridOptions {
	return OffgridOptions{
		ForceSlicing:             true,
		CollapseInternalPoints:   true,
		Snap:                     true,
		DecimalPlacesInCollapser: 4,
		SnapperOptions:           snapper.Options{ForbiddenLength: 0.0, EdgePoints: 0},
		RepairerName:             "passthrough",
		ManifolderName:           "passthrough",
		CDTName:                  "fan",
	}
}
