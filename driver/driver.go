// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"github.com/cpmech/gridmesh/collab"
	"github.com/cpmech/gridmesh/collapser"
	"github.com/cpmech/gridmesh/gridtools"
	"github.com/cpmech/gridmesh/meshdata"
	"github.com/cpmech/gridmesh/report"
	"github.com/cpmech/gridmesh/slicer"
	"github.com/cpmech/gridmesh/smoother"
	"github.com/cpmech/gridmesh/snapper"
	"github.com/cpmech/gridmesh/structurer"
)

// toRelative converts every coordinate of m (assumed absolute) into
// relative units of grid, returning a new mesh bound to grid.
func toRelative(m meshdata.Mesh, grid meshdata.Grid) (meshdata.Mesh, error) {
	out := meshdata.Mesh{Grid: grid.Clone(), Groups: m.Groups}
	out.Coordinates = make([]meshdata.Coordinate, len(m.Coordinates))
	for i, c := range m.Coordinates {
		r, err := gridtools.AbsoluteToRelative(grid, c)
		if err != nil {
			return meshdata.Mesh{}, err
		}
		out.Coordinates[i] = r
	}
	return out, nil
}

// toAbsolute is the inverse of toRelative, using the same grid the
// relative coordinates were computed against.
func toAbsolute(m meshdata.Mesh, grid meshdata.Grid) (meshdata.Mesh, error) {
	out := m
	out.Coordinates = make([]meshdata.Coordinate, len(m.Coordinates))
	for i, c := range m.Coordinates {
		a, err := gridtools.RelativeToAbsolute(grid, c)
		if err != nil {
			return meshdata.Mesh{}, err
		}
		out.Coordinates[i] = a
	}
	return out, nil
}

// buildStructuredMesh composes Slicer -> Collapser -> Structurer (§4.7,
// §6's buildStructuredMesh). input's coordinates are absolute; output's
// are absolute in the same grid input carried.
func buildStructuredMesh(input meshdata.Mesh, decimalPlaces int, log report.Logger) (meshdata.Mesh, error) {
	enlarged := gridtools.GetExtendedDualGridMesh(input.Grid)

	rel, err := toRelative(input, enlarged)
	if err != nil {
		return meshdata.Mesh{}, err
	}

	sliced, err := slicer.Slice(rel, collab.GetCDT("fan"))
	if err != nil {
		return meshdata.Mesh{}, err
	}
	log.Info("driver: sliced into %d elements", sliced.NumElements())

	collapsed, err := collapser.Collapse(sliced, decimalPlaces)
	if err != nil {
		return meshdata.Mesh{}, err
	}
	log.Info("driver: collapsed to %d vertices, %d elements", collapsed.NumVertices(), collapsed.NumElements())

	structured, err := structurer.Structure(collapsed)
	if err != nil {
		return meshdata.Mesh{}, err
	}
	log.Info("driver: structured into %d elements", structured.NumElements())

	out, err := toAbsolute(structured, enlarged)
	if err != nil {
		return meshdata.Mesh{}, err
	}
	out.Grid = input.Grid.Clone()
	return out, nil
}

// BuildStructuredMesh is the exported entry point (§6).
func BuildStructuredMesh(input meshdata.Mesh, decimalPlaces int) (meshdata.Mesh, error) {
	return buildStructuredMesh(input, decimalPlaces, report.NullLogger{})
}

// BuildStructuredMeshWithLogger is BuildStructuredMesh with caller-chosen
// observability (§7's injectable-logger note).
func BuildStructuredMeshWithLogger(input meshdata.Mesh, decimalPlaces int, log report.Logger) (meshdata.Mesh, error) {
	if log == nil {
		log = report.NullLogger{}
	}
	return buildStructuredMesh(input, decimalPlaces, log)
}

// buildOffgridMesh composes Slicer -> Collapser -> (Smoother) ->
// (Snapper) (§4.7, §6's buildOffgridMesh), first routing any
// VolumeGroups through the configured Repairer+Manifolder.
func buildOffgridMesh(input meshdata.Mesh, opts OffgridOptions, log report.Logger) (meshdata.Mesh, error) {
	repairerName := opts.RepairerName
	if repairerName == "" {
		repairerName = "passthrough"
	}
	manifolderName := opts.ManifolderName
	if manifolderName == "" {
		manifolderName = "passthrough"
	}
	cdtName := opts.CDTName
	if cdtName == "" {
		cdtName = "fan"
	}

	repaired, err := routeVolumeGroups(input, opts.VolumeGroups, collab.GetRepairer(repairerName), collab.GetManifolder(manifolderName), log)
	if err != nil {
		return meshdata.Mesh{}, err
	}

	slicingGrid := input.Grid
	if opts.ForceSlicing {
		slicingGrid = gridtools.GetExtendedDualGridMesh(input.Grid)
	}

	rel, err := toRelative(repaired, slicingGrid)
	if err != nil {
		return meshdata.Mesh{}, err
	}

	sliced, err := slicer.Slice(rel, collab.GetCDT(cdtName))
	if err != nil {
		return meshdata.Mesh{}, err
	}
	log.Info("driver: sliced into %d elements", sliced.NumElements())

	cur, err := collapser.Collapse(sliced, opts.DecimalPlacesInCollapser)
	if err != nil {
		return meshdata.Mesh{}, err
	}
	log.Info("driver: collapsed to %d vertices, %d elements", cur.NumVertices(), cur.NumElements())

	if opts.CollapseInternalPoints {
		cur, err = smoother.Smooth(cur, smoother.DefaultOptions())
		if err != nil {
			return meshdata.Mesh{}, err
		}
		cur, err = collapser.Collapse(cur, opts.DecimalPlacesInCollapser)
		if err != nil {
			return meshdata.Mesh{}, err
		}
		log.Info("driver: smoothed and re-collapsed to %d vertices", cur.NumVertices())
	}

	if opts.Snap {
		snapOpts := opts.SnapperOptions
		cur, err = snapper.Snap(cur, snapOpts)
		if err != nil {
			return meshdata.Mesh{}, err
		}
		log.Info("driver: snapped to %d elements", cur.NumElements())
	}

	out, err := toAbsolute(cur, slicingGrid)
	if err != nil {
		return meshdata.Mesh{}, err
	}
	out.Grid = input.Grid.Clone()
	return out, nil
}

// BuildOffgridMesh is the exported entry point (§6).
func BuildOffgridMesh(input meshdata.Mesh, opts OffgridOptions) (meshdata.Mesh, error) {
	return buildOffgridMesh(input, opts, report.NullLogger{})
}

// BuildOffgridMeshWithLogger is BuildOffgridMesh with caller-chosen
// observability.
func BuildOffgridMeshWithLogger(input meshdata.Mesh, opts OffgridOptions, log report.Logger) (meshdata.Mesh, error) {
	if log == nil {
		log = report.NullLogger{}
	}
	return buildOffgridMesh(input, opts, log)
}
