// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"github.com/cpmech/gridmesh/collab"
	"github.com/cpmech/gridmesh/meshdata"
	"github.com/cpmech/gridmesh/report"
)

// routeVolumeGroups replaces every group named in volumeGroups with the
// triangulated boundary surface a Repairer+Manifolder pair produces from
// it, leaving every other group untouched (§4.7's "buildVolumeMesh from
// external repairer, extractSurfaceFromVolumeMeshes from external
// manifolder").
func routeVolumeGroups(m meshdata.Mesh, volumeGroups map[int]bool, repairer collab.Repairer, manifolder collab.Manifolder, log report.Logger) (meshdata.Mesh, error) {
	if len(volumeGroups) == 0 {
		return m, nil
	}
	out := meshdata.Mesh{Grid: m.Grid.Clone()}
	for _, g := range m.Groups {
		if !volumeGroups[g.ID] {
			remapped := remapGroupInto(&out, g, m.Coordinates)
			out.Groups = append(out.Groups, remapped)
			continue
		}
		log.Info("driver: routing group %d through repairer+manifolder", g.ID)
		sub := extractGroup(m, g)
		repaired, err := repairer.Repair(sub)
		if err != nil {
			return meshdata.Mesh{}, err
		}
		surface, err := manifolder.ExtractSurface(repaired)
		if err != nil {
			return meshdata.Mesh{}, err
		}
		for _, sg := range surface.Groups {
			remapped := remapGroupInto(&out, meshdata.Group{ID: g.ID, Elements: sg.Elements}, surface.Coordinates)
			out.Groups = append(out.Groups, remapped)
		}
	}
	return out, nil
}

// extractGroup builds a standalone mesh containing only g's elements and
// the coordinates they reference, renumbered densely.
func extractGroup(m meshdata.Mesh, g meshdata.Group) meshdata.Mesh {
	sub := meshdata.Mesh{Grid: m.Grid.Clone()}
	remapped := remapGroupInto(&sub, g, m.Coordinates)
	sub.Groups = []meshdata.Group{remapped}
	return sub
}

// remapGroupInto appends g's coordinates (via coords) into dst's arena,
// returning an equivalent group whose vertex ids index dst.Coordinates.
func remapGroupInto(dst *meshdata.Mesh, g meshdata.Group, coords []meshdata.Coordinate) meshdata.Group {
	remap := map[int]int{}
	ng := meshdata.Group{ID: g.ID}
	for _, e := range g.Elements {
		ne := e.Clone()
		for i, v := range ne.Verts {
			nid, ok := remap[v]
			if !ok {
				nid = dst.AddVertex(coords[v])
				remap[v] = nid
			}
			ne.Verts[i] = nid
		}
		ng.Elements = append(ng.Elements, ne)
	}
	return ng
}
