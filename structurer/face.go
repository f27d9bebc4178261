// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structurer

// face identifies one of a cell's six faces: the plane where axis is
// pinned to value (0 = lower, 1 = upper).
type face struct {
	axis  int
	value int
}

// otherAxes returns the two axes other than f.axis, in ascending order.
func (f face) otherAxes() (int, int) {
	switch f.axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// contains reports whether corner k lies on face f.
func (f face) contains(k cornerKey) bool {
	return k[f.axis] == f.value
}

// cyclicOrder is the canonical (o1,o2) value pairs in winding order, so
// that consecutive entries differ in exactly one axis (§4.6 step 4).
var cyclicOrder = [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// orderFaceCorners returns the 4 corners of face f present in present,
// arranged in cyclicOrder; ok is false unless all 4 are present.
func orderFaceCorners(f face, present map[cornerKey]bool) ([4]cornerKey, bool) {
	o1, o2 := f.otherAxes()
	var out [4]cornerKey
	for i, pair := range cyclicOrder {
		k := cornerKey{}
		k[f.axis] = f.value
		k[o1] = pair[0]
		k[o2] = pair[1]
		if !present[k] {
			return out, false
		}
		out[i] = k
	}
	return out, true
}

// missingCorner returns the one cornerKey on face f whose (o1,o2) pair
// is not present, along with ok=true iff exactly one is missing.
func missingCorner(f face, present map[cornerKey]bool) (cornerKey, bool) {
	o1, o2 := f.otherAxes()
	var missing cornerKey
	count := 0
	for _, pair := range cyclicOrder {
		k := cornerKey{}
		k[f.axis] = f.value
		k[o1] = pair[0]
		k[o2] = pair[1]
		if !present[k] {
			missing = k
			count++
		}
	}
	return missing, count == 1
}

// allFaces enumerates the cell's six faces.
func allFaces() []face {
	return []face{
		{axis: 0, value: 0}, {axis: 0, value: 1},
		{axis: 1, value: 0}, {axis: 1, value: 1},
		{axis: 2, value: 0}, {axis: 2, value: 1},
	}
}
