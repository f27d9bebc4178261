// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshdata holds the core data model: Coordinate, Grid, Cell,
// Surfel, Element, Group and Mesh. It has no dependency on the pipeline
// stages; gridtools, slicer, collapser, smoother, snapper and structurer
// all operate on these types from the outside.
package meshdata

import "math"

// Coordinate is an ordered triple of real numbers. Unlike gosl/la's
// []float64 vectors, it is a fixed-arity value type so it can be used
// directly as a map key after quantisation (§3 post-collapse invariant).
type Coordinate struct {
	X, Y, Z float64
}

// NewCoordinate builds a Coordinate from three components.
func NewCoordinate(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Comp returns the component along axis a (0=X, 1=Y, 2=Z).
func (c Coordinate) Comp(axis int) float64 {
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// WithComp returns a copy of c with component axis replaced by v.
func (c Coordinate) WithComp(axis int, v float64) Coordinate {
	switch axis {
	case 0:
		c.X = v
	case 1:
		c.Y = v
	default:
		c.Z = v
	}
	return c
}

// Add returns c + o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Sub returns c - o.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

// Scale returns c * s.
func (c Coordinate) Scale(s float64) Coordinate {
	return Coordinate{c.X * s, c.Y * s, c.Z * s}
}

// Dot returns the dot product c·o.
func (c Coordinate) Dot(o Coordinate) float64 {
	return c.X*o.X + c.Y*o.Y + c.Z*o.Z
}

// Cross returns the cross product c×o.
func (c Coordinate) Cross(o Coordinate) Coordinate {
	return Coordinate{
		c.Y*o.Z - c.Z*o.Y,
		c.Z*o.X - c.X*o.Z,
		c.X*o.Y - c.Y*o.X,
	}
}

// Norm returns the Euclidean length of c.
func (c Coordinate) Norm() float64 {
	return math.Sqrt(c.Dot(c))
}

// Lerp returns the point a fraction t of the way from c to o.
func (c Coordinate) Lerp(o Coordinate, t float64) Coordinate {
	return c.Add(o.Sub(c).Scale(t))
}

// Round quantises every component to the nearest multiple of 1/factor
// (factor == 10^decimalPlaces), the operation the Collapser uses before
// fusing coincident vertices (§4.3 step 1).
func (c Coordinate) Round(factor float64) Coordinate {
	return Coordinate{
		round(c.X, factor),
		round(c.Y, factor),
		round(c.Z, factor),
	}
}

func round(v, factor float64) float64 {
	return math.Round(v*factor) / factor
}

// ApproxEqual reports whether c and o are within tol on every axis.
func (c Coordinate) ApproxEqual(o Coordinate, tol float64) bool {
	return math.Abs(c.X-o.X) <= tol && math.Abs(c.Y-o.Y) <= tol && math.Abs(c.Z-o.Z) <= tol
}
