// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gridtools implements the geometry/grid primitives every other
// stage builds on: cell<->relative-coordinate conversion, tolerance
// predicates, and the typed error taxonomy (§4.1, §7).
package gridtools

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// ErrorKind enumerates the typed error taxonomy of §7.
type ErrorKind int

const (
	// InvalidInput: malformed grid, dangling vertex id, empty group.
	InvalidInput ErrorKind = iota
	// NonManifoldInput: the CDT collaborator rejected a self-intersecting
	// sub-polygon.
	NonManifoldInput
	// DegenerateAfterCollapse: triangles below the area threshold survive
	// the Collapser's iteration cap.
	DegenerateAfterCollapse
	// SmoothingBrokeInvariant: a post-smoothing triangle crosses a grid
	// plane.
	SmoothingBrokeInvariant
	// DomainError: a coordinate lies outside the grid's enlarged bounding
	// box.
	DomainError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case NonManifoldInput:
		return "NonManifoldInput"
	case DegenerateAfterCollapse:
		return "DegenerateAfterCollapse"
	case SmoothingBrokeInvariant:
		return "SmoothingBrokeInvariant"
	case DomainError:
		return "DomainError"
	default:
		return "UnknownError"
	}
}

// StageError is the concrete error type every stage returns to its
// caller (§7's propagation policy: "each stage returns its error to the
// caller; the driver aborts the pipeline"). Message carries group/element
// identifiers for the first offending primitive, per §7.
type StageError struct {
	Kind    ErrorKind
	Stage   string
	GroupID int
	ElemIdx int
	Msg     string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s (group=%d elem=%d): %s", e.Stage, e.Kind, e.GroupID, e.ElemIdx, e.Msg)
}

// NewStageError builds a *StageError, formatting Msg with chk.Err's
// conventions (plain Sprintf, no wrapped %w — gofem/shp.InvMap returns
// errors the same way).
func NewStageError(stage string, kind ErrorKind, groupID, elemIdx int, format string, args ...interface{}) error {
	return &StageError{
		Kind:    kind,
		Stage:   stage,
		GroupID: groupID,
		ElemIdx: elemIdx,
		Msg:     fmt.Sprintf(format, args...),
	}
}

// Panic is reserved for invariants a stage should itself have guaranteed
// (a bug in this library, not in caller data) — mirroring
// gofem/shp/algos.go's reservation of panic for truly-unreachable
// states. It defers to gosl/chk.Panic for the caller-info-annotated
// message.
func Panic(format string, args ...interface{}) {
	chk.Panic(format, args...)
}
