// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report provides an injectable logger for pipeline
// observations ("N triangles collapsed", "M vertices snapped") that are
// not errors (§7). No package keeps a package-level default: every
// caller that wants logging passes one in, unlike gofem/fem's global
// utl.Tsilent/MPI rank-keyed singletons.
package report

import "github.com/cpmech/gosl/io"

// Logger receives warnings and informational observations from the
// pipeline stages and the driver.
type Logger interface {
	Warn(format string, args ...interface{})
	Info(format string, args ...interface{})
}

// ConsoleLogger writes to stdout using gosl/io's coloured Pf-family
// printers, the same palette gofem's msh.go/t_shape_test.go use:
// io.Pfyel for warnings, io.Pforan for informational notes.
type ConsoleLogger struct{}

// Warn implements Logger.
func (ConsoleLogger) Warn(format string, args ...interface{}) {
	io.Pfyel(format+"\n", args...)
}

// Info implements Logger.
func (ConsoleLogger) Info(format string, args ...interface{}) {
	io.Pforan(format+"\n", args...)
}

// NullLogger discards everything; useful for tests and library callers
// that do not want console output.
type NullLogger struct{}

// Warn implements Logger.
func (NullLogger) Warn(format string, args ...interface{}) {}

// Info implements Logger.
func (NullLogger) Info(format string, args ...interface{}) {}
