// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collab

import "log"

// cdtAllocators mirrors gofem/mconduct's allocators map[string]func() Model
// pattern: a named factory registry for CDT collaborators.
var cdtAllocators = map[string]func() CDT{}

// RegisterCDT registers a CDT allocator under name. Re-registering a name
// replaces the previous allocator.
func RegisterCDT(name string, alloc func() CDT) {
	cdtAllocators[name] = alloc
}

// GetCDT returns a new instance of the CDT registered under name, or nil
// if name is unknown.
func GetCDT(name string) CDT {
	alloc, ok := cdtAllocators[name]
	if !ok {
		return nil
	}
	return alloc()
}

// repairerAllocators is the same registry idiom for Repairer.
var repairerAllocators = map[string]func() Repairer{}

// RegisterRepairer registers a Repairer allocator under name.
func RegisterRepairer(name string, alloc func() Repairer) {
	repairerAllocators[name] = alloc
}

// GetRepairer returns a new instance of the Repairer registered under
// name, or nil if name is unknown.
func GetRepairer(name string) Repairer {
	alloc, ok := repairerAllocators[name]
	if !ok {
		return nil
	}
	return alloc()
}

// manifolderAllocators is the same registry idiom for Manifolder.
var manifolderAllocators = map[string]func() Manifolder{}

// RegisterManifolder registers a Manifolder allocator under name.
func RegisterManifolder(name string, alloc func() Manifolder) {
	manifolderAllocators[name] = alloc
}

// GetManifolder returns a new instance of the Manifolder registered under
// name, or nil if name is unknown.
func GetManifolder(name string) Manifolder {
	alloc, ok := manifolderAllocators[name]
	if !ok {
		return nil
	}
	return alloc()
}

// LogRegistered prints every registered collaborator name, mirroring
// gofem/mconduct.LogModels.
func LogRegistered() {
	log.Printf("collab: registered CDT implementations:")
	for name := range cdtAllocators {
		log.Printf(" %s", name)
	}
	log.Printf("collab: registered Repairer implementations:")
	for name := range repairerAllocators {
		log.Printf(" %s", name)
	}
	log.Printf("collab: registered Manifolder implementations:")
	for name := range manifolderAllocators {
		log.Printf(" %s", name)
	}
}

func init() {
	RegisterCDT("fan", func() CDT { return FanCDT{} })
	RegisterRepairer("passthrough", func() Repairer { return PassthroughRepairer{} })
	RegisterRepairer("convexhull", func() Repairer { return ConvexHullRepairer{} })
	RegisterManifolder("passthrough", func() Manifolder { return PassthroughManifolder{} })
}
