// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

// ResourceTablePackage groups every ResourceTableType sharing one package name within a table.
type ResourceTablePackage struct {
	Name  string
	Id    Maybe[uint8]
	types sortedSlice[*ResourceTableType]
}

func newResourceTablePackage(name string) *ResourceTablePackage {
	return &ResourceTablePackage{
		Name:  name,
		types: newSortedSlice(cmpTypeByOrdinal),
	}
}

func cmpTypeByOrdinal(a, b *ResourceTableType) int {
	return int(a.Type) - int(b.Type)
}

// Types iterates the package's types in ResourceType ordinal order.
func (p *ResourceTablePackage) Types() []*ResourceTableType {
	var out []*ResourceTableType
	for t := range p.types.All() {
		out = append(out, t)
	}

	return out
}

// FindType returns the type t, if present.
func (p *ResourceTablePackage) FindType(t ResourceType) (*ResourceTableType, bool) {
	return p.types.Find(&ResourceTableType{Type: t})
}

// findOrCreateType returns the existing type t, or creates, inserts, and returns a new one.
func (p *ResourceTablePackage) findOrCreateType(t ResourceType) *ResourceTableType {
	if existing, ok := p.FindType(t); ok {
		return existing
	}

	rt := newResourceTableType(t)
	p.types.Insert(rt)
	return rt
}
