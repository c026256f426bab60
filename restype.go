// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

// ResourceTableType groups every entry of one ResourceType within a package.
type ResourceTableType struct {
	Type   ResourceType
	Id     Maybe[uint8]
	Symbol SymbolStatus
	entries sortedSlice[*ResourceEntry]
}

func newResourceTableType(t ResourceType) *ResourceTableType {
	return &ResourceTableType{
		Type:    t,
		entries: newSortedSlice(cmpEntryByName),
	}
}

func cmpEntryByName(a, b *ResourceEntry) int {
	if a.Name < b.Name {
		return -1
	}

	if a.Name > b.Name {
		return 1
	}

	return 0
}

// Entries iterates the type's entries in name order.
func (t *ResourceTableType) Entries() []*ResourceEntry {
	var out []*ResourceEntry
	for e := range t.entries.All() {
		out = append(out, e)
	}

	return out
}

// FindEntry returns the entry named name, if present.
func (t *ResourceTableType) FindEntry(name string) (*ResourceEntry, bool) {
	return t.entries.Find(&ResourceEntry{Name: name})
}

// findOrCreateEntry returns the existing entry named name, or creates, inserts, and returns a new one.
func (t *ResourceTableType) findOrCreateEntry(name string) *ResourceEntry {
	if e, ok := t.FindEntry(name); ok {
		return e
	}

	e := newResourceEntry(name)
	t.entries.Insert(e)
	return e
}
