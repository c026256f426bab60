// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import (
	"iter"
	"strings"
)

// ResourceConfigValue pairs a Value with the configuration and product it applies under. Entries keep these
// sorted by (config, product) ascending, with duplicates under that key forbidden.
type ResourceConfigValue struct {
	Config  ConfigDescription
	Product string
	Value   Value
}

func cmpConfigValue(a, b ResourceConfigValue) int {
	if d := a.Config.Compare(b.Config); d != 0 {
		return d
	}

	return strings.Compare(a.Product, b.Product)
}

// ResourceEntry is one named resource within a ResourceTableType: its symbol visibility plus every
// configuration-specific value defined for it.
type ResourceEntry struct {
	Name   string
	Id     Maybe[uint16]
	Symbol SymbolStatus
	values sortedSlice[ResourceConfigValue]
}

func newResourceEntry(name string) *ResourceEntry {
	return &ResourceEntry{Name: name, values: newSortedSlice(cmpConfigValue)}
}

// Clone copies the entry's name, id, symbol status and config-value list; the Value objects themselves are
// shared with the original, not cloned or re-pooled — callers that move an entry across tables must clone each
// Value explicitly against the destination pool (see ResourceTable merge/clone paths).
func (e *ResourceEntry) Clone() *ResourceEntry {
	clone := &ResourceEntry{Name: e.Name, Id: e.Id, Symbol: e.Symbol, values: newSortedSlice(cmpConfigValue)}
	for _, v := range e.values.All() {
		clone.values.Insert(v)
	}

	return clone
}

// Values iterates the entry's config-values in stored (sorted) order.
func (e *ResourceEntry) Values() []ResourceConfigValue {
	return slicesOf(e.values.All())
}

// FindValue returns the config-value exactly matching (config, product).
func (e *ResourceEntry) FindValue(config ConfigDescription, product string) (ResourceConfigValue, bool) {
	return e.values.Find(ResourceConfigValue{Config: config, Product: product})
}

// FindValueDefaultProduct is the convenience overload of FindValue defaulting product to "".
func (e *ResourceEntry) FindValueDefaultProduct(config ConfigDescription) (ResourceConfigValue, bool) {
	return e.FindValue(config, "")
}

// FindAllValues returns every ResourceConfigValue whose config equals config, in stored order.
func (e *ResourceEntry) FindAllValues(config ConfigDescription) []ResourceConfigValue {
	var out []ResourceConfigValue
	for _, v := range e.values.All() {
		if v.Config.Equal(config) {
			out = append(out, v)
		}
	}

	return out
}

// FindValuesIf returns every ResourceConfigValue satisfying predicate, in stored order — a generic scan
// independent of the specific by-config query FindAllValues performs.
func (e *ResourceEntry) FindValuesIf(predicate func(ResourceConfigValue) bool) []ResourceConfigValue {
	var out []ResourceConfigValue
	for _, v := range e.values.All() {
		if predicate(v) {
			out = append(out, v)
		}
	}

	return out
}

// addResourceValue binary-searches by (config, product); on exact match it runs the collision resolver and
// acts on its verdict; on miss it inserts at the lower-bound position.
func (e *ResourceEntry) addResourceValue(incoming ResourceConfigValue) (CollisionResult, error) {
	idx, found := e.values.Search(incoming)
	if !found {
		e.values.InsertAt(idx, incoming)
		return TakeNew, nil
	}

	existing, _ := e.values.At(idx)
	result := ResolveValueCollision(existing.Value, incoming.Value)

	switch result {
	case KeepOriginal:
		// incoming is discarded; nothing to do.
	case TakeNew:
		e.values.Replace(idx, incoming)
	case Conflict:
		return Conflict, &TableError{
			Err:     ErrDuplicateValue,
			At:      incoming.Value.Src(),
			PriorAt: Some(existing.Value.Src()),
		}
	}

	return result, nil
}

func slicesOf(seq iter.Seq[ResourceConfigValue]) []ResourceConfigValue {
	var out []ResourceConfigValue
	seq(func(v ResourceConfigValue) bool {
		out = append(out, v)
		return true
	})

	return out
}
