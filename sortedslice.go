// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import (
	"iter"
	"slices"
)

// Cloneable is implemented by element types of a [sortedSlice] that need a deep copy instead of a shallow one.
type Cloneable[T any] interface {
	Clone() T
}

// sortedSlice is a strictly ordered, duplicate-free container whose order and equality are defined by an
// injected three-way comparator. It replaces a hash map wherever deterministic iteration order matters
// (reproducible binary output, diff-friendly debug dumps) and wherever a "first key not less than x"
// lower-bound insertion point is required. The whole core is single-threaded and synchronous, so unlike its
// ancestor this container carries no locking or double-buffering.
type sortedSlice[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// newSortedSlice creates a sortedSlice ordered by cmp, a three-way comparator (negative, zero, positive).
func newSortedSlice[T any](cmp func(a, b T) int) sortedSlice[T] {
	return sortedSlice[T]{cmp: cmp}
}

// Len returns the number of elements.
func (s *sortedSlice[T]) Len() int {
	return len(s.items)
}

// At returns the element at position idx.
func (s *sortedSlice[T]) At(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(s.items) {
		return zero, false
	}

	return s.items[idx], true
}

// Search returns the index of the element comparing equal to probe under the configured comparator, and whether
// it was found. If not found, the index is the lower-bound insertion point that keeps the slice sorted.
func (s *sortedSlice[T]) Search(probe T) (idx int, found bool) {
	return slices.BinarySearchFunc(s.items, probe, s.cmp)
}

// Find returns the element comparing equal to probe.
func (s *sortedSlice[T]) Find(probe T) (T, bool) {
	idx, found := s.Search(probe)
	if !found {
		var zero T
		return zero, false
	}

	return s.items[idx], true
}

// Insert places val at its sorted position. It returns false without mutating the slice if an element comparing
// equal is already present — callers that need replace-on-conflict semantics should use [sortedSlice.Replace].
func (s *sortedSlice[T]) Insert(val T) bool {
	idx, found := s.Search(val)
	if found {
		return false
	}

	s.items = slices.Insert(s.items, idx, val)
	return true
}

// InsertAt inserts val at the given (already known to be correct) index, without re-searching.
func (s *sortedSlice[T]) InsertAt(idx int, val T) {
	s.items = slices.Insert(s.items, idx, val)
}

// Replace overwrites the element at idx in place. The caller must ensure idx was obtained from [sortedSlice.Search]
// with found == true, so ordering is preserved.
func (s *sortedSlice[T]) Replace(idx int, val T) {
	s.items[idx] = val
}

// All iterates the elements in stored (sorted) order.
func (s *sortedSlice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range s.items {
			if !yield(t) {
				return
			}
		}
	}
}

// Clone deep-clones itself and, where T implements [Cloneable], every contained element.
func (s *sortedSlice[T]) Clone() sortedSlice[T] {
	out := make([]T, 0, len(s.items))
	for _, t := range s.items {
		if cloneable, ok := any(t).(Cloneable[T]); ok {
			out = append(out, cloneable.Clone())
		} else {
			out = append(out, t)
		}
	}

	return sortedSlice[T]{items: out, cmp: s.cmp}
}
