// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import "strconv"

// Span marks a formatting range within a StyledString's text, e.g. an HTML-ish <b> span.
type Span struct {
	Tag        string
	FirstChar  uint32
	LastChar   uint32
}

// StyledStringValue is the structural payload a StyleRef dereferences to: text plus the spans over it.
// Two StyledStringValues are equal (and therefore deduplicated) only if both text and spans match exactly.
type StyledStringValue struct {
	Text  string
	Spans []Span
}

// StringRef is a cheap handle into a StringPool's plain-string table. Its zero value is never a valid handle;
// valid refs are only minted by StringPool.MakeRef.
type StringRef struct {
	pool  *StringPool
	index int
}

// Index returns the stable 0-based position of the referenced string in its pool's serialized order.
func (r StringRef) Index() int {
	return r.index
}

// Deref returns the referenced text from the pool that minted the ref. It returns "" if that pool holds no
// string at the ref's index; the zero-value StringRef, which has no pool, panics.
func (r StringRef) Deref() string {
	return r.pool.stringAt(r.index)
}

// String formats the ref the way debug dumps print string handles, e.g. "@string/12".
func (r StringRef) String() string {
	return "@string/" + strconv.Itoa(r.index)
}

// StyleRef is the styled-string counterpart of StringRef.
type StyleRef struct {
	pool  *StringPool
	index int
}

// Index returns the stable 0-based position in the pool's styled-string table.
func (r StyleRef) Index() int {
	return r.index
}

// Deref returns the referenced styled value.
func (r StyleRef) Deref() StyledStringValue {
	return r.pool.styleAt(r.index)
}

func (r StyleRef) String() string {
	return "@style/" + strconv.Itoa(r.index)
}

// StringPool is a de-duplicated, append-only (during table build) store of plain and styled strings. Refs
// minted from one pool are not valid against another; Value.Clone re-mints every ref it touches into the
// destination pool, which is the only supported way to move a value across tables.
type StringPool struct {
	strings    []string
	stringIdx  map[string]int
	styles     []StyledStringValue
}

// NewStringPool returns an empty pool.
func NewStringPool() *StringPool {
	return &StringPool{stringIdx: map[string]int{}}
}

// MakeRef returns a StringRef for text, reusing an existing entry if the exact same text was already interned.
func (p *StringPool) MakeRef(text string) StringRef {
	if idx, ok := p.stringIdx[text]; ok {
		return StringRef{pool: p, index: idx}
	}

	idx := len(p.strings)
	p.strings = append(p.strings, text)
	p.stringIdx[text] = idx

	return StringRef{pool: p, index: idx}
}

// MakeStyleRef returns a StyleRef for a styled string. Styled strings are compared structurally (text plus
// spans), so unlike plain strings, two textually-identical-but-differently-styled values are never merged.
func (p *StringPool) MakeStyleRef(v StyledStringValue) StyleRef {
	for idx, existing := range p.styles {
		if styledEqual(existing, v) {
			return StyleRef{pool: p, index: idx}
		}
	}

	idx := len(p.styles)
	p.styles = append(p.styles, v)

	return StyleRef{pool: p, index: idx}
}

func styledEqual(a, b StyledStringValue) bool {
	if a.Text != b.Text || len(a.Spans) != len(b.Spans) {
		return false
	}

	for i := range a.Spans {
		if a.Spans[i] != b.Spans[i] {
			return false
		}
	}

	return true
}

// Len returns the number of plain strings interned so far.
func (p *StringPool) Len() int {
	return len(p.strings)
}

// StyleLen returns the number of styled strings interned so far.
func (p *StringPool) StyleLen() int {
	return len(p.styles)
}

func (p *StringPool) stringAt(idx int) string {
	if idx < 0 || idx >= len(p.strings) {
		return ""
	}

	return p.strings[idx]
}

func (p *StringPool) styleAt(idx int) StyledStringValue {
	if idx < 0 || idx >= len(p.styles) {
		return StyledStringValue{}
	}

	return p.styles[idx]
}
