// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import (
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"
)

// AttributeSymbol is one (reference, value) entry of an Attribute's enum/flag symbol table.
type AttributeSymbol struct {
	Ref   Reference
	Value uint32
}

// Attribute is a full or partial declaration of an `attr` resource: its allowed value formats (TypeMask) and,
// for enum/flag attributes, its named symbol values. A bare reference inside a styleable (a USE record) is
// modeled as a weak Attribute with TypeMask == FormatAny.
type Attribute struct {
	valueBase
	Weak     bool
	TypeMask uint32
	Symbols  []AttributeSymbol
}

func NewAttribute(weak bool, typeMask uint32) *Attribute {
	return &Attribute{Weak: weak, TypeMask: typeMask}
}

func (a *Attribute) IsWeak() bool { return a.Weak }

func (a *Attribute) Flatten() (ResValue, error) {
	return ResValue{}, ErrCompoundValue
}

// CloneValue ignores its pool argument: an Attribute's Symbols hold References, which carry an optional Name
// (a plain string pair, not a pooled ref), so there is nothing here to re-mint into a destination pool.
func (a *Attribute) CloneValue(_ *StringPool) Value {
	clone := &Attribute{valueBase: a.valueBase, Weak: a.Weak, TypeMask: a.TypeMask}
	clone.Symbols = append(clone.Symbols, a.Symbols...)
	return clone
}

func (a *Attribute) Print() string {
	return fmt.Sprintf("(attr) weak=%t mask=%s", a.Weak, a.printMask())
}

// printMask renders TypeMask as a pipe-joined list of format names, e.g. "reference|string".
func (a *Attribute) printMask() string {
	if a.TypeMask == FormatAny {
		return "any"
	}

	var parts []string
	add := func(bit uint32, name string) {
		if a.TypeMask&bit != 0 {
			parts = append(parts, name)
		}
	}

	add(FormatReference, "reference")
	add(FormatString, "string")
	add(FormatInteger, "integer")
	add(FormatBoolean, "boolean")
	add(FormatColor, "color")
	add(FormatFloat, "float")
	add(FormatDimension, "dimension")
	add(FormatFraction, "fraction")
	add(FormatEnum, "enum")
	add(FormatFlags, "flags")

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

func (a *Attribute) Accept(v ValueVisitor) { v.VisitAttribute(a) }

// StyleEntry is one (attribute key, value) pair of a Style.
type StyleEntry struct {
	Key   Reference
	Value Item
}

// Style describes a set of attribute values inherited from an optional parent style.
type Style struct {
	valueBase
	Parent         Maybe[Reference]
	ParentInferred bool
	Entries        []StyleEntry
}

func NewStyle() *Style { return &Style{} }

func (s *Style) IsWeak() bool { return false }
func (s *Style) Flatten() (ResValue, error) {
	return ResValue{}, ErrCompoundValue
}
func (s *Style) CloneValue(pool *StringPool) Value {
	clone := &Style{valueBase: s.valueBase, Parent: s.Parent, ParentInferred: s.ParentInferred}
	clone.Entries = make([]StyleEntry, len(s.Entries))
	for i, e := range s.Entries {
		clone.Entries[i] = StyleEntry{Key: e.Key, Value: e.Value.CloneValue(pool).(Item)}
	}

	return clone
}
func (s *Style) Print() string {
	return fmt.Sprintf("(style) parent=%v entries=%d", s.Parent, len(s.Entries))
}
func (s *Style) Accept(v ValueVisitor) { v.VisitStyle(s) }

// Array is an ordered sequence of Items.
type Array struct {
	valueBase
	Elements []Item
}

func NewArray() *Array { return &Array{} }

func (a *Array) IsWeak() bool { return false }
func (a *Array) Flatten() (ResValue, error) {
	return ResValue{}, ErrCompoundValue
}
func (a *Array) CloneValue(pool *StringPool) Value {
	clone := &Array{valueBase: a.valueBase}
	clone.Elements = make([]Item, len(a.Elements))
	for i, e := range a.Elements {
		clone.Elements[i] = e.CloneValue(pool).(Item)
	}

	return clone
}
func (a *Array) Print() string         { return fmt.Sprintf("(array) len=%d", len(a.Elements)) }
func (a *Array) Accept(v ValueVisitor) { v.VisitArray(a) }

// Plural holds up to six CLDR plural-form variants, one optional Item per plural.Form, sized to
// plural.Many+1 since Other sorts below Many in the enum ordering.
type Plural struct {
	valueBase
	Slots [plural.Many + 1]Maybe[Item]
}

func NewPlural() *Plural { return &Plural{} }

// Set stores item in the given CLDR plural-form slot.
func (p *Plural) Set(form plural.Form, item Item) {
	p.Slots[form] = Some(item)
}

// Get returns the item stored for the given CLDR plural-form slot, if any.
func (p *Plural) Get(form plural.Form) (Item, bool) {
	return p.Slots[form].Get()
}

func (p *Plural) IsWeak() bool { return false }
func (p *Plural) Flatten() (ResValue, error) {
	return ResValue{}, ErrCompoundValue
}
func (p *Plural) CloneValue(pool *StringPool) Value {
	clone := &Plural{valueBase: p.valueBase}
	for i, slot := range p.Slots {
		if item, ok := slot.Get(); ok {
			clone.Slots[i] = Some(item.CloneValue(pool).(Item))
		}
	}

	return clone
}
var pluralSlotNames = [plural.Many + 1]string{
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
	plural.Other: "other",
}

func (p *Plural) Print() string {
	var names []string
	for i, slot := range p.Slots {
		if slot.IsSome() {
			names = append(names, pluralSlotNames[i])
		}
	}

	return fmt.Sprintf("(plural) slots=%s", strings.Join(names, ","))
}
func (p *Plural) Accept(v ValueVisitor) { v.VisitPlural(p) }

// Styleable is a named group of attribute references, used to generate a set of per-attribute indices for a
// custom view's attribute array.
type Styleable struct {
	valueBase
	Entries []Reference
}

func NewStyleable() *Styleable { return &Styleable{} }

func (s *Styleable) IsWeak() bool { return false }
func (s *Styleable) Flatten() (ResValue, error) {
	return ResValue{}, ErrCompoundValue
}
func (s *Styleable) CloneValue(_ *StringPool) Value {
	clone := &Styleable{valueBase: s.valueBase}
	clone.Entries = append(clone.Entries, s.Entries...)
	return clone
}
func (s *Styleable) Print() string         { return fmt.Sprintf("(styleable) entries=%d", len(s.Entries)) }
func (s *Styleable) Accept(v ValueVisitor) { v.VisitStyleable(s) }
