// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import (
	"fmt"
	"math"
)

// ReferenceKind distinguishes a plain resource reference from an attribute reference.
type ReferenceKind int

const (
	ReferenceResource ReferenceKind = iota
	ReferenceAttribute
)

// Reference is a (possibly still unresolved) pointer to another resource, identified by name, by id, or both.
// The core never resolves references at insertion time (spec Non-goals); an external linker pass reads and
// rewrites the Id field later.
type Reference struct {
	valueBase
	Kind ReferenceKind
	Name Maybe[ResourceName]
	Id   Maybe[ResourceId]
}

func NewReference(kind ReferenceKind) *Reference {
	return &Reference{Kind: kind}
}

func (r *Reference) isItem() {}

func (r *Reference) IsWeak() bool { return false }

func (r *Reference) Flatten() (ResValue, error) {
	dt := DataTypeReference
	if r.Kind == ReferenceAttribute {
		dt = DataTypeAttribute
	}

	data := uint32(0)
	if id, ok := r.Id.Get(); ok {
		data = id.Packed()
	}

	return ResValue{DataType: dt, Data: data}, nil
}

func (r *Reference) CloneValue(_ *StringPool) Value {
	clone := &Reference{valueBase: r.valueBase, Kind: r.Kind, Name: r.Name, Id: r.Id}
	return clone
}

func (r *Reference) Print() string {
	if name, ok := r.Name.Get(); ok {
		return "(reference) @" + name.String()
	}

	if id, ok := r.Id.Get(); ok {
		return fmt.Sprintf("(reference) @0x%08x", id.Packed())
	}

	return "(reference) @null"
}

func (r *Reference) Accept(v ValueVisitor) { v.VisitReference(r) }

// Id is the empty-payload "I am just an id" value, e.g. declared via `<item type="id" name="foo"/>`. It is
// always weak: any concrete definition for the same name takes precedence.
type Id struct {
	valueBase
}

func NewId() *Id { return &Id{} }

func (i *Id) isItem()            {}
func (i *Id) IsWeak() bool       { return true }
func (i *Id) Flatten() (ResValue, error) {
	return ResValue{DataType: DataTypeIntBoolean, Data: 0}, nil
}
func (i *Id) CloneValue(_ *StringPool) Value { return &Id{valueBase: i.valueBase} }
func (i *Id) Print() string                  { return "(id)" }
func (i *Id) Accept(v ValueVisitor)          { v.VisitId(i) }

// RawString is an unprocessed string value (the extension RAW_STRING dataType has no platform counterpart; it
// exists so an unresolved/unsanitized string can still flow through the pipeline).
type RawString struct {
	valueBase
	Ref StringRef
}

func NewRawString(ref StringRef) *RawString { return &RawString{Ref: ref} }

func (s *RawString) isItem()      {}
func (s *RawString) IsWeak() bool { return false }
func (s *RawString) Flatten() (ResValue, error) {
	if uint64(s.Ref.Index()) > math.MaxUint32 {
		return ResValue{}, fmt.Errorf("restable: raw string index %d exceeds wire range", s.Ref.Index())
	}

	return ResValue{DataType: DataTypeRawStringExt, Data: uint32(s.Ref.Index())}, nil
}
func (s *RawString) CloneValue(pool *StringPool) Value {
	return &RawString{valueBase: s.valueBase, Ref: pool.MakeRef(s.Ref.Deref())}
}
func (s *RawString) Print() string         { return fmt.Sprintf("(raw string) %q", s.Ref.Deref()) }
func (s *RawString) Accept(v ValueVisitor) { v.VisitRawString(s) }

// String is a plain, pool-backed string value.
type String struct {
	valueBase
	Ref StringRef
}

func NewString(ref StringRef) *String { return &String{Ref: ref} }

func (s *String) isItem()      {}
func (s *String) IsWeak() bool { return false }

// Flatten checks the index against the wire's 32-bit range before narrowing it into the 32-bit Data field.
func (s *String) Flatten() (ResValue, error) {
	if uint64(s.Ref.Index()) > math.MaxUint32 {
		return ResValue{}, fmt.Errorf("restable: string index %d exceeds wire range", s.Ref.Index())
	}

	return ResValue{DataType: DataTypeString, Data: uint32(s.Ref.Index())}, nil
}
func (s *String) CloneValue(pool *StringPool) Value {
	return &String{valueBase: s.valueBase, Ref: pool.MakeRef(s.Ref.Deref())}
}
func (s *String) Print() string         { return fmt.Sprintf("(string) %q", s.Ref.Deref()) }
func (s *String) Accept(v ValueVisitor) { v.VisitString(s) }

// StyledString is a string carrying formatting spans (bold, italic, …).
type StyledString struct {
	valueBase
	Ref StyleRef
}

func NewStyledString(ref StyleRef) *StyledString { return &StyledString{Ref: ref} }

func (s *StyledString) isItem()      {}
func (s *StyledString) IsWeak() bool { return false }
func (s *StyledString) Flatten() (ResValue, error) {
	if uint64(s.Ref.Index()) > math.MaxUint32 {
		return ResValue{}, fmt.Errorf("restable: style index %d exceeds wire range", s.Ref.Index())
	}

	return ResValue{DataType: DataTypeString, Data: uint32(s.Ref.Index())}, nil
}
func (s *StyledString) CloneValue(pool *StringPool) Value {
	return &StyledString{valueBase: s.valueBase, Ref: pool.MakeStyleRef(s.Ref.Deref())}
}
func (s *StyledString) Print() string {
	return fmt.Sprintf("(styled string) %q", s.Ref.Deref().Text)
}
func (s *StyledString) Accept(v ValueVisitor) { v.VisitStyledString(s) }

// FileHandle is an opaque collaborator-supplied handle to the backing file of a FileReference. File I/O itself
// is out of scope here; this package never dereferences it.
type FileHandle any

// FileReference points at a path (e.g. a compiled drawable or layout) and, optionally, a handle to the
// backing file supplied by the surrounding pipeline.
type FileReference struct {
	valueBase
	Path StringRef
	File Maybe[FileHandle]
}

func NewFileReference(path StringRef) *FileReference { return &FileReference{Path: path} }

func (f *FileReference) isItem()      {}
func (f *FileReference) IsWeak() bool { return false }
func (f *FileReference) Flatten() (ResValue, error) {
	if uint64(f.Path.Index()) > math.MaxUint32 {
		return ResValue{}, fmt.Errorf("restable: file reference index %d exceeds wire range", f.Path.Index())
	}

	return ResValue{DataType: DataTypeString, Data: uint32(f.Path.Index())}, nil
}
func (f *FileReference) CloneValue(pool *StringPool) Value {
	return &FileReference{valueBase: f.valueBase, Path: pool.MakeRef(f.Path.Deref()), File: f.File}
}
func (f *FileReference) Print() string { return fmt.Sprintf("(file) %q", f.Path.Deref()) }
func (f *FileReference) Accept(v ValueVisitor) { v.VisitFileReference(f) }

// BinaryPrimitive is a raw (dataType, data) pair already in wire form — booleans, integers, colors,
// dimensions, fractions and floats all flatten to this shape; the core only stores and passes it through.
type BinaryPrimitive struct {
	valueBase
	DataType uint8
	Data     uint32
}

func NewBinaryPrimitive(dataType uint8, data uint32) *BinaryPrimitive {
	return &BinaryPrimitive{DataType: dataType, Data: data}
}

func (p *BinaryPrimitive) isItem()      {}
func (p *BinaryPrimitive) IsWeak() bool { return false }
func (p *BinaryPrimitive) Flatten() (ResValue, error) {
	return ResValue{DataType: p.DataType, Data: p.Data}, nil
}
func (p *BinaryPrimitive) CloneValue(_ *StringPool) Value {
	return &BinaryPrimitive{valueBase: p.valueBase, DataType: p.DataType, Data: p.Data}
}
func (p *BinaryPrimitive) Print() string {
	return fmt.Sprintf("(primitive) type=0x%02x data=0x%08x", p.DataType, p.Data)
}
func (p *BinaryPrimitive) Accept(v ValueVisitor) { v.VisitBinaryPrimitive(p) }
