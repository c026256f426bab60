// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import "encoding/binary"

// Res_value data types, matching the platform's flattened binary representation.
const (
	DataTypeNull             uint8 = 0x00
	DataTypeReference        uint8 = 0x01
	DataTypeAttribute        uint8 = 0x02
	DataTypeString           uint8 = 0x03
	DataTypeFloat            uint8 = 0x04
	DataTypeDimension        uint8 = 0x05
	DataTypeFraction         uint8 = 0x06
	DataTypeIntDec           uint8 = 0x10
	DataTypeIntHex           uint8 = 0x11
	DataTypeIntBoolean       uint8 = 0x12
	DataTypeIntColorARGB8    uint8 = 0x1c
	DataTypeRawStringExt     uint8 = 0x7f // extension tag, not part of the platform's own enum
)

// ResValue is the flattened 5-byte wire representation of a single leaf value: a one-byte type tag followed by
// a 32-bit data word in device (little-endian) byte order.
type ResValue struct {
	DataType uint8
	Data     uint32
}

// hostToDevice32 is the explicit byte-order boundary the original source applies to every outgoing data field;
// it returns v unchanged on every host (AppendBinary's little-endian encoding fixes the byte order) and is kept
// as a named function so the wire contract is documented at the call site rather than assumed.
func hostToDevice32(v uint32) uint32 {
	return v
}

// AppendBinary appends the flattened 5-byte form of v to buf in device byte order.
func (v ResValue) AppendBinary(buf []byte) []byte {
	buf = append(buf, v.DataType)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], hostToDevice32(v.Data))
	return append(buf, tmp[:]...)
}

// Attribute format-bit flags for Attribute.TypeMask.
const (
	FormatReference uint32 = 0x0001
	FormatString    uint32 = 0x0002
	FormatInteger   uint32 = 0x0004
	FormatBoolean   uint32 = 0x0008
	FormatColor     uint32 = 0x0010
	FormatFloat     uint32 = 0x0020
	FormatDimension uint32 = 0x0040
	FormatFraction  uint32 = 0x0080
	FormatEnum      uint32 = 0x10000
	FormatFlags     uint32 = 0x20000

	// FormatAny has every format bit set — the typeMask of a bare attribute USE record.
	FormatAny = FormatReference | FormatString | FormatInteger | FormatBoolean | FormatColor |
		FormatFloat | FormatDimension | FormatFraction | FormatEnum | FormatFlags
)

// Value is the closed variant family of resource values. Every concrete variant embeds valueBase, which
// supplies Src/SetSrc/Comment/SetComment, and must additionally implement IsWeak, Flatten, CloneValue, Print,
// and Accept.
type Value interface {
	Src() Source
	SetSrc(Source)
	Comment() string
	SetComment(string)

	// IsWeak reports whether this value must yield to any incoming strong value during collision resolution.
	IsWeak() bool

	// Flatten writes the platform wire form. Leaf variants fail only if an internal index would not fit the wire
	// format; the compound variants (Attribute, Style, Array, Plural, Styleable) always return ErrCompoundValue.
	Flatten() (ResValue, error)

	// CloneValue deep-copies this value, re-minting any string refs into pool so the clone is pool-independent.
	CloneValue(pool *StringPool) Value

	// Print renders a human-readable debug form, e.g. `(string) "hi"`.
	Print() string

	// Accept double-dispatches into visitor for the concrete variant.
	Accept(visitor ValueVisitor)
}

// Item is the sub-family of leaf values: everything except Attribute, Style, Array, Plural, and Styleable.
// Style/Array/Plural carry Items as their children.
type Item interface {
	Value
	isItem()
}

// ValueVisitor double-dispatches over the closed Value variant set, mirroring the source's visitor pattern
// without runtime reflection.
type ValueVisitor interface {
	VisitReference(*Reference)
	VisitId(*Id)
	VisitRawString(*RawString)
	VisitString(*String)
	VisitStyledString(*StyledString)
	VisitFileReference(*FileReference)
	VisitBinaryPrimitive(*BinaryPrimitive)
	VisitAttribute(*Attribute)
	VisitStyle(*Style)
	VisitArray(*Array)
	VisitPlural(*Plural)
	VisitStyleable(*Styleable)
}

// valueBase is embedded by every concrete Value to supply the fields common to all variants.
type valueBase struct {
	source  Source
	comment string
}

func (b *valueBase) Src() Source        { return b.source }
func (b *valueBase) SetSrc(s Source)    { b.source = s }
func (b *valueBase) Comment() string    { return b.comment }
func (b *valueBase) SetComment(c string) { b.comment = c }
