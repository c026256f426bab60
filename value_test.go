// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import (
	"encoding/binary"
	"testing"

	"golang.org/x/text/feature/plural"
)

func TestString_PrintAndFlatten(t *testing.T) {
	pool := NewStringPool()
	v := NewString(pool.MakeRef("hi"))

	if got := v.Print(); got != `(string) "hi"` {
		t.Errorf("Print() = %q, want %q", got, `(string) "hi"`)
	}

	rv, err := v.Flatten()
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	if rv.DataType != DataTypeString {
		t.Errorf("DataType = 0x%02x, want 0x%02x", rv.DataType, DataTypeString)
	}

	if rv.Data != 0 {
		t.Errorf("Data = %d, want 0", rv.Data)
	}
}

func TestId_IsAlwaysWeak(t *testing.T) {
	v := NewId()
	if !v.IsWeak() {
		t.Errorf("Id.IsWeak() = false, want true")
	}

	rv, err := v.Flatten()
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	if rv.DataType != DataTypeIntBoolean || rv.Data != 0 {
		t.Errorf("Flatten() = %+v, want {DataTypeIntBoolean 0}", rv)
	}
}

func TestReference_Print(t *testing.T) {
	named := NewReference(ReferenceResource)
	named.Name = Some(ResourceName{Package: "app", Type: TypeString, Entry: "hello"})

	if got := named.Print(); got != "(reference) @app:string/hello" {
		t.Errorf("Print() = %q, want %q", got, "(reference) @app:string/hello")
	}

	byId := NewReference(ReferenceResource)
	byId.Id = Some(NewResourceId(0x7f, 0x01, 1))

	if got := byId.Print(); got != "(reference) @0x7f010001" {
		t.Errorf("Print() = %q, want %q", got, "(reference) @0x7f010001")
	}

	null := NewReference(ReferenceResource)
	if got := null.Print(); got != "(reference) @null" {
		t.Errorf("Print() = %q, want %q", got, "(reference) @null")
	}
}

func TestReference_FlattenKindTag(t *testing.T) {
	attr := NewReference(ReferenceAttribute)
	attr.Id = Some(NewResourceId(0x01, 0x01, 5))

	rv, err := attr.Flatten()
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	if rv.DataType != DataTypeAttribute {
		t.Errorf("DataType = 0x%02x, want DataTypeAttribute", rv.DataType)
	}
}

// Every Value in this taxonomy must round-trip through CloneValue: same Print() before and after, and for
// leaf variants (which support Flatten), identical flattened bytes.
func TestValue_CloneRoundTrip(t *testing.T) {
	srcPool := NewStringPool()

	values := []Value{
		NewString(srcPool.MakeRef("hi")),
		NewRawString(srcPool.MakeRef("raw")),
		NewStyledString(srcPool.MakeStyleRef(StyledStringValue{Text: "bold", Spans: []Span{{Tag: "b", FirstChar: 0, LastChar: 4}}})),
		NewFileReference(srcPool.MakeRef("res/drawable/icon.png")),
		NewBinaryPrimitive(DataTypeIntDec, 42),
		NewId(),
		func() Value {
			r := NewReference(ReferenceResource)
			r.Name = Some(ResourceName{Package: "app", Type: TypeString, Entry: "hello"})
			return r
		}(),
	}

	for _, v := range values {
		v.SetSrc(NewSource("res/values/strings.xml", 3))
		v.SetComment("a comment")

		dstPool := NewStringPool()
		clone := v.CloneValue(dstPool)

		if clone.Print() != v.Print() {
			t.Errorf("%T: Print() mismatch after clone: got %q, want %q", v, clone.Print(), v.Print())
		}

		if clone.Src() != v.Src() {
			t.Errorf("%T: Src() not preserved by clone", v)
		}

		if clone.Comment() != v.Comment() {
			t.Errorf("%T: Comment() not preserved by clone", v)
		}

		origFlat, origErr := v.Flatten()
		cloneFlat, cloneErr := clone.Flatten()

		if (origErr == nil) != (cloneErr == nil) {
			t.Fatalf("%T: Flatten() error mismatch: %v vs %v", v, origErr, cloneErr)
		}

		if origErr == nil {
			var origBuf, cloneBuf []byte
			origBuf = origFlat.AppendBinary(origBuf)
			cloneBuf = cloneFlat.AppendBinary(cloneBuf)

			if string(origBuf) != string(cloneBuf) {
				t.Errorf("%T: flattened bytes differ after clone: %x vs %x", v, origBuf, cloneBuf)
			}
		}
	}
}

func TestResValue_AppendBinary_LittleEndianDeviceOrder(t *testing.T) {
	rv := ResValue{DataType: DataTypeIntDec, Data: 0x01020304}

	buf := rv.AppendBinary(nil)
	if len(buf) != 5 {
		t.Fatalf("AppendBinary() produced %d bytes, want 5", len(buf))
	}

	if buf[0] != DataTypeIntDec {
		t.Errorf("buf[0] = 0x%02x, want DataTypeIntDec", buf[0])
	}

	if got := binary.LittleEndian.Uint32(buf[1:]); got != 0x01020304 {
		t.Errorf("data word = 0x%08x, want 0x01020304", got)
	}
}

func TestCompoundValues_FlattenFails(t *testing.T) {
	compounds := []Value{
		NewAttribute(false, FormatReference),
		NewStyle(),
		NewArray(),
		NewPlural(),
		NewStyleable(),
	}

	for _, v := range compounds {
		if _, err := v.Flatten(); err != ErrCompoundValue {
			t.Errorf("%T: Flatten() error = %v, want ErrCompoundValue", v, err)
		}
	}
}

func TestAttribute_PrintMask(t *testing.T) {
	any := NewAttribute(true, FormatAny)
	if got := any.Print(); got != "(attr) weak=true mask=any" {
		t.Errorf("Print() = %q, want %q", got, "(attr) weak=true mask=any")
	}

	specific := NewAttribute(false, FormatReference|FormatString)
	if got := specific.Print(); got != "(attr) weak=false mask=reference|string" {
		t.Errorf("Print() = %q, want %q", got, "(attr) weak=false mask=reference|string")
	}
}

func TestAttribute_CloneIgnoresPool(t *testing.T) {
	attr := NewAttribute(false, FormatEnum)
	attr.Symbols = append(attr.Symbols, AttributeSymbol{Ref: *NewReference(ReferenceResource), Value: 1})

	clone := attr.CloneValue(nil).(*Attribute)
	if len(clone.Symbols) != 1 || clone.Symbols[0].Value != 1 {
		t.Errorf("CloneValue() did not preserve Symbols: %+v", clone.Symbols)
	}
}

func TestPlural_SetGetAndClone(t *testing.T) {
	p := NewPlural()
	pool := NewStringPool()

	p.Set(plural.One, NewString(pool.MakeRef("one item")))
	p.Set(plural.Other, NewString(pool.MakeRef("many items")))

	if item, ok := p.Get(plural.One); !ok || item.Print() != `(string) "one item"` {
		t.Errorf("Get(One) = (%v, %v)", item, ok)
	}

	if _, ok := p.Get(plural.Few); ok {
		t.Errorf("Get(Few) unexpectedly present")
	}

	clonePool := NewStringPool()
	clone := p.CloneValue(clonePool).(*Plural)

	if item, ok := clone.Get(plural.Other); !ok || item.Print() != `(string) "many items"` {
		t.Errorf("clone Get(Other) = (%v, %v)", item, ok)
	}
}

func TestStyle_CloneDeepCopiesEntries(t *testing.T) {
	pool := NewStringPool()
	style := NewStyle()
	style.Entries = append(style.Entries, StyleEntry{
		Key:   *NewReference(ReferenceAttribute),
		Value: NewString(pool.MakeRef("value")),
	})

	clonePool := NewStringPool()
	clone := style.CloneValue(clonePool).(*Style)

	if len(clone.Entries) != 1 {
		t.Fatalf("clone has %d entries, want 1", len(clone.Entries))
	}

	if clone.Entries[0].Value.Print() != `(string) "value"` {
		t.Errorf("cloned entry value = %q", clone.Entries[0].Value.Print())
	}

	// The clone's re-minted string ref must still resolve to the original text.
	if clone.Entries[0].Value.(*String).Ref.Deref() != "value" {
		t.Errorf("clone's string ref does not resolve in the destination pool")
	}
}
