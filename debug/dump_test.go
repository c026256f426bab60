// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package debug_test

import (
	"strings"
	"testing"

	"github.com/worldiety/restable"
	"github.com/worldiety/restable/debug"
	"github.com/worldiety/restable/xml"
)

func TestDumpTable(t *testing.T) {
	table := restable.NewResourceTable()
	ctx := restable.SimpleContext{Package: "app", Id: 0x7f, Diag: restable.NopDiagnostics{}}

	v := restable.NewString(table.Pool.MakeRef("hi"))
	name := restable.ResourceName{Package: "app", Type: restable.TypeString, Entry: "hello"}
	if err := table.AddResource(ctx, name, restable.None[restable.ResourceId](), restable.DefaultConfig, "", v); err != nil {
		t.Fatalf("AddResource() error: %v", err)
	}

	var sb strings.Builder
	if err := debug.DumpTable(&sb, table, debug.TableOptions{}); err != nil {
		t.Fatalf("DumpTable() error: %v", err)
	}

	out := sb.String()
	for _, want := range []string{"package app", "type string", "entry hello", `(string) "hi"`} {
		if !strings.Contains(out, want) {
			t.Errorf("DumpTable() output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpTable_ShowSource(t *testing.T) {
	table := restable.NewResourceTable()
	ctx := restable.SimpleContext{Package: "app", Id: 0x7f, Diag: restable.NopDiagnostics{}}

	v := restable.NewString(table.Pool.MakeRef("hi"))
	v.SetSrc(restable.NewSource("strings.xml", 3))
	name := restable.ResourceName{Package: "app", Type: restable.TypeString, Entry: "hello"}
	if err := table.AddResource(ctx, name, restable.None[restable.ResourceId](), restable.DefaultConfig, "", v); err != nil {
		t.Fatalf("AddResource() error: %v", err)
	}

	var sb strings.Builder
	if err := debug.DumpTable(&sb, table, debug.TableOptions{ShowSource: true}); err != nil {
		t.Fatalf("DumpTable() error: %v", err)
	}

	if !strings.Contains(sb.String(), "strings.xml:3") {
		t.Errorf("DumpTable(ShowSource=true) output missing source:\n%s", sb.String())
	}
}

func TestDumpXML(t *testing.T) {
	b := xml.NewBuilder()
	b.StartElement("Layout", []xml.RawAttribute{{ExpandedName: "ns\x01width", Value: "match_parent"}}, 1, 1)
	b.CharacterData("hi")
	b.EndElement()

	doc := b.Document()
	rootId, ok := doc.Root()
	if !ok {
		t.Fatalf("Root() not found")
	}

	var sb strings.Builder
	if err := debug.DumpXML(&sb, doc, rootId); err != nil {
		t.Fatalf("DumpXML() error: %v", err)
	}

	out := sb.String()
	for _, want := range []string{"E: Layout", `ns:width="match_parent"`, `T: "hi"`} {
		if !strings.Contains(out, want) {
			t.Errorf("DumpXML() output missing %q:\n%s", want, out)
		}
	}
}
