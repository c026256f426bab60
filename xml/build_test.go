// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package xml

import "testing"

func TestSplitName(t *testing.T) {
	uri, local := SplitName("http://schemas.android.com/apk/res/android\x01layout_width")
	if uri != "http://schemas.android.com/apk/res/android" || local != "layout_width" {
		t.Errorf("SplitName() = (%q, %q)", uri, local)
	}

	uri, local = SplitName("layout_width")
	if uri != "" || local != "layout_width" {
		t.Errorf("SplitName() without separator = (%q, %q), want (\"\", \"layout_width\")", uri, local)
	}
}

// TestBuilder_InflateLayout mirrors the concrete scenario in spec §8.6: a namespace-scoped root element with
// one attribute and one nested child element.
func TestBuilder_InflateLayout(t *testing.T) {
	const androidNs = "http://schemas.android.com/apk/res/android"

	b := NewBuilder()
	b.StartNamespace("android", androidNs, 2, 1)
	b.StartElement("Layout", []RawAttribute{
		{ExpandedName: androidNs + "\x01layout_width", Value: "match_parent"},
	}, 2, 1)
	b.StartElement(androidNs+"\x01TextView", []RawAttribute{
		{ExpandedName: androidNs + "\x01id", Value: "@+id/id"},
	}, 3, 2)
	b.EndElement() // TextView
	b.EndElement() // Layout
	b.EndNamespace()

	doc := b.Document()

	rootId, ok := doc.Root()
	if !ok {
		t.Fatalf("Root() not found")
	}

	root := doc.Node(rootId)
	if root.Type != NodeNamespace {
		t.Fatalf("root type = %v, want NodeNamespace", root.Type)
	}

	if root.NamespacePrefix != "android" || root.NamespaceUri != androidNs {
		t.Errorf("root namespace = (%q, %q), want (\"android\", %q)", root.NamespacePrefix, root.NamespaceUri, androidNs)
	}

	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}

	layout := doc.Node(root.Children[0])
	if layout.Type != NodeElement || layout.ElementName != "Layout" || layout.ElementNamespaceUri != "" {
		t.Errorf("layout node = %+v, want Element \"Layout\" with empty namespace", layout)
	}

	if len(layout.Attributes) != 1 {
		t.Fatalf("Layout has %d attributes, want 1", len(layout.Attributes))
	}

	attr := layout.Attributes[0]
	if attr.NamespaceUri != androidNs || attr.Name != "layout_width" || attr.Value != "match_parent" {
		t.Errorf("Layout attribute = %+v, want {%q layout_width match_parent}", attr, androidNs)
	}

	if len(layout.Children) != 1 {
		t.Fatalf("Layout has %d children, want 1", len(layout.Children))
	}

	textView := doc.Node(layout.Children[0])
	if textView.Type != NodeElement || textView.ElementName != "TextView" || textView.ElementNamespaceUri != androidNs {
		t.Errorf("TextView node = %+v", textView)
	}
}

func TestBuilder_CoalescesConsecutiveCharacterData(t *testing.T) {
	b := NewBuilder()
	b.StartElement("string", nil, 1, 1)
	b.CharacterData("hello ")
	b.CharacterData("world")
	b.EndElement()

	doc := b.Document()
	rootId, _ := doc.Root()
	root := doc.Node(rootId)

	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1 (coalesced text)", len(root.Children))
	}

	text := doc.Node(root.Children[0])
	if text.Type != NodeText || text.Text != "hello world" {
		t.Errorf("text node = %+v, want {Text \"hello world\"}", text)
	}
}

func TestBuilder_CommentDrainedOnElementStartAndEnd(t *testing.T) {
	b := NewBuilder()
	b.CommentData("a comment")
	b.StartElement("root", nil, 1, 1)

	doc := b.Document()
	rootId, _ := doc.Root()

	if got := doc.Node(rootId).Comment; got != "a comment" {
		t.Errorf("element start comment = %q, want %q", got, "a comment")
	}

	b.CommentData("trailing")
	b.EndElement()

	if got := doc.Node(rootId).Comment; got != "a comment\ntrailing" {
		t.Errorf("element end comment = %q, want %q", got, "a comment\ntrailing")
	}
}

func TestBuilder_MultipleCommentsJoinedWithNewline(t *testing.T) {
	b := NewBuilder()
	b.CommentData("first")
	b.CommentData("second")
	b.StartElement("root", nil, 1, 1)

	doc := b.Document()
	rootId, _ := doc.Root()

	if got := doc.Node(rootId).Comment; got != "first\nsecond" {
		t.Errorf("comment = %q, want %q", got, "first\nsecond")
	}
}

func TestBuilder_AbortDiscardsTree(t *testing.T) {
	b := NewBuilder()
	b.StartElement("root", nil, 1, 1)
	b.Abort(42)

	if _, ok := b.Document().Root(); ok {
		t.Errorf("Root() found after Abort(), want tree discarded")
	}
}

func TestStartElement_AttributesAreSorted(t *testing.T) {
	b := NewBuilder()
	b.StartElement("root", []RawAttribute{
		{ExpandedName: "z", Value: "1"},
		{ExpandedName: "a", Value: "1"},
		{ExpandedName: "m", Value: "1"},
	}, 1, 1)

	doc := b.Document()
	rootId, _ := doc.Root()
	attrs := doc.Node(rootId).Attributes

	for i := 1; i < len(attrs); i++ {
		if lessAttribute(attrs[i-1], attrs[i]) > 0 {
			t.Errorf("attributes not sorted: %+v before %+v", attrs[i-1], attrs[i])
		}
	}
}
