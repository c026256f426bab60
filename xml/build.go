// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package xml

import (
	"slices"
	"strings"
)

// NamespaceSep is the separator byte the XML front-end uses for expanded element/attribute names
// ("uri<0x01>local"); names without the separator have an empty uri.
const NamespaceSep = '\x01'

// SplitName splits an expanded name into (uri, local).
func SplitName(expanded string) (uri, local string) {
	if idx := strings.IndexByte(expanded, NamespaceSep); idx >= 0 {
		return expanded[:idx], expanded[idx+1:]
	}

	return "", expanded
}

// RawAttribute is one (expanded name, value) pair as handed to the Builder by the XML front-end, before name
// splitting and sort order are applied.
type RawAttribute struct {
	ExpandedName string
	Value        string
}

func lessAttribute(a, b Attribute) int {
	if d := strings.Compare(a.NamespaceUri, b.NamespaceUri); d != 0 {
		return d
	}

	if d := strings.Compare(a.Name, b.Name); d != 0 {
		return d
	}

	return strings.Compare(a.Value, b.Value)
}

// Builder consumes a SAX-style callback stream (from either a textual or a binary XML front-end) and produces
// a Document, maintaining the construction stack and pending-comment buffer.
type Builder struct {
	doc            *Document
	stack          []NodeId
	pendingComment []string
}

// NewBuilder returns a Builder over a fresh, empty Document.
func NewBuilder() *Builder {
	return &Builder{doc: NewDocument()}
}

// Document returns the document built so far.
func (b *Builder) Document() *Document {
	return b.doc
}

func (b *Builder) pushChild(n Node) NodeId {
	n.Parent = noNode
	id := b.doc.alloc(n)

	if len(b.stack) > 0 {
		parent := b.stack[len(b.stack)-1]
		b.doc.nodes[parent].Children = append(b.doc.nodes[parent].Children, id)
		b.doc.nodes[id].Parent = parent
	} else if b.doc.root == noNode {
		b.doc.root = id
	}

	return id
}

func (b *Builder) drainComment() string {
	if len(b.pendingComment) == 0 {
		return ""
	}

	s := strings.Join(b.pendingComment, "\n")
	b.pendingComment = nil
	return s
}

// CommentData accumulates comment text into the shared pending-comment buffer; it is drained into the next
// element's node on that element's start or end.
func (b *Builder) CommentData(text string) {
	b.pendingComment = append(b.pendingComment, text)
}

// StartNamespace pushes a Namespace node onto the construction stack.
func (b *Builder) StartNamespace(prefix, uri string, line, column int) NodeId {
	id := b.pushChild(Node{Type: NodeNamespace, NamespacePrefix: prefix, NamespaceUri: uri, Line: line, Column: column})
	b.stack = append(b.stack, id)
	return id
}

// EndNamespace pops the most recently pushed Namespace node.
func (b *Builder) EndNamespace() {
	b.popStack()
}

// StartElement splits and sorts rawAttrs, allocates an Element node, and pushes it onto the construction
// stack. The pending comment buffer is drained into the new node.
func (b *Builder) StartElement(expandedName string, rawAttrs []RawAttribute, line, column int) NodeId {
	uri, local := SplitName(expandedName)

	attrs := make([]Attribute, len(rawAttrs))
	for i, a := range rawAttrs {
		auri, aname := SplitName(a.ExpandedName)
		attrs[i] = Attribute{NamespaceUri: auri, Name: aname, Value: a.Value}
	}

	slices.SortFunc(attrs, lessAttribute)

	id := b.pushChild(Node{
		Type:                NodeElement,
		ElementNamespaceUri: uri,
		ElementName:         local,
		Attributes:          attrs,
		Line:                line,
		Column:              column,
	})
	b.doc.nodes[id].Comment = b.drainComment()
	b.stack = append(b.stack, id)

	return id
}

// EndElement pops the current Element node, draining any comment text seen just before the closing tag.
func (b *Builder) EndElement() {
	if top, ok := b.peekStack(); ok {
		if c := b.drainComment(); c != "" {
			if b.doc.nodes[top].Comment == "" {
				b.doc.nodes[top].Comment = c
			} else {
				b.doc.nodes[top].Comment += "\n" + c
			}
		}
	}

	b.popStack()
}

// CharacterData appends text to a new or, if the current last child is already a Text node, an existing Text
// child — consecutive character callbacks are coalesced.
func (b *Builder) CharacterData(text string) {
	if top, ok := b.peekStack(); ok {
		children := b.doc.nodes[top].Children
		if len(children) > 0 {
			last := children[len(children)-1]
			if b.doc.nodes[last].Type == NodeText {
				b.doc.nodes[last].Text += text
				return
			}
		}
	}

	b.pushChild(Node{Type: NodeText, Text: text})
}

// Abort discards the whole tree: a parse/IO error invalidates the entire document. line is the line the error
// occurred at; the caller is responsible for reporting one diagnostic carrying it.
func (b *Builder) Abort(line int) {
	b.doc.Discard()
	b.stack = nil
	b.pendingComment = nil
}

func (b *Builder) peekStack() (NodeId, bool) {
	if len(b.stack) == 0 {
		return 0, false
	}

	return b.stack[len(b.stack)-1], true
}

func (b *Builder) popStack() {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}
