// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

// Package debug renders a ResourceTable or an xml.Document as indented, human-readable text — the same kind
// of tree dump a resource-compiler test harness prints to eyeball a table or a parsed layout without decoding
// the binary formats by hand.
package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/worldiety/restable"
	"github.com/worldiety/restable/xml"
)

// TableOptions controls how much of a ResourceTable DumpTable prints.
type TableOptions struct {
	// ShowSource includes each value's Source alongside its Print() rendering.
	ShowSource bool
}

// DumpTable writes an indented tree of t's packages, types, entries, and config-values to w.
func DumpTable(w io.Writer, t *restable.ResourceTable, opts TableOptions) error {
	pw := &prefixWriter{w: w}

	for _, pkg := range t.Packages() {
		id := "none"
		if v, ok := pkg.Id.Get(); ok {
			id = fmt.Sprintf("0x%02x", v)
		}

		if err := pw.line(0, "package %s id=%s", pkg.Name, id); err != nil {
			return err
		}

		for _, typ := range pkg.Types() {
			id := "none"
			if v, ok := typ.Id.Get(); ok {
				id = fmt.Sprintf("0x%02x", v)
			}

			if err := pw.line(1, "type %s id=%s symbol=%s", typ.Type, id, typ.Symbol.State); err != nil {
				return err
			}

			for _, entry := range typ.Entries() {
				id := "none"
				if v, ok := entry.Id.Get(); ok {
					id = fmt.Sprintf("0x%04x", v)
				}

				if err := pw.line(2, "entry %s id=%s symbol=%s", entry.Name, id, entry.Symbol.State); err != nil {
					return err
				}

				for _, cv := range entry.Values() {
					product := cv.Product
					if product == "" {
						product = "default"
					}

					if opts.ShowSource {
						if err := pw.line(3, "(%s, product=%s) %s @ %s", cv.Config, product, cv.Value.Print(), cv.Value.Src()); err != nil {
							return err
						}

						continue
					}

					if err := pw.line(3, "(%s, product=%s) %s", cv.Config, product, cv.Value.Print()); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// DumpXML writes an indented tree of a parsed document, starting at root, to w.
func DumpXML(w io.Writer, doc *xml.Document, root xml.NodeId) error {
	pw := &prefixWriter{w: w}
	return dumpNode(pw, doc, root, 0)
}

func dumpNode(pw *prefixWriter, doc *xml.Document, id xml.NodeId, depth int) error {
	n := doc.Node(id)

	switch n.Type {
	case xml.NodeNamespace:
		if err := pw.line(depth, "N: xmlns:%s=%s", n.NamespacePrefix, n.NamespaceUri); err != nil {
			return err
		}
	case xml.NodeElement:
		var attrs strings.Builder
		for i, a := range n.Attributes {
			if i > 0 {
				attrs.WriteByte(' ')
			}

			if a.NamespaceUri != "" {
				fmt.Fprintf(&attrs, "%s:%s=%q", a.NamespaceUri, a.Name, a.Value)
			} else {
				fmt.Fprintf(&attrs, "%s=%q", a.Name, a.Value)
			}
		}

		if attrs.Len() > 0 {
			if err := pw.line(depth, "E: %s (%s)", n.ElementName, attrs.String()); err != nil {
				return err
			}
		} else {
			if err := pw.line(depth, "E: %s", n.ElementName); err != nil {
				return err
			}
		}
	case xml.NodeText:
		if err := pw.line(depth, "T: %q", n.Text); err != nil {
			return err
		}
	}

	for _, c := range n.Children {
		if err := dumpNode(pw, doc, c, depth+1); err != nil {
			return err
		}
	}

	return nil
}

type prefixWriter struct {
	w io.Writer
}

func (p *prefixWriter) line(depth int, format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
	return err
}
