// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import "strings"

// ResourceType is the closed enumeration of resource kinds this package knows about.
type ResourceType int

const (
	TypeAttr ResourceType = iota + 1
	TypeId
	TypeString
	TypeDrawable
	TypeLayout
	TypeColor
	TypeDimen
	TypeStyle
	TypeArray
	TypePlurals
	TypeInteger
	TypeBool
	TypeFraction
	TypeMenu
	TypeRaw
	TypeXml
	TypeMipmap
	TypeTransition
	TypeAnim
	TypeAnimator
	TypeInterpolator
	TypeFont
	TypeMacro
	TypeStyleable
)

var resourceTypeNames = map[ResourceType]string{
	TypeAttr:         "attr",
	TypeId:           "id",
	TypeString:       "string",
	TypeDrawable:     "drawable",
	TypeLayout:       "layout",
	TypeColor:        "color",
	TypeDimen:        "dimen",
	TypeStyle:        "style",
	TypeArray:        "array",
	TypePlurals:      "plurals",
	TypeInteger:      "integer",
	TypeBool:         "bool",
	TypeFraction:     "fraction",
	TypeMenu:         "menu",
	TypeRaw:          "raw",
	TypeXml:          "xml",
	TypeMipmap:       "mipmap",
	TypeTransition:   "transition",
	TypeAnim:         "anim",
	TypeAnimator:     "animator",
	TypeInterpolator: "interpolator",
	TypeFont:         "font",
	TypeMacro:        "macro",
	TypeStyleable:    "styleable",
}

// String returns the canonical lowercase type name, e.g. "drawable".
func (t ResourceType) String() string {
	if name, ok := resourceTypeNames[t]; ok {
		return name
	}

	return "unknown"
}

// ParseResourceType looks up a ResourceType by its canonical name.
func ParseResourceType(name string) (ResourceType, bool) {
	for t, n := range resourceTypeNames {
		if n == name {
			return t, true
		}
	}

	return 0, false
}

// ResourceName is the fully-qualified triple (package, type, entry) naming a resource, independent of any
// assigned numeric ID.
type ResourceName struct {
	Package string
	Type    ResourceType
	Entry   string
}

// Ref returns a borrowing ResourceNameRef over this name; the conversion is O(1) because ResourceNameRef has
// identical field layout.
func (n ResourceName) Ref() ResourceNameRef {
	return ResourceNameRef(n)
}

// String renders "package:type/entry".
func (n ResourceName) String() string {
	var b strings.Builder
	b.WriteString(n.Package)
	b.WriteByte(':')
	b.WriteString(n.Type.String())
	b.WriteByte('/')
	b.WriteString(n.Entry)
	return b.String()
}

// ResourceNameRef is the borrowing counterpart of ResourceName, used where a name is only being inspected
// and no ownership transfer is implied. It has identical semantics to ResourceName.
type ResourceNameRef ResourceName

// ToName clones this ref into an owned ResourceName; also O(1), since both are plain value types.
func (r ResourceNameRef) ToName() ResourceName {
	return ResourceName(r)
}

func (r ResourceNameRef) String() string {
	return ResourceName(r).String()
}
