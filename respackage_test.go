// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import "testing"

func TestResourceTable_FindPackageById(t *testing.T) {
	table := NewResourceTable()
	if _, err := table.CreatePackage("app", Some(uint8(0x7f))); err != nil {
		t.Fatalf("CreatePackage() error: %v", err)
	}

	pkg, ok := table.FindPackageById(0x7f)
	if !ok || pkg.Name != "app" {
		t.Errorf("FindPackageById(0x7f) = (%v, %v), want app", pkg, ok)
	}

	if _, ok := table.FindPackageById(0x01); ok {
		t.Errorf("FindPackageById(0x01) unexpectedly found a package")
	}
}

func TestResourceTablePackage_TypesSortedByOrdinal(t *testing.T) {
	pkg := newResourceTablePackage("app")
	pkg.findOrCreateType(TypeStyle)
	pkg.findOrCreateType(TypeAttr)
	pkg.findOrCreateType(TypeString)

	types := pkg.Types()
	for i := 1; i < len(types); i++ {
		if types[i-1].Type >= types[i].Type {
			t.Errorf("types not sorted by ordinal: %v before %v", types[i-1].Type, types[i].Type)
		}
	}
}

func TestResourceTable_PackagesSortedByName(t *testing.T) {
	table := NewResourceTable()
	table.FindOrCreatePackage("zeta")
	table.FindOrCreatePackage("alpha")
	table.FindOrCreatePackage("mid")

	pkgs := table.Packages()
	for i := 1; i < len(pkgs); i++ {
		if pkgs[i-1].Name > pkgs[i].Name {
			t.Errorf("packages not sorted by name: %q before %q", pkgs[i-1].Name, pkgs[i].Name)
		}
	}
}
