// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import "fmt"

// ResourceTable is the hierarchical, sorted, invariant-bearing store of every resource keyed by (package,
// type, entry, configuration, product). It exclusively owns its StringPool, packages, types, entries, and
// values; callers transfer ownership of a Value on insert.
type ResourceTable struct {
	Pool     *StringPool
	packages sortedSlice[*ResourceTablePackage]
}

// NewResourceTable returns an empty table with a fresh string pool.
func NewResourceTable() *ResourceTable {
	return &ResourceTable{
		Pool:     NewStringPool(),
		packages: newSortedSlice(cmpPackageByName),
	}
}

func cmpPackageByName(a, b *ResourceTablePackage) int {
	if a.Name < b.Name {
		return -1
	}

	if a.Name > b.Name {
		return 1
	}

	return 0
}

// Packages iterates the table's packages in name order.
func (t *ResourceTable) Packages() []*ResourceTablePackage {
	var out []*ResourceTablePackage
	for p := range t.packages.All() {
		out = append(out, p)
	}

	return out
}

// FindPackage returns the package named name, if present.
func (t *ResourceTable) FindPackage(name string) (*ResourceTablePackage, bool) {
	return t.packages.Find(&ResourceTablePackage{Name: name})
}

// FindPackageById returns the package whose assigned ID equals id.
func (t *ResourceTable) FindPackageById(id uint8) (*ResourceTablePackage, bool) {
	for pkg := range t.packages.All() {
		if pid, ok := pkg.Id.Get(); ok && pid == id {
			return pkg, true
		}
	}

	return nil, false
}

// FindOrCreatePackage returns the existing package named name, or creates, inserts, and returns a new one with
// no assigned ID.
func (t *ResourceTable) FindOrCreatePackage(name string) *ResourceTablePackage {
	if pkg, ok := t.FindPackage(name); ok {
		return pkg
	}

	pkg := newResourceTablePackage(name)
	t.packages.Insert(pkg)
	return pkg
}

// CreatePackage is idempotent: an existing package with no assigned ID gets id (if given); an existing package
// whose ID disagrees with id fails. A brand-new package is created with id if given.
func (t *ResourceTable) CreatePackage(name string, id Maybe[uint8]) (*ResourceTablePackage, error) {
	pkg := t.FindOrCreatePackage(name)

	if newId, ok := id.Get(); ok {
		if existingId, has := pkg.Id.Get(); has {
			if existingId != newId {
				return nil, fmt.Errorf("restable: package %q already has id 0x%02x, cannot set 0x%02x: %w",
					name, existingId, newId, ErrIdMismatch)
			}
		} else {
			pkg.Id = Some(newId)
		}
	}

	return pkg, nil
}

// FindResource locates the package/type/entry named by ref, if all three levels exist.
func (t *ResourceTable) FindResource(ref ResourceNameRef) (*ResourceTablePackage, *ResourceTableType, *ResourceEntry, bool) {
	pkg, ok := t.FindPackage(ref.Package)
	if !ok {
		return nil, nil, nil, false
	}

	typ, ok := pkg.FindType(ref.Type)
	if !ok {
		return nil, nil, nil, false
	}

	entry, ok := typ.FindEntry(ref.Entry)
	if !ok {
		return nil, nil, nil, false
	}

	return pkg, typ, entry, true
}

// AddResource validates the entry name, walks to (creating as needed) the package/type/entry, enforces ID
// consistency, resolves any collision at the (config, product) slot, and on success stamps resId onto all
// three nodes.
func (t *ResourceTable) AddResource(ctx Context, name ResourceName, resId Maybe[ResourceId], config ConfigDescription, product string, value Value) error {
	return t.addResourceImpl(ctx, name, resId, config, product, value, false)
}

// AddResourceAllowMangled is AddResource's variant permitting '$' in the entry name, used for already-mangled
// entries produced by the table merger.
func (t *ResourceTable) AddResourceAllowMangled(ctx Context, name ResourceName, resId Maybe[ResourceId], config ConfigDescription, product string, value Value) error {
	return t.addResourceImpl(ctx, name, resId, config, product, value, true)
}

func (t *ResourceTable) addResourceImpl(ctx Context, name ResourceName, resId Maybe[ResourceId], config ConfigDescription, product string, value Value, allowMangled bool) error {
	if pos := validateEntryName(name.Entry, allowMangled); pos >= 0 {
		err := &TableError{Err: ErrInvalidName, At: value.Src(), Name: name}
		Report(ctx.Diagnostics(), SeverityError, value.Src(),
			fmt.Sprintf("invalid character in entry name %q at position %d", name.Entry, pos))
		return err
	}

	pkg := t.FindOrCreatePackage(name.Package)
	typ := pkg.findOrCreateType(name.Type)
	entry := typ.findOrCreateEntry(name.Entry)

	if id, ok := resId.Get(); ok {
		if err := checkIdConsistency(pkg, typ, entry, id, name, value.Src()); err != nil {
			Report(ctx.Diagnostics(), SeverityError, value.Src(), err.Error())
			return err
		}
	}

	result, err := entry.addResourceValue(ResourceConfigValue{Config: config, Product: product, Value: value})
	if err != nil {
		var te *TableError
		if tableErr, ok := err.(*TableError); ok {
			te = tableErr
			te.Name = name
		}

		Report(ctx.Diagnostics(), SeverityError, value.Src(), err.Error())
		if te != nil {
			if prior, ok := te.PriorAt.Get(); ok {
				Report(ctx.Diagnostics(), SeverityNote, prior, "originally defined here")
			}
		}

		return err
	}

	if result == KeepOriginal {
		return nil
	}

	if id, ok := resId.Get(); ok {
		pkg.Id = Some(id.PackageId())
		typ.Id = Some(id.TypeId())
		entry.Id = Some(id.EntryId())
	}

	return nil
}

// checkIdConsistency fails if any of package/type/entry already carries a different ID than the
// corresponding field of id, with a diagnostic printing the prior ID in hex.
func checkIdConsistency(pkg *ResourceTablePackage, typ *ResourceTableType, entry *ResourceEntry, id ResourceId, name ResourceName, src Source) error {
	if prior, ok := pkg.Id.Get(); ok && prior != id.PackageId() {
		return &TableError{Err: fmt.Errorf("package %q already has id 0x%02x: %w", name.Package, prior, ErrIdMismatch), At: src, Name: name}
	}

	if prior, ok := typ.Id.Get(); ok && prior != id.TypeId() {
		return &TableError{Err: fmt.Errorf("type %q already has id 0x%02x: %w", name.Type, prior, ErrIdMismatch), At: src, Name: name}
	}

	if prior, ok := entry.Id.Get(); ok && prior != id.EntryId() {
		return &TableError{Err: fmt.Errorf("entry %q already has id 0x%04x: %w", name.Entry, prior, ErrIdMismatch), At: src, Name: name}
	}

	return nil
}

// AddFileReference is a convenience that constructs and inserts a FileReference value.
func (t *ResourceTable) AddFileReference(ctx Context, name ResourceName, config ConfigDescription, src Source, path string, file Maybe[FileHandle]) error {
	v := &FileReference{Path: t.Pool.MakeRef(path), File: file}
	v.SetSrc(src)
	return t.AddResource(ctx, name, None[ResourceId](), config, "", v)
}

// AddFileReferenceAllowMangled is the mangled-name counterpart of AddFileReference.
func (t *ResourceTable) AddFileReferenceAllowMangled(ctx Context, name ResourceName, config ConfigDescription, src Source, path string, file Maybe[FileHandle]) error {
	v := &FileReference{Path: t.Pool.MakeRef(path), File: file}
	v.SetSrc(src)
	return t.AddResourceAllowMangled(ctx, name, None[ResourceId](), config, "", v)
}

// SetSymbolState publishes symbol visibility without adding a value: same name/ID validation as AddResource,
// then a monotone visibility update; if the incoming state is Public the type's visibility is also raised to
// Public.
func (t *ResourceTable) SetSymbolState(ctx Context, name ResourceName, resId Maybe[ResourceId], status SymbolStatus) error {
	return t.setSymbolStateImpl(ctx, name, resId, status, false)
}

// SetSymbolStateAllowMangled is SetSymbolState's mangled-name variant.
func (t *ResourceTable) SetSymbolStateAllowMangled(ctx Context, name ResourceName, resId Maybe[ResourceId], status SymbolStatus) error {
	return t.setSymbolStateImpl(ctx, name, resId, status, true)
}

func (t *ResourceTable) setSymbolStateImpl(ctx Context, name ResourceName, resId Maybe[ResourceId], status SymbolStatus, allowMangled bool) error {
	if pos := validateEntryName(name.Entry, allowMangled); pos >= 0 {
		err := &TableError{Err: ErrInvalidName, At: status.Source, Name: name}
		Report(ctx.Diagnostics(), SeverityError, status.Source,
			fmt.Sprintf("invalid character in entry name %q at position %d", name.Entry, pos))
		return err
	}

	pkg := t.FindOrCreatePackage(name.Package)
	typ := pkg.findOrCreateType(name.Type)
	entry := typ.findOrCreateEntry(name.Entry)

	if id, ok := resId.Get(); ok {
		if err := checkIdConsistency(pkg, typ, entry, id, name, status.Source); err != nil {
			Report(ctx.Diagnostics(), SeverityError, status.Source, err.Error())
			return err
		}

		pkg.Id = Some(id.PackageId())
		typ.Id = Some(id.TypeId())
		entry.Id = Some(id.EntryId())
	}

	entry.Symbol = upgradeSymbolStatus(entry.Symbol, status)

	if status.State == SymbolPublic {
		typ.Symbol = upgradeSymbolStatus(typ.Symbol, status)
	}

	return nil
}
