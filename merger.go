// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import (
	"errors"
	"fmt"
	"strings"
)

// FileToMerge is a record the merger appends to an externally drained queue whenever a mangled entry's
// FileReference path was rewritten; this package never performs the file copy/rename itself.
type FileToMerge struct {
	SrcTable *ResourceTable
	OldPath  string
	NewPath  string
}

// TableMerger combines one or more source tables into a master table, applying the collision resolver and
// optional package-mangling.
type TableMerger struct {
	ctx          Context
	master       *ResourceTable
	overrideByDefault bool
	filesToMerge []FileToMerge
	mergedPackages []string
}

// NewTableMerger constructs a merger writing into master under ctx's identity.
func NewTableMerger(ctx Context, master *ResourceTable) *TableMerger {
	return &TableMerger{ctx: ctx, master: master}
}

// FilesToMerge drains and returns the accumulated file-rename queue.
func (m *TableMerger) FilesToMerge() []FileToMerge {
	out := m.filesToMerge
	m.filesToMerge = nil
	return out
}

// MergedPackages returns the names of every source package merged so far (via Merge or MergeAndMangle).
func (m *TableMerger) MergedPackages() []string {
	return m.mergedPackages
}

// Merge merges every package of src whose name is empty or equal to the compilation package into master,
// without mangling. A package whose assigned ID disagrees with the compilation package ID is skipped with a
// warning.
func (m *TableMerger) Merge(src *ResourceTable, overrideExisting bool) error {
	var errs []error

	for pkg := range src.packages.All() {
		if id, ok := pkg.Id.Get(); ok && id != 0 && id != m.ctx.PackageId() {
			Report(m.ctx.Diagnostics(), SeverityWarn, Source{},
				fmt.Sprintf("skipping package %q: id 0x%02x does not match compilation package id 0x%02x", pkg.Name, id, m.ctx.PackageId()))
			continue
		}

		if pkg.Name == "" || pkg.Name == m.ctx.CompilationPackage() {
			if err := m.doMerge(pkg, src, false, overrideExisting); err != nil {
				errs = append(errs, err)
			}

			m.mergedPackages = append(m.mergedPackages, pkg.Name)
		}
	}

	return errors.Join(errs...)
}

// MergeAndMangle merges only the package named packageName from src, mangling every entry name with
// "packageName$" whenever packageName differs from the compilation package.
func (m *TableMerger) MergeAndMangle(packageName string, src *ResourceTable) error {
	pkg, ok := src.FindPackage(packageName)
	if !ok {
		return nil
	}

	manglePackage := packageName != m.ctx.CompilationPackage()
	err := m.doMerge(pkg, src, manglePackage, m.overrideByDefault)
	m.mergedPackages = append(m.mergedPackages, packageName)

	return err
}

func (m *TableMerger) masterPackage() *ResourceTablePackage {
	return m.master.FindOrCreatePackage(m.ctx.CompilationPackage())
}

// doMerge walks every type and entry of srcPkg and folds it into the master package. Per the mutator
// propagation policy, a failure on one entry or config-value is reported and recorded but does not stop the
// walk: the rest of the source package is still merged, and the accumulated errors are joined and returned
// once the whole pass completes.
func (m *TableMerger) doMerge(srcPkg *ResourceTablePackage, srcTable *ResourceTable, manglePackage, overrideExisting bool) error {
	masterPkg := m.masterPackage()
	var errs []error

	for srcType := range srcPkg.types.All() {
		dstType := masterPkg.findOrCreateType(srcType.Type)

		if srcType.Symbol.State == SymbolPublic {
			conflict := false

			if srcId, ok := srcType.Id.Get(); ok {
				if dstId, has := dstType.Id.Get(); has && dstType.Symbol.State == SymbolPublic && dstId != srcId {
					err := fmt.Errorf("restable: type %q has conflicting public ids 0x%02x vs 0x%02x: %w",
						srcType.Type, dstId, srcId, ErrConflictingPublicId)
					Report(m.ctx.Diagnostics(), SeverityError, Source{}, err.Error())
					errs = append(errs, err)
					conflict = true
				} else {
					dstType.Id = Some(srcId)
				}
			}

			if !conflict {
				dstType.Symbol = upgradeSymbolStatus(dstType.Symbol, srcType.Symbol)
			}
		}

		for srcEntry := range srcType.entries.All() {
			dstName := srcEntry.Name
			if manglePackage {
				dstName = mangle(srcPkg.Name, srcEntry.Name)
			}

			dstEntry := dstType.findOrCreateEntry(dstName)

			if srcEntry.Symbol.State == SymbolPublic {
				if srcId, ok := srcEntry.Id.Get(); ok {
					if dstId, has := dstEntry.Id.Get(); has && dstEntry.Symbol.State == SymbolPublic && dstId != srcId {
						Report(m.ctx.Diagnostics(), SeverityError, Source{},
							fmt.Sprintf("entry %q has conflicting public ids 0x%04x vs 0x%04x", dstName, dstId, srcId))
						errs = append(errs, ErrConflictingPublicId)
						continue
					}

					dstEntry.Id = Some(srcId)
				}
			}

			dstEntry.Symbol = upgradeSymbolStatus(dstEntry.Symbol, srcEntry.Symbol)

			for _, srcCV := range srcEntry.Values() {
				if err := m.mergeConfigValue(srcPkg, dstEntry, srcCV, srcTable, manglePackage, overrideExisting); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}

	return errors.Join(errs...)
}

func (m *TableMerger) mergeConfigValue(srcPkg *ResourceTablePackage, dstEntry *ResourceEntry, srcCV ResourceConfigValue, srcTable *ResourceTable, manglePackage, overrideExisting bool) error {
	idx, found := dstEntry.values.Search(srcCV)

	clonedValue := srcCV.Value.CloneValue(m.master.Pool)

	if manglePackage {
		if fileRef, ok := clonedValue.(*FileReference); ok {
			if newPath, ok := mangleFilePath(srcPkg.Name, fileRef.Path.Deref()); ok {
				oldPath := fileRef.Path.Deref()
				fileRef.Path = m.master.Pool.MakeRef(newPath)
				m.filesToMerge = append(m.filesToMerge, FileToMerge{SrcTable: srcTable, OldPath: oldPath, NewPath: newPath})
			}
			// else: no parseable stem — non-fatal, value is cloned unmangled.
		}
	}

	newCV := ResourceConfigValue{Config: srcCV.Config, Product: srcCV.Product, Value: clonedValue}

	if !found {
		dstEntry.values.InsertAt(idx, newCV)
		return nil
	}

	existing, _ := dstEntry.values.At(idx)
	result := ResolveValueCollision(existing.Value, newCV.Value)

	switch result {
	case KeepOriginal:
		return nil
	case TakeNew:
		dstEntry.values.Replace(idx, newCV)
		return nil
	case Conflict:
		if overrideExisting {
			dstEntry.values.Replace(idx, newCV)
			return nil
		}

		err := &TableError{Err: ErrDuplicateValue, At: newCV.Value.Src(), PriorAt: Some(existing.Value.Src())}
		Report(m.ctx.Diagnostics(), SeverityError, newCV.Value.Src(), err.Error())
		Report(m.ctx.Diagnostics(), SeverityNote, existing.Value.Src(), "originally defined here")
		return err
	}

	return nil
}

// mangleFilePath rewrites path's stem (the filename without directory or extension) as "pkg$stem", leaving
// directory and extension untouched. Returns ok=false if path has no parseable stem (e.g. ends in "/").
func mangleFilePath(pkg, path string) (string, bool) {
	slash := strings.LastIndexByte(path, '/')
	dir := ""
	rest := path
	if slash >= 0 {
		dir = path[:slash+1]
		rest = path[slash+1:]
	}

	if rest == "" {
		return "", false
	}

	stem := rest
	suffix := ""
	if dot := strings.LastIndexByte(rest, '.'); dot > 0 {
		stem = rest[:dot]
		suffix = rest[dot:]
	}

	return dir + mangle(pkg, stem) + suffix, true
}
