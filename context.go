// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

// Context is the compilation-wide collaborator the table merger and callers read the active compilation
// package identity and diagnostics sink from. This package never reaches for thread-locals or ambient globals
// for this; callers pass a Context in explicitly.
type Context interface {
	CompilationPackage() string
	PackageId() uint8
	Diagnostics() Diagnostics
}

// SimpleContext is a minimal Context implementation sufficient for single-package compilations and tests.
type SimpleContext struct {
	Package string
	Id      uint8
	Diag    Diagnostics
}

func (c SimpleContext) CompilationPackage() string { return c.Package }
func (c SimpleContext) PackageId() uint8            { return c.Id }
func (c SimpleContext) Diagnostics() Diagnostics    { return c.Diag }
