// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

// CollisionResult is the outcome of resolving two definitions that both target the same (config, product) slot
// of a ResourceEntry.
type CollisionResult int

const (
	KeepOriginal CollisionResult = iota
	TakeNew
	Conflict
)

// ResolveValueCollision decides whether incoming overrides, is rejected by, or conflicts with existing,
// including the attribute DECL/USE special case — this is the only place attribute collision semantics live;
// every write path must pass through it.
func ResolveValueCollision(existing, incoming Value) CollisionResult {
	incomingAttr, incomingIsAttr := incoming.(*Attribute)
	existingAttr, existingIsAttr := existing.(*Attribute)

	if !incomingIsAttr {
		// 1. Incoming is not an Attribute.
		if incoming.IsWeak() {
			return KeepOriginal
		}

		if existing.IsWeak() {
			return TakeNew
		}

		return Conflict
	}

	if !existingIsAttr {
		// 2. Incoming is an Attribute, existing is not.
		if existing.IsWeak() {
			return TakeNew
		}

		return Conflict
	}

	// 3. Both are Attributes.
	if existingAttr.TypeMask == incomingAttr.TypeMask {
		// Full declarations with the same format: keep the non-weak one.
		if existingAttr.Weak {
			return TakeNew
		}

		return KeepOriginal
	}

	if existingAttr.Weak && existingAttr.TypeMask == FormatAny {
		// existing is a bare USE record; any real DECL beats it.
		return TakeNew
	}

	if incomingAttr.Weak && incomingAttr.TypeMask == FormatAny {
		// incoming is a bare USE record; the existing DECL wins.
		return KeepOriginal
	}

	// Two DECLs with different, non-ANY formats.
	return Conflict
}
