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
)

// ErrCompoundValue is returned by Value.Flatten for the compound variants (Attribute, Style, Array, Plural,
// Styleable): this package only guarantees traversable structure and per-child flatten; the platform's
// compound chunk encoding is produced by a downstream flattening layer.
var ErrCompoundValue = errors.New("restable: compound value has no single-leaf flatten form")

// ErrIdMismatch is returned when a package/type/entry already carries a different assigned ID than the one an
// insertion is trying to stamp.
var ErrIdMismatch = errors.New("restable: id mismatch")

// ErrInvalidName is returned when an entry name contains a character outside the allowed set.
var ErrInvalidName = errors.New("restable: invalid name")

// ErrDuplicateValue is returned when the collision resolver reports a Conflict.
var ErrDuplicateValue = errors.New("restable: duplicate value")

// ErrConflictingPublicId is returned by the merger when two public nodes disagree on their assigned ID.
var ErrConflictingPublicId = errors.New("restable: conflicting public id")

// TableError wraps one of the sentinel errors above with the Source that triggered it and, where relevant, the
// Source of a prior conflicting definition.
type TableError struct {
	Err      error
	At       Source
	PriorAt  Maybe[Source]
	Name     ResourceName
}

func (e *TableError) Error() string {
	if prior, ok := e.PriorAt.Get(); ok {
		return fmt.Sprintf("%s: %s at %s (originally defined at %s)", e.Name, e.Err, e.At, prior)
	}

	return fmt.Sprintf("%s: %s at %s", e.Name, e.Err, e.At)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
