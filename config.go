// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package restable

import (
	"strings"

	"golang.org/x/text/language"
)

// ConfigDescription is the configuration qualifier a ResourceConfigValue is keyed by: locale plus an ordered
// set of opaque device-characteristic qualifier tokens (density, orientation, …). Parsing those qualifier
// strings out of a directory/file name is left to a separate collaborator; what ConfigDescription itself
// provides is a concrete, testable total order and equality, using language.Tag comparison for the locale axis
// and plain string comparison for the rest.
type ConfigDescription struct {
	Locale     language.Tag
	Qualifiers []string
}

// DefaultConfig is the configuration that matches "no particular qualifiers" — the locale-neutral, density-
// neutral default.
var DefaultConfig = ConfigDescription{}

// Compare gives ConfigDescription a total order: locale tag text first, then qualifiers lexically, element by
// element. Equal configs compare equal regardless of how they were constructed.
func (c ConfigDescription) Compare(other ConfigDescription) int {
	if d := strings.Compare(c.Locale.String(), other.Locale.String()); d != 0 {
		return d
	}

	n := min(len(c.Qualifiers), len(other.Qualifiers))
	for i := 0; i < n; i++ {
		if d := strings.Compare(c.Qualifiers[i], other.Qualifiers[i]); d != 0 {
			return d
		}
	}

	return len(c.Qualifiers) - len(other.Qualifiers)
}

// Equal reports whether c and other denote the same configuration.
func (c ConfigDescription) Equal(other ConfigDescription) bool {
	return c.Compare(other) == 0
}

// IsDefault reports whether this is the locale-neutral, qualifier-free default configuration.
func (c ConfigDescription) IsDefault() bool {
	return c.Equal(DefaultConfig)
}

// String renders the configuration the way a debug dump would, e.g. "en-US-hdpi-v21" or "default".
func (c ConfigDescription) String() string {
	var parts []string
	if c.Locale != language.Und {
		parts = append(parts, c.Locale.String())
	}

	parts = append(parts, c.Qualifiers...)

	if len(parts) == 0 {
		return "default"
	}

	return strings.Join(parts, "-")
}

// MatchConfig reports whether candidate is usable for a request under the platform's "best match" notion
// applied to the locale axis only: an exact locale match, or candidate being locale-neutral. Density- and
// orientation-aware best-match selection is left to a separate linking stage.
func MatchConfig(request, candidate ConfigDescription) bool {
	if candidate.Locale == language.Und {
		return true
	}

	return candidate.Locale == request.Locale
}
