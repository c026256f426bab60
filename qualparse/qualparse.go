// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

// Package qualparse tokenizes Android-style configuration-qualifier strings, e.g. "en-rUS-hdpi-v21", into
// their dash-separated component tokens using a buffer-per-token character scan.
package qualparse

import (
	"fmt"
	"strings"
)

// Token is one qualifier component of a parsed configuration-qualifier string.
type Token struct {
	Value string
}

// valid qualifier token: letters and digits only; must be non-empty.
func validToken(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}

	return true
}

// Parse splits input into dash-separated qualifier tokens.
//
// Example:
//
//	Input:  "en-rUS-hdpi-v21"
//	Output: [en rUS hdpi v21]
func Parse(input string) ([]Token, error) {
	var tokens []Token
	var buf strings.Builder

	flush := func() error {
		if buf.Len() == 0 {
			return nil
		}

		tok := buf.String()
		if !validToken(tok) {
			return fmt.Errorf("invalid qualifier token: %q", tok)
		}

		tokens = append(tokens, Token{Value: tok})
		buf.Reset()
		return nil
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]

		if ch == '-' {
			if err := flush(); err != nil {
				return nil, err
			}

			continue
		}

		buf.WriteByte(ch)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty qualifier string")
	}

	return tokens, nil
}

// Values returns just the token strings, in order.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}

	return out
}
