// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// NewID returns a time-ordered identifier "<prefix>-<ulid>". The ULID is
// lower-cased so ids stay readable in URLs.
func NewID(prefix string) string {
	id := strings.ToLower(ulid.Make().String())
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
