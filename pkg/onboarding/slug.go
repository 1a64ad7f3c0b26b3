// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import "strings"

// Slugify normalizes a display name into a URL slug: lowercase, runs of
// non-alphanumeric characters collapse to a single '-', no leading or
// trailing separator. Whitespace-only input yields the empty string.
func Slugify(name string) string {
	var b strings.Builder
	pendingSep := false

	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingSep = false
		b.WriteRune(r)
	}

	return b.String()
}
