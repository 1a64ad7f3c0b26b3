// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed punctuation and digits", "My Society!! 2026", "my-society-2026"},
		{"already a slug", "acme-golf", "acme-golf"},
		{"uppercase", "ACME", "acme"},
		{"interior run collapses", "north   &   south", "north-south"},
		{"leading and trailing junk", "--Acme Golf--", "acme-golf"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"punctuation only", "!!!", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Slugify(test.input); got != test.expected {
				t.Fatalf("Slugify(%q) = %q, expected %q", test.input, got, test.expected)
			}
		})
	}
}
