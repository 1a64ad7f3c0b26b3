// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package selection

import (
	"path/filepath"
	"testing"

	"github.com/canonical/society-gate/internal/logging"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "active_society_id_v1")
	c := NewCache(path, logging.NewNoopLogger())

	if id, ok := c.Get(); ok || id != "" {
		t.Fatalf("expected empty cache, got %q (ok=%v)", id, ok)
	}

	if !c.Set("soc-1") {
		t.Fatal("expected Set to succeed")
	}

	id, ok := c.Get()
	if !ok || id != "soc-1" {
		t.Fatalf("expected soc-1, got %q (ok=%v)", id, ok)
	}

	// A fresh selection supersedes the old one.
	if !c.Set("soc-2") {
		t.Fatal("expected second Set to succeed")
	}
	if id, _ := c.Get(); id != "soc-2" {
		t.Fatalf("expected soc-2, got %q", id)
	}
}

func TestCacheFailsSoft(t *testing.T) {
	c := NewCache("", logging.NewNoopLogger())

	if _, ok := c.Get(); ok {
		t.Error("expected Get on pathless cache to report not-ok")
	}
	if c.Set("soc-1") {
		t.Error("expected Set on pathless cache to report failure")
	}
}

func TestCacheRejectsEmptyID(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "key"), logging.NewNoopLogger())

	if c.Set("") {
		t.Error("expected Set of empty id to be a no-op")
	}
}
