// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package selection

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/canonical/society-gate/internal/logging"
)

// cacheKey versions the stored value; bump it to invalidate old selections.
const cacheKey = "active_society_id_v1"

type CacheInterface interface {
	Get() (string, bool)
	Set(id string) bool
}

var _ CacheInterface = (*Cache)(nil)

// Cache persists the last chosen society id so repeat visits skip the
// picker. Every operation fails soft: an unavailable store reads as empty
// and writes as a no-op, reported through the boolean, never an error.
type Cache struct {
	path   string
	logger logging.LoggerInterface
}

func NewCache(path string, logger logging.LoggerInterface) *Cache {
	return &Cache{path: path, logger: logger}
}

// DefaultPath places the cache under the user config dir. Empty when no
// config dir is resolvable; NewCache tolerates that and stays always-empty.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "society-gate", cacheKey)
}

func (c *Cache) Get() (string, bool) {
	if c.path == "" {
		return "", false
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return "", false
	}

	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", false
	}
	return id, true
}

func (c *Cache) Set(id string) bool {
	if c.path == "" || id == "" {
		return false
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		c.logger.Debugf("selection cache unavailable: %v", err)
		return false
	}

	if err := os.WriteFile(c.path, []byte(id), 0o600); err != nil {
		c.logger.Debugf("selection cache write failed: %v", err)
		return false
	}
	return true
}
