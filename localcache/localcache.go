// Package localcache is the client's offline persistence surface: a small
// file-backed key-value store holding JSON payloads under fixed keys.
package localcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Fixed cache keys. One file per key.
const (
	KeyFoods    = "eatwise_foods"
	KeyDailyLog = "eatwise_daily_logs"
	KeyWater    = "eatwise_water"
	KeySession  = "eatwise_session"
)

// schemaVersion is stamped into every envelope; payloads with a different
// version are discarded as empty state instead of being half-decoded.
const schemaVersion = 1

type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// Cache reads and writes JSON payloads in a directory.
type Cache struct {
	dir string
	log *zap.Logger
}

func New(dir string, logger *zap.Logger) (*Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir, log: logger}, nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get decodes the payload stored under key into out. A missing file,
// malformed JSON or unknown schema version all report ok=false; the caller
// proceeds from empty state.
func (c *Cache) Get(key string, out any) bool {
	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.Warn("cache payload corrupt, ignoring", zap.String("key", key), zap.Error(err))
		return false
	}
	if env.SchemaVersion != schemaVersion {
		c.log.Warn("cache schema version mismatch, ignoring",
			zap.String("key", key),
			zap.Int("found", env.SchemaVersion),
			zap.Int("want", schemaVersion))
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		c.log.Warn("cache payload corrupt, ignoring", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Put stores v under key. Writes go through a temp file so a crash never
// leaves a torn payload behind.
func (c *Cache) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache payload %s: %w", key, err)
	}
	raw, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("encode cache envelope %s: %w", key, err)
	}

	tmp := c.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write cache %s: %w", key, err)
	}
	return os.Rename(tmp, c.path(key))
}

// Delete removes the payload stored under key.
func (c *Cache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
