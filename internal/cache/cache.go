// Package cache provides a file-based result cache keyed by content
// hash, so unchanged files skip re-analysis between runs.
package cache

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"

	"github.com/aritra741/Qualytics/pkg/models"
)

// Cache stores per-file metric records on disk with a TTL.
type Cache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// entry is one cached record.
type entry struct {
	Hash      string             `json:"hash"`
	Timestamp time.Time          `json:"timestamp"`
	Metrics   models.FileMetrics `json:"metrics"`
}

// New creates a cache instance. A disabled cache is a no-op.
func New(dir string, ttlHours int, enabled bool) (*Cache, error) {
	if !enabled {
		return &Cache{enabled: false}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{
		dir:     dir,
		ttl:     time.Duration(ttlHours) * time.Hour,
		enabled: true,
	}, nil
}

// HashBytes computes a BLAKE3 content hash as a hex string.
func HashBytes(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashFile computes the content hash of a file.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return HashBytes(data), nil
}

// Get retrieves a cached record for a content hash, if present and fresh.
func (c *Cache) Get(hash string) (models.FileMetrics, bool) {
	if !c.enabled {
		return models.FileMetrics{}, false
	}

	data, err := os.ReadFile(c.keyPath(hash))
	if err != nil {
		return models.FileMetrics{}, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return models.FileMetrics{}, false
	}
	if e.Hash != hash || time.Since(e.Timestamp) > c.ttl {
		os.Remove(c.keyPath(hash))
		return models.FileMetrics{}, false
	}

	return e.Metrics, true
}

// Put stores a record under a content hash. Write errors are swallowed:
// a failed cache write only costs a re-analysis next run.
func (c *Cache) Put(hash string, m models.FileMetrics) {
	if !c.enabled {
		return
	}

	data, err := json.Marshal(entry{
		Hash:      hash,
		Timestamp: time.Now(),
		Metrics:   m,
	})
	if err != nil {
		return
	}
	_ = os.WriteFile(c.keyPath(hash), data, 0o644)
}

// Clear removes every cached entry.
func (c *Cache) Clear() error {
	if !c.enabled {
		return nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			os.Remove(filepath.Join(c.dir, e.Name()))
		}
	}
	return nil
}

func (c *Cache) keyPath(hash string) string {
	return filepath.Join(c.dir, hash+".json")
}
