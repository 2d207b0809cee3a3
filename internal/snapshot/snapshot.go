// Package snapshot persists a JSON copy of the session's entry list on disk
// under the well-known bugTrackerData key. It is a read fallback for when the
// store is unreachable, not a second source of truth.
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/nymphhq/nymph/internal/models"
)

// Key is the storage key the original kept its serialized entry array under.
const Key = "bugTrackerData"

// Cache stores one JSON-serialized entry slice per key.
type Cache struct {
	d *diskv.Diskv
}

// New creates a Cache rooted at basePath.
func New(basePath string) *Cache {
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// Write replaces the cached list.
func (c *Cache) Write(entries []models.Entry) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.d.Write(Key, b)
}

// Read returns the cached list, or ok=false when no snapshot exists.
func (c *Cache) Read() ([]models.Entry, bool, error) {
	b, err := c.d.Read(Key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var entries []models.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

// Erase removes the snapshot. Erasing a missing snapshot is a success.
func (c *Cache) Erase() error {
	err := c.d.Erase(Key)
	if err != nil && (errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist)) {
		return nil
	}
	return err
}
