package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// staleTempAge is how old an orphaned temp file must be before Prune
// removes it. Younger ones may belong to a Set in progress.
const staleTempAge = time.Minute

// FileCache stores each entry as a JSON file under dir, sharded by the
// first two hex digits of the key hash. It is the CLI default.
type FileCache struct {
	dir string
}

// fileEntry is the on-disk form of a cached value.
type fileEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func (e *fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// Get returns the entry for key. Expired and unreadable entries are removed
// and reported as misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	entry, err := readEntry(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case errors.Is(err, errCorrupt):
		_ = os.Remove(path)
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	if entry.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set writes the entry through a temporary file so readers never see a
// partial write.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "*.tmp")
	if err != nil {
		return err
	}
	_, err = tmp.Write(raw)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
	}
	return err
}

// Delete removes key. A missing entry is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

// Clear removes every entry and temp file, and returns how many entries
// were deleted.
func (c *FileCache) Clear() (int, error) {
	return c.sweep(time.Time{}, func(string, *fileEntry, error) bool { return true })
}

// Prune removes entries that expired before now, plus unreadable ones, and
// returns how many were deleted. Temp files left behind by interrupted
// writes are removed once they are older than a minute.
func (c *FileCache) Prune(now time.Time) (int, error) {
	return c.sweep(now.Add(-staleTempAge), func(_ string, e *fileEntry, err error) bool {
		return err != nil || e.expired(now)
	})
}

// sweep deletes the entry files for which remove returns true and the temp
// files last modified before tmpBefore, or all of them when tmpBefore is
// zero. Shard directories left empty are removed too. Only entries are
// counted.
func (c *FileCache) sweep(tmpBefore time.Time, remove func(path string, e *fileEntry, err error) bool) (int, error) {
	count := 0
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".tmp") {
			if info, err := d.Info(); err == nil && (tmpBefore.IsZero() || info.ModTime().Before(tmpBefore)) {
				_ = os.Remove(path)
			}
			return nil
		}
		if !strings.HasSuffix(path, ".json") {
			return nil
		}
		entry, readErr := readEntry(path)
		if remove(path, entry, readErr) && os.Remove(path) == nil {
			count++
		}
		return nil
	})

	shards, _ := os.ReadDir(c.dir)
	for _, s := range shards {
		if s.IsDir() {
			_ = os.Remove(filepath.Join(c.dir, s.Name())) // fails unless empty
		}
	}
	return count, err
}

var errCorrupt = errors.New("corrupt cache entry")

func readEntry(path string) (*fileEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, errCorrupt
	}
	return &entry, nil
}

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
