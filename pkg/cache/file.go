package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a directory, sharded by
// the first byte of the key digest so no single directory grows
// unbounded. It backs the CLI cache.
type FileCache struct {
	dir string
}

// NewFileCache creates the cache directory if needed and returns a
// cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk envelope. ExpiresAt is unix nanoseconds;
// zero means the entry never expires.
type fileEntry struct {
	ExpiresAt int64  `json:"exp,omitempty"`
	Payload   []byte `json:"payload"`
}

// Get returns the payload for key. Expired and unreadable entries read
// as misses and are removed.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	dest := c.path(key)

	raw, err := os.ReadFile(dest)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = os.Remove(dest)
		return nil, false, nil
	}
	if e.ExpiresAt > 0 && time.Now().UnixNano() > e.ExpiresAt {
		_ = os.Remove(dest)
		return nil, false, nil
	}
	return e.Payload, true, nil
}

// Set stores data under key. The entry is written to a temp file and
// renamed into place so concurrent readers never observe a partial
// write.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Payload: data}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl).UnixNano()
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	dest := c.path(key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dest)
}

// Delete removes the entry for key. Deleting a missing key is not an
// error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Info reports the number of entries and their total size on disk.
func (c *FileCache) Info() (entries int, size int64, err error) {
	err = filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries++
		size += info.Size()
		return nil
	})
	return entries, size, err
}

// Clear removes all entries and leaves an empty cache directory.
func (c *FileCache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// Close is a no-op for the file backend.
func (c *FileCache) Close() error { return nil }

// path maps a key to its shard directory and file.
func (c *FileCache) path(key string) string {
	digest := Hash([]byte(key))
	return filepath.Join(c.dir, digest[:2], digest+".json")
}

var _ Cache = (*FileCache)(nil)
