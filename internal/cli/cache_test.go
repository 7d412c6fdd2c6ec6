package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/graphlift/graphlift/pkg/cache"
	"github.com/graphlift/graphlift/pkg/errors"
)

func TestCachePathCommand(t *testing.T) {
	c := newTestCLI(t)

	out, err := execute(t, c, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	if got := strings.TrimSpace(out); got != dir {
		t.Errorf("cache path = %q, want %q", got, dir)
	}
}

func TestCacheClearCommand(t *testing.T) {
	c := newTestCLI(t)

	// Populate the cache through a real conversion.
	input := writeFixture(t, "analysis.json", reactDoc)
	output := filepath.Join(filepath.Dir(input), "graph.json")
	if _, err := execute(t, c, "convert", input, "-o", output); err != nil {
		t.Fatalf("convert: %v", err)
	}

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer fc.Close()

	entries, _, err := fc.Info()
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if entries == 0 {
		t.Fatal("conversion should have populated the cache")
	}

	if _, err := execute(t, c, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	entries, _, err = fc.Info()
	if err != nil {
		t.Fatalf("Info() after clear error = %v", err)
	}
	if entries != 0 {
		t.Errorf("cache has %d entries after clear, want 0", entries)
	}
}

func TestCacheClearCommandEmpty(t *testing.T) {
	c := newTestCLI(t)

	// Clearing a cache that was never created is not an error.
	if _, err := execute(t, c, "cache", "clear"); err != nil {
		t.Errorf("cache clear on empty cache: %v", err)
	}
}

func TestCacheRemoveInvalidKey(t *testing.T) {
	c := newTestCLI(t)

	_, err := execute(t, c, "cache", "rm", "../escape")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("cache rm with traversal key: error = %v, want INVALID_INPUT", err)
	}
}

func TestCacheInfoCommand(t *testing.T) {
	c := newTestCLI(t)

	// Info on a cache that was never created reports it as empty.
	if _, err := execute(t, c, "cache", "info"); err != nil {
		t.Errorf("cache info on empty cache: %v", err)
	}
}
