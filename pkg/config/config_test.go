package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/graphlift/graphlift/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.CacheTTL() != 24*time.Hour {
		t.Errorf("CacheTTL() = %v, want 24h", cfg.CacheTTL())
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Neo4j.Enabled {
		t.Error("Neo4j should be disabled by default")
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphlift.toml")
	doc := `
[server]
addr = ":9000"

[cache]
backend = "redis"
ttl = "1h"

[cache.redis]
addr = "redis.internal:6379"
db = 2

[store]
backend = "mongo"

[store.mongo]
uri = "mongodb://db.internal:27017"
database = "graphs"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Redis.Addr != "redis.internal:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("cache config not applied: %+v", cfg.Cache)
	}
	if cfg.CacheTTL() != time.Hour {
		t.Errorf("CacheTTL() = %v, want 1h", cfg.CacheTTL())
	}
	if cfg.Store.Backend != "mongo" || cfg.Store.Mongo.Database != "graphs" {
		t.Errorf("store config not applied: %+v", cfg.Store)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	// Values absent from the file keep their defaults.
	if cfg.Cache.Dir == "" {
		t.Error("Cache.Dir default should survive partial config")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() error = nil, want FILE_NOT_FOUND")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphlift.toml")
	if err := os.WriteFile(path, []byte(`server = `), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want INVALID_CONFIG")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphlift.toml")
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GRAPHLIFT_ADDR", ":7070")
	t.Setenv("GRAPHLIFT_CACHE_BACKEND", "none")
	t.Setenv("GRAPHLIFT_REDIS_DB", "5")
	t.Setenv("GRAPHLIFT_NEO4J_ENABLED", "true")
	t.Setenv("GRAPHLIFT_CACHE_TTL", "30m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("env should override file: Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.DB != 5 {
		t.Errorf("Cache.Redis.DB = %d, want 5", cfg.Cache.Redis.DB)
	}
	if !cfg.Neo4j.Enabled {
		t.Error("Neo4j.Enabled should be set from env")
	}
	if cfg.CacheTTL() != 30*time.Minute {
		t.Errorf("CacheTTL() = %v, want 30m", cfg.CacheTTL())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad cache backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"bad store backend", func(c *Config) { c.Store.Backend = "postgres" }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.validate()
			if err == nil {
				t.Fatal("validate() error = nil, want INVALID_CONFIG")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}
