// Package config loads server and tool configuration from a TOML file
// with environment overrides.
//
// Precedence, lowest to highest: built-in defaults, the TOML file,
// then GRAPHLIFT_* environment variables. A .env file in the working
// directory is loaded into the environment first, so deployments can
// keep credentials out of the config file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/graphlift/graphlift/pkg/errors"
)

// Config is the root configuration shared by the serve command and the
// cache-aware CLI commands.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Neo4j  Neo4jConfig  `toml:"neo4j"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the conversion/render cache.
type CacheConfig struct {
	Backend   string      `toml:"backend"` // "file", "redis", or "none"
	Dir       string      `toml:"dir"`     // file backend only
	Namespace string      `toml:"namespace"`
	TTL       duration    `toml:"ttl"`
	Redis     RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig selects and configures graph persistence.
type StoreConfig struct {
	Backend string      `toml:"backend"` // "memory" or "mongo"
	Mongo   MongoConfig `toml:"mongo"`
}

// MongoConfig configures the mongo store backend.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Neo4jConfig configures the optional graph mirror. When disabled the
// rest of the section is ignored.
type Neo4jConfig struct {
	Enabled  bool   `toml:"enabled"`
	URI      string `toml:"uri"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Database string `toml:"database"`
}

// LogConfig configures logging across CLI and server.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// duration wraps time.Duration so TOML values like "24h" decode.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache: CacheConfig{
			Backend: "file",
			Dir:     defaultCacheDir(),
			TTL:     duration{24 * time.Hour},
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Store: StoreConfig{
			Backend: "memory",
			Mongo: MongoConfig{
				URI:      "mongodb://localhost:27017",
				Database: "graphlift",
			},
		},
		Neo4j: Neo4jConfig{
			URI:      "neo4j://localhost:7687",
			Username: "neo4j",
			Database: "neo4j",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load builds the effective configuration.
//
// When path is empty, "graphlift.toml" in the working directory is
// used if present and no file is required. An explicit path that does
// not exist is an error.
func Load(path string) (*Config, error) {
	// Credentials via .env are optional; ignore a missing file.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = "graphlift.toml"
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	envString("GRAPHLIFT_ADDR", &cfg.Server.Addr)
	envString("GRAPHLIFT_CACHE_BACKEND", &cfg.Cache.Backend)
	envString("GRAPHLIFT_CACHE_DIR", &cfg.Cache.Dir)
	envString("GRAPHLIFT_CACHE_NAMESPACE", &cfg.Cache.Namespace)
	envString("GRAPHLIFT_REDIS_ADDR", &cfg.Cache.Redis.Addr)
	envString("GRAPHLIFT_REDIS_PASSWORD", &cfg.Cache.Redis.Password)
	envInt("GRAPHLIFT_REDIS_DB", &cfg.Cache.Redis.DB)
	envString("GRAPHLIFT_STORE_BACKEND", &cfg.Store.Backend)
	envString("GRAPHLIFT_MONGO_URI", &cfg.Store.Mongo.URI)
	envString("GRAPHLIFT_MONGO_DATABASE", &cfg.Store.Mongo.Database)
	envBool("GRAPHLIFT_NEO4J_ENABLED", &cfg.Neo4j.Enabled)
	envString("GRAPHLIFT_NEO4J_URI", &cfg.Neo4j.URI)
	envString("GRAPHLIFT_NEO4J_USERNAME", &cfg.Neo4j.Username)
	envString("GRAPHLIFT_NEO4J_PASSWORD", &cfg.Neo4j.Password)
	envString("GRAPHLIFT_NEO4J_DATABASE", &cfg.Neo4j.Database)
	envString("GRAPHLIFT_LOG_LEVEL", &cfg.Log.Level)

	if v := os.Getenv("GRAPHLIFT_CACHE_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = duration{ttl}
		}
	}
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (supported: file, redis, none)", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "memory", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown store backend %q (supported: memory, mongo)", c.Store.Backend)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown log level %q (supported: debug, info, warn, error)", c.Log.Level)
	}
	return nil
}

// CacheTTL returns the configured entry lifetime.
func (c *Config) CacheTTL() time.Duration {
	return c.Cache.TTL.Duration
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".graphlift-cache"
	}
	return base + string(os.PathSeparator) + "graphlift"
}
