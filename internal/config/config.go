// Package config provides configuration for the courtline server and CLI.
//
// Settings come from three layers, lowest priority first: built-in
// defaults, an optional TOML file, and COURTLINE_* environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danehlert/courtline/pkg/cache"
	"github.com/danehlert/courtline/pkg/draw/layout"
	"github.com/danehlert/courtline/pkg/errors"
	"github.com/danehlert/courtline/pkg/store"
)

// Cache backend names.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Store backend names.
const (
	StoreBackendMemory = "memory"
	StoreBackendMongo  = "mongo"
)

// Config is the root configuration.
type Config struct {
	Server ServerConfig  `toml:"server"`
	Cache  CacheConfig   `toml:"cache"`
	Store  StoreConfig   `toml:"store"`
	Layout layout.Config `toml:"layout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string            `toml:"backend"`
	Dir     string            `toml:"dir"`
	TTL     duration          `toml:"ttl"`
	Redis   cache.RedisConfig `toml:"redis"`
}

// StoreConfig selects and configures the draw store backend.
type StoreConfig struct {
	Backend string            `toml:"backend"`
	Mongo   store.MongoConfig `toml:"mongo"`
}

// duration wraps time.Duration for TOML string parsing ("24h", "90m").
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Cache: CacheConfig{
			Backend: CacheBackendFile,
			TTL:     duration(24 * time.Hour),
			Redis:   cache.RedisConfig{Addr: "localhost:6379"},
		},
		Store: StoreConfig{
			Backend: StoreBackendMemory,
			Mongo:   store.MongoConfig{URI: "mongodb://localhost:27017"},
		},
		Layout: layout.DefaultConfig(),
	}
}

// Load builds the configuration from defaults, an optional TOML file, and
// environment overrides. An empty path skips the file layer; a named file
// that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config file %s", path)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config file %s", path)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays COURTLINE_* environment variables.
func (c *Config) applyEnv() {
	c.Server.Host = envOr("COURTLINE_HOST", c.Server.Host)
	c.Server.Port = envInt("COURTLINE_PORT", c.Server.Port)

	c.Cache.Backend = envOr("COURTLINE_CACHE_BACKEND", c.Cache.Backend)
	c.Cache.Dir = envOr("COURTLINE_CACHE_DIR", c.Cache.Dir)
	c.Cache.Redis.Addr = envOr("COURTLINE_REDIS_ADDR", c.Cache.Redis.Addr)
	c.Cache.Redis.Password = envOr("COURTLINE_REDIS_PASSWORD", c.Cache.Redis.Password)
	c.Cache.Redis.DB = envInt("COURTLINE_REDIS_DB", c.Cache.Redis.DB)

	c.Store.Backend = envOr("COURTLINE_STORE_BACKEND", c.Store.Backend)
	c.Store.Mongo.URI = envOr("COURTLINE_MONGO_URI", c.Store.Mongo.URI)
	c.Store.Mongo.Database = envOr("COURTLINE_MONGO_DATABASE", c.Store.Mongo.Database)
	c.Store.Mongo.Collection = envOr("COURTLINE_MONGO_COLLECTION", c.Store.Mongo.Collection)
}

// TTLDuration returns the cache TTL as a time.Duration.
func (c *CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
