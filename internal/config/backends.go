package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/danehlert/courtline/pkg/cache"
	"github.com/danehlert/courtline/pkg/errors"
	"github.com/danehlert/courtline/pkg/store"
)

// DefaultCacheDir returns the user cache directory for courtline, falling
// back to a hidden directory under $HOME when the OS cache dir is unknown.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "courtline")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".courtline-cache"
	}
	return filepath.Join(home, ".courtline", "cache")
}

// OpenCache constructs the configured cache backend.
func (c *Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case CacheBackendNone:
		return cache.NewNullCache(), nil
	case CacheBackendRedis:
		return cache.NewRedisCache(ctx, c.Cache.Redis)
	case CacheBackendFile, "":
		dir := c.Cache.Dir
		if dir == "" {
			dir = DefaultCacheDir()
		}
		return cache.NewFileCache(dir)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %s", c.Cache.Backend)
	}
}

// OpenStore constructs the configured draw store backend.
func (c *Config) OpenStore(ctx context.Context) (store.Store, error) {
	switch c.Store.Backend {
	case StoreBackendMongo:
		return store.NewMongoStore(ctx, c.Store.Mongo)
	case StoreBackendMemory, "":
		return store.NewMemoryStore(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend: %s", c.Store.Backend)
	}
}
