package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danehlert/courtline/pkg/cache"
	"github.com/danehlert/courtline/pkg/draw/layout"
	"github.com/danehlert/courtline/pkg/errors"
	"github.com/danehlert/courtline/pkg/store"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("cache backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Cache.TTLDuration() != 24*time.Hour {
		t.Errorf("ttl = %v, want 24h", cfg.Cache.TTLDuration())
	}
	if cfg.Store.Backend != StoreBackendMemory {
		t.Errorf("store backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Layout.CardWidth != layout.DefaultCardWidth {
		t.Errorf("card width = %v, want default", cfg.Layout.CardWidth)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courtline.toml")
	content := `
[server]
port = 9000

[cache]
backend = "redis"
ttl = "90m"

[cache.redis]
addr = "redis.internal:6379"
db = 2

[layout]
card_width = 260.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host default lost: %q", cfg.Server.Host)
	}
	if cfg.Cache.Backend != CacheBackendRedis {
		t.Errorf("cache backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "redis.internal:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("redis config not applied: %+v", cfg.Cache.Redis)
	}
	if cfg.Cache.TTLDuration() != 90*time.Minute {
		t.Errorf("ttl = %v, want 90m", cfg.Cache.TTLDuration())
	}
	if cfg.Layout.CardWidth != 260 {
		t.Errorf("card width = %v, want 260", cfg.Layout.CardWidth)
	}
	if cfg.Layout.CardHeight != layout.DefaultCardHeight {
		t.Errorf("unset layout field lost its default: %v", cfg.Layout.CardHeight)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\nport="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("COURTLINE_PORT", "7777")
	t.Setenv("COURTLINE_CACHE_BACKEND", "none")
	t.Setenv("COURTLINE_STORE_BACKEND", "mongo")
	t.Setenv("COURTLINE_MONGO_URI", "mongodb://db.internal:27017")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("port = %d, want 7777", cfg.Server.Port)
	}
	if cfg.Cache.Backend != CacheBackendNone {
		t.Errorf("cache backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Store.Backend != StoreBackendMongo {
		t.Errorf("store backend = %q, want mongo", cfg.Store.Backend)
	}
	if cfg.Store.Mongo.URI != "mongodb://db.internal:27017" {
		t.Errorf("mongo uri override lost: %q", cfg.Store.Mongo.URI)
	}
}

func TestOpenCacheBackends(t *testing.T) {
	ctx := context.Background()

	cfg := Default()
	cfg.Cache.Backend = CacheBackendNone
	c, err := cfg.OpenCache(ctx)
	if err != nil {
		t.Fatalf("none backend: %v", err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("expected NullCache, got %T", c)
	}

	cfg = Default()
	cfg.Cache.Backend = CacheBackendFile
	cfg.Cache.Dir = t.TempDir()
	if _, err := cfg.OpenCache(ctx); err != nil {
		t.Fatalf("file backend: %v", err)
	}

	cfg = Default()
	cfg.Cache.Backend = "carrier-pigeon"
	if _, err := cfg.OpenCache(ctx); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestOpenStoreBackends(t *testing.T) {
	ctx := context.Background()

	cfg := Default()
	s, err := cfg.OpenStore(ctx)
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	if _, ok := s.(*store.MemoryStore); !ok {
		t.Errorf("expected MemoryStore, got %T", s)
	}

	cfg.Store.Backend = "filing-cabinet"
	if _, err := cfg.OpenStore(ctx); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}
