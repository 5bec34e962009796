// Package config loads docgraph settings.
//
// Settings are resolved in three steps, later steps winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, by default $XDG_CONFIG_HOME/docgraph/config.toml
//  3. DOCGRAPH_* environment variables, optionally from a .env file
//
// Example config.toml:
//
//	[layout]
//	node_spacing = 100
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	docerrors "github.com/matzehuels/docgraph/pkg/errors"
	"github.com/matzehuels/docgraph/pkg/layout"
)

const appName = "docgraph"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds every docgraph setting.
type Config struct {
	Layout layout.Options `toml:"layout"`
	Cache  CacheConfig    `toml:"cache"`
	Server ServerConfig   `toml:"server"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend string        `toml:"backend"`
	Dir     string        `toml:"dir"`
	TTL     time.Duration `toml:"ttl"`
	Prefix  string        `toml:"prefix"`
	Redis   RedisConfig   `toml:"redis"`
}

// RedisConfig locates the Redis server for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `toml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	MaxBodyBytes    int64         `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Layout: layout.DefaultOptions(),
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     7 * 24 * time.Hour,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    4 << 20,
		},
	}
}

// Load resolves the configuration. An empty path selects DefaultPath, which
// may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				err = nil
			}
			if err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotenv loads environment variables from files (default ".env").
// Missing files are ignored; variables already set are not overwritten.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return docerrors.Wrap(docerrors.ErrCodeInvalidConfig, err, "load %s", f)
		}
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/docgraph/config.toml, falling back
// to ~/.config. It returns "" if no home directory can be found.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// DefaultCacheDir returns $XDG_CACHE_HOME/docgraph, falling back to
// ~/.cache/docgraph.
func DefaultCacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// CacheDir returns the configured cache directory or DefaultCacheDir.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return DefaultCacheDir()
}

// ValidateLayout requires positive spacings and an animation threshold of
// at least 1. layout.Options treats zero as unset.
func ValidateLayout(l layout.Options) error {
	spacings := []struct {
		name  string
		value float64
	}{
		{"layer_spacing", l.LayerSpacing},
		{"node_spacing", l.NodeSpacing},
		{"grid_spacing_x", l.GridSpacingX},
		{"grid_spacing_y", l.GridSpacingY},
	}
	for _, s := range spacings {
		if s.value <= 0 {
			return docerrors.New(docerrors.ErrCodeInvalidConfig, "layout.%s must be positive, got %v", s.name, s.value)
		}
	}
	if l.AnimationThreshold < 1 {
		return docerrors.New(docerrors.ErrCodeInvalidConfig, "layout.animation_threshold must be at least 1, got %d", l.AnimationThreshold)
	}
	return nil
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.Redis.Addr == "" {
			return docerrors.New(docerrors.ErrCodeInvalidConfig, "cache.redis.addr is required for the redis backend")
		}
	default:
		return docerrors.New(docerrors.ErrCodeInvalidConfig, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}

	if err := ValidateLayout(c.Layout); err != nil {
		return err
	}
	if c.Cache.TTL < 0 {
		return docerrors.New(docerrors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err != nil {
		return docerrors.Wrap(docerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return docerrors.New(docerrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// applyEnv overrides settings from DOCGRAPH_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *float64) error {
		if v, ok := lookup(key); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return docerrors.Wrap(docerrors.ErrCodeInvalidConfig, err, "%s", key)
			}
			*dst = f
		}
		return nil
	}
	integer := func(key string, dst *int) error {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return docerrors.Wrap(docerrors.ErrCodeInvalidConfig, err, "%s", key)
			}
			*dst = n
		}
		return nil
	}
	duration := func(key string, dst *time.Duration) error {
		if v, ok := lookup(key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return docerrors.Wrap(docerrors.ErrCodeInvalidConfig, err, "%s", key)
			}
			*dst = d
		}
		return nil
	}

	str("DOCGRAPH_CACHE_BACKEND", &c.Cache.Backend)
	str("DOCGRAPH_CACHE_DIR", &c.Cache.Dir)
	str("DOCGRAPH_CACHE_PREFIX", &c.Cache.Prefix)
	str("DOCGRAPH_REDIS_ADDR", &c.Cache.Redis.Addr)
	str("DOCGRAPH_REDIS_PASSWORD", &c.Cache.Redis.Password)
	str("DOCGRAPH_ADDR", &c.Server.Addr)

	for _, err := range []error{
		duration("DOCGRAPH_CACHE_TTL", &c.Cache.TTL),
		integer("DOCGRAPH_REDIS_DB", &c.Cache.Redis.DB),
		num("DOCGRAPH_LAYER_SPACING", &c.Layout.LayerSpacing),
		num("DOCGRAPH_NODE_SPACING", &c.Layout.NodeSpacing),
		num("DOCGRAPH_GRID_SPACING_X", &c.Layout.GridSpacingX),
		num("DOCGRAPH_GRID_SPACING_Y", &c.Layout.GridSpacingY),
		integer("DOCGRAPH_ANIMATION_THRESHOLD", &c.Layout.AnimationThreshold),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}
