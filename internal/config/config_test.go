package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	docerrors "github.com/matzehuels/docgraph/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Layout.LayerSpacing != 300 || cfg.Layout.NodeSpacing != 120 || cfg.Layout.AnimationThreshold != 50 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %s, want file", cfg.Cache.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeFile(t, t.TempDir(), "config.toml", `
[layout]
node_spacing = 80
animation_threshold = 10

[cache]
backend = "redis"
ttl = "2h"
prefix = "dg:"

[cache.redis]
addr = "redis:6379"
db = 2

[server]
addr = ":9090"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.NodeSpacing != 80 || cfg.Layout.AnimationThreshold != 10 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Layout.LayerSpacing != 300 {
		t.Errorf("unset LayerSpacing = %v, want default 300", cfg.Layout.LayerSpacing)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.TTL != 2*time.Hour || cfg.Cache.Prefix != "dg:" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.Redis.Addr != "redis:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Cache.Redis)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %s", cfg.Server.Addr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := Load(""); err != nil {
		t.Errorf("missing default file should be fine: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing explicit file should fail")
	}
}

func TestLoadDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if err := os.MkdirAll(filepath.Join(home, "docgraph"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(home, "docgraph"), "config.toml", "[cache]\nbackend = \"none\"\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.Backend != BackendNone {
		t.Errorf("Backend = %s, want none", cfg.Cache.Backend)
	}
}

func TestLoadRejects(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "[layout]\nnode_spacin = 3\n"},
		{"bad syntax", "[layout\n"},
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n"},
		{"negative spacing", "[layout]\nlayer_spacing = -1\n"},
		{"zero spacing", "[layout]\nnode_spacing = 0\n"},
		{"zero animation threshold", "[layout]\nanimation_threshold = 0\n"},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n[cache.redis]\naddr = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", tt.content)
			_, err := Load(path)
			if !docerrors.Is(err, docerrors.ErrCodeInvalidConfig) {
				t.Errorf("Load() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"DOCGRAPH_CACHE_BACKEND":       "none",
		"DOCGRAPH_CACHE_TTL":           "90m",
		"DOCGRAPH_REDIS_DB":            "3",
		"DOCGRAPH_NODE_SPACING":        "99.5",
		"DOCGRAPH_ANIMATION_THRESHOLD": "7",
		"DOCGRAPH_ADDR":                "127.0.0.1:1234",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Cache.Backend != BackendNone || cfg.Cache.TTL != 90*time.Minute || cfg.Cache.Redis.DB != 3 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Layout.NodeSpacing != 99.5 || cfg.Layout.AnimationThreshold != 7 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Server.Addr != "127.0.0.1:1234" {
		t.Errorf("Server.Addr = %s", cfg.Server.Addr)
	}

	env = map[string]string{"DOCGRAPH_NODE_SPACING": "wide"}
	if err := Default().applyEnv(lookup); !docerrors.Is(err, docerrors.ErrCodeInvalidConfig) {
		t.Errorf("bad number = %v, want INVALID_CONFIG", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DOCGRAPH_CACHE_BACKEND", "none")
	path := writeFile(t, t.TempDir(), "config.toml", "[cache]\nbackend = \"file\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cache.Backend != BackendNone {
		t.Errorf("Backend = %s, env should win", cfg.Cache.Backend)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "DOCGRAPH_TEST_DOTENV=from-file\n")
	t.Setenv("DOCGRAPH_TEST_DOTENV", "")
	os.Unsetenv("DOCGRAPH_TEST_DOTENV")

	if err := LoadDotenv(path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if got := os.Getenv("DOCGRAPH_TEST_DOTENV"); got != "from-file" {
		t.Errorf("DOCGRAPH_TEST_DOTENV = %q", got)
	}
	if err := LoadDotenv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored: %v", err)
	}
}

func TestCacheDir(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	cfg := Default()
	dir, err := cfg.CacheDir()
	if err != nil || dir != filepath.Join(cacheHome, "docgraph") {
		t.Errorf("CacheDir = %s, %v", dir, err)
	}

	cfg.Cache.Dir = "/tmp/elsewhere"
	if dir, _ := cfg.CacheDir(); dir != "/tmp/elsewhere" {
		t.Errorf("explicit CacheDir = %s", dir)
	}
}
