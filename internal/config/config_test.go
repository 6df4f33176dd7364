package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Folder != "." {
		t.Errorf("folder: expected \".\", got %q", cfg.Folder)
	}
	if cfg.NumThreads != 0 {
		t.Errorf("num_threads: expected 0, got %d", cfg.NumThreads)
	}
	if cfg.DeleteOriginals {
		t.Error("delete_originals should default to false")
	}
	if !cfg.History.Enabled {
		t.Error("history should default to enabled")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NumThreads != 0 || cfg.DeleteOriginals {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if !filepath.IsAbs(cfg.Folder) {
		t.Fatalf("expected normalized absolute folder, got %q", cfg.Folder)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for explicit missing config")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
folder = "~/music"
num_threads = 3
delete_originals = true

[logging]
level = "debug"

[history]
enabled = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := filepath.Join(home, "music"); cfg.Folder != want {
		t.Errorf("folder: expected %q, got %q", want, cfg.Folder)
	}
	if cfg.NumThreads != 3 {
		t.Errorf("num_threads: expected 3, got %d", cfg.NumThreads)
	}
	if !cfg.DeleteOriginals {
		t.Error("expected delete_originals true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level: expected debug, got %q", cfg.Logging.Level)
	}
	if cfg.History.Enabled {
		t.Error("expected history disabled")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("unset format should default to console, got %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative threads", func(c *Config) { c.NumThreads = -1 }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad keep_runs", func(c *Config) { c.History.KeepRuns = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestStatePaths(t *testing.T) {
	cfg := Default()
	cfg.History.Dir = filepath.Join(t.TempDir(), "state")

	if got := cfg.DatabasePath(); filepath.Dir(got) != cfg.History.Dir {
		t.Errorf("database path outside state dir: %q", got)
	}
	if got := cfg.LockPath(); filepath.Dir(got) != cfg.History.Dir {
		t.Errorf("lock path outside state dir: %q", got)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if _, err := os.Stat(cfg.History.Dir); err != nil {
		t.Fatalf("state dir missing: %v", err)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "num_threads") {
		t.Error("sample config missing num_threads")
	}

	if err := WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
}
