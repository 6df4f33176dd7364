// Package testsupport holds shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"rewav/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Folder = filepath.Join(base, "music")
	cfg.History.Dir = filepath.Join(base, "state")

	if err := os.MkdirAll(cfg.Folder, 0o755); err != nil {
		t.Fatalf("mkdir folder: %v", err)
	}
	return &cfg
}
