package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUnknownFlagPrintsUsageAndDoesNoWork(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := executeRoot(t, "--bogus")
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.HasPrefix(out, "usage: rewav") {
		t.Fatalf("expected usage text, got %q", out)
	}
	if lines := strings.Count(strings.TrimRight(usageText, "\n"), "\n") + 1; lines != 2 {
		t.Fatalf("usage text should be two lines, has %d", lines)
	}

	// No filesystem side effects: the state directory was never created.
	if _, err := os.Stat(filepath.Join(home, ".local", "share", "rewav")); !os.IsNotExist(err) {
		t.Fatalf("expected no state directory, stat err: %v", err)
	}
}

func TestNonIntegerThreadsRejected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := executeRoot(t, "--num-threads", "abc")
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(out, "usage: rewav") {
		t.Fatalf("expected usage text, got %q", out)
	}
}

func TestMissingFlagValueRejected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := executeRoot(t, "--folder"); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestNegativeThreadsRejected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := executeRoot(t, "-n", "-2")
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(out, "usage: rewav") {
		t.Fatalf("expected usage text, got %q", out)
	}
}

func TestPositionalArgumentsRejected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := executeRoot(t, "stray"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
