package logging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func fileLogger(t *testing.T, format string) (*slog.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := New(Options{Level: "debug", Format: format, OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return logger, path
}

func TestConsoleHandlerLineShape(t *testing.T) {
	logger, path := fileLogger(t, "console")

	NewComponentLogger(logger, "batch").Info("converting",
		String(FieldFile, "/music/a.mp3"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimRight(string(data), "\n")
	if strings.Count(line, "\n") != 0 {
		t.Fatalf("expected a single line, got %q", line)
	}
	if !strings.Contains(line, "INFO batch: converting") {
		t.Errorf("missing level/component/message: %q", line)
	}
	if !strings.Contains(line, "file=/music/a.mp3") {
		t.Errorf("missing attr: %q", line)
	}
}

func TestConsoleHandlerConcurrentWritersKeepLinesIntact(t *testing.T) {
	logger, path := fileLogger(t, "console")

	const writers = 16
	const perWriter = 50

	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				logger.Info(fmt.Sprintf("report w%d i%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != writers*perWriter {
		t.Fatalf("expected %d lines, got %d", writers*perWriter, len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "INFO report w") {
			t.Fatalf("corrupted line: %q", line)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	logger, path := fileLogger(t, "json")

	logger.Warn("history unavailable", String("db", "/tmp/history.db"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("not json: %v (%q)", err, data)
	}
	if record["msg"] != "history unavailable" {
		t.Errorf("unexpected msg: %v", record["msg"])
	}
	if record["db"] != "/tmp/history.db" {
		t.Errorf("unexpected db attr: %v", record["db"])
	}
}

func TestUnsupportedFormatFails(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := New(Options{Level: "warn", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "dropped") {
		t.Error("info line should have been filtered")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("warn line missing")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(nil, slog.LevelError) {
		t.Fatal("nop logger should be disabled at every level")
	}
}
