package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Nil manager discards writes without error.
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Errorf("nil WriteStats: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteStats(WindowStats{WindowEndTick: 100, Alive: 42}); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}
	if err := om.WriteStats(WindowStats{WindowEndTick: 200, Alive: 40}); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatalf("reading stats.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 { // header + two records
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "window_end") || !strings.Contains(lines[0], "alive") {
		t.Errorf("expected header with column names, got %q", lines[0])
	}
	if strings.Contains(lines[1], "window_end") {
		t.Error("second record should not repeat the header")
	}
}
