package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/petri/config"
)

// initTestConfig installs a small fast world configuration.
func initTestConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := []byte("world:\n  width: 32\n  height: 16\nsimulation:\n  workers: 1\n")
	if err := os.WriteFile(path, cfg, 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	config.MustInit(path)
}

func TestHeadlessGameRuns(t *testing.T) {
	initTestConfig(t)

	g, err := NewGame(Options{Headless: true, Seed: 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	defer g.Unload()

	if g.Tick() != 0 {
		t.Errorf("expected tick 0 before updates, got %d", g.Tick())
	}
	if g.Alive() == 0 {
		t.Error("expected a seeded population")
	}

	for i := 0; i < 10; i++ {
		g.UpdateHeadless()
	}
	if g.Tick() != 10 {
		t.Errorf("expected tick 10, got %d", g.Tick())
	}
}

func TestStepsPerUpdate(t *testing.T) {
	initTestConfig(t)

	g, err := NewGame(Options{Headless: true, Seed: 1, StepsPerUpdate: 5})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	defer g.Unload()

	g.UpdateHeadless()
	if g.Tick() != 5 {
		t.Errorf("expected 5 ticks after one update, got %d", g.Tick())
	}
}

func TestOutputDirReceivesStats(t *testing.T) {
	initTestConfig(t)
	dir := t.TempDir()

	g, err := NewGame(Options{Headless: true, Seed: 1, OutputDir: dir, StatsWindow: 5})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	for i := 0; i < 12; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	// Config snapshot is written at startup.
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("expected config snapshot: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatalf("reading stats.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 3 { // header plus at least two windows (ticks 5 and 10)
		t.Errorf("expected at least 3 lines in stats.csv, got %d", len(lines))
	}
}

func TestParamsFromConfig(t *testing.T) {
	initTestConfig(t)
	p := paramsFromConfig(config.Cfg())

	if p.W != 32 || p.H != 16 {
		t.Errorf("expected 32x16 world, got %dx%d", p.W, p.H)
	}
	if p.Workers != 1 {
		t.Errorf("expected 1 worker, got %d", p.Workers)
	}
	// Untouched sections carry the embedded defaults through.
	if p.InitialEnergy != 500 || p.MoveCost != 2 || p.RegrowthChance != 1000 {
		t.Errorf("unexpected defaults in params: %+v", p)
	}
}
