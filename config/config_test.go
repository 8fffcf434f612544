package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.Width != 256 || cfg.World.Height != 128 {
		t.Errorf("expected default world 256x128, got %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.Seed != 12345 {
		t.Errorf("expected default seed 12345, got %d", cfg.World.Seed)
	}
	if cfg.Energy.MoveCost != 2 || cfg.Energy.ExistenceCost != 1 {
		t.Errorf("unexpected energy defaults: %+v", cfg.Energy)
	}
	if cfg.Regrowth.Chance != 1000 || cfg.Regrowth.Amount != 10 {
		t.Errorf("unexpected regrowth defaults: %+v", cfg.Regrowth)
	}
}

func TestLoadOverridesMergeWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := []byte("world:\n  width: 64\n  height: 32\n")
	if err := os.WriteFile(path, override, 0644); err != nil {
		t.Fatalf("writing override: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.Width != 64 || cfg.World.Height != 32 {
		t.Errorf("expected overridden world 64x32, got %dx%d", cfg.World.Width, cfg.World.Height)
	}
	// Untouched sections keep their defaults.
	if cfg.World.InitialEnergy != 500 {
		t.Errorf("expected default initial energy 500, got %d", cfg.World.InitialEnergy)
	}
	if cfg.Screen.TargetFPS != 60 {
		t.Errorf("expected default target fps 60, got %d", cfg.Screen.TargetFPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.World.Seed = 999

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if loaded.World.Seed != 999 {
		t.Errorf("expected seed 999 after roundtrip, got %d", loaded.World.Seed)
	}
}
