package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(HostKeyEnv, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	if cfg.Game.GridWidth != 40 || cfg.Game.GridHeight != 30 {
		t.Errorf("Expected 40x30 grid, got %dx%d", cfg.Game.GridWidth, cfg.Game.GridHeight)
	}
	if cfg.Game.TickInterval() != 80*time.Millisecond {
		t.Errorf("Expected 80ms tick, got %v", cfg.Game.TickInterval())
	}
	if cfg.Game.GrowthPerFood != 1 {
		t.Errorf("Expected growth of 1 per food, got %d", cfg.Game.GrowthPerFood)
	}
	if cfg.AI.Search != "heap" || cfg.AI.MinFreeSpace != 10 || cfg.AI.GrowthFactor != 1.5 {
		t.Errorf("Unexpected ai defaults %+v", cfg.AI)
	}
	if cfg.Server.Address() != "0.0.0.0:6996" {
		t.Errorf("Expected default address 0.0.0.0:6996, got %s", cfg.Server.Address())
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	t.Setenv(HostKeyEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("game:\n  grid_width: 12\nai:\n  search: scan\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.GridWidth != 12 {
		t.Errorf("Expected overridden width 12, got %d", cfg.Game.GridWidth)
	}
	if cfg.Game.GridHeight != 30 {
		t.Errorf("Expected default height 30 to survive, got %d", cfg.Game.GridHeight)
	}
	if cfg.AI.Search != "scan" || cfg.AI.GrowthFactor != 1.5 {
		t.Errorf("Unexpected ai section %+v", cfg.AI)
	}
}

func TestLoadHostKeyFromEnv(t *testing.T) {
	t.Setenv(HostKeyEnv, "/tmp/key")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.HostKeyPath != "/tmp/key" {
		t.Errorf("Expected env host key path, got %s", cfg.Server.HostKeyPath)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected missing file to fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("game: [not, a, map"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Expected malformed yaml to fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("game:\n  grid_width: 1\n  grid_height: 1\n"), 0o644)
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for a 1x1 grid, got %v", err)
	}

	noGrowth := filepath.Join(dir, "no_growth.yaml")
	os.WriteFile(noGrowth, []byte("game:\n  growth_per_food: 0\n"), 0o644)
	if _, err := Load(noGrowth); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for zero growth per food, got %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	t.Setenv(HostKeyEnv, "")
	cfg, _ := Load("")
	cfg.Bench.Games = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Bench.Games != 7 {
		t.Errorf("Expected 7 games after reload, got %d", loaded.Bench.Games)
	}
}
