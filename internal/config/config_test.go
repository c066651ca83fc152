package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Camera.FOV != 75 {
		t.Errorf("expected fov 75, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 1000 {
		t.Errorf("expected clip planes 0.1..1000, got %f..%f", cfg.Camera.Near, cfg.Camera.Far)
	}
	if cfg.Camera.Distance != 250 {
		t.Errorf("expected distance 250, got %f", cfg.Camera.Distance)
	}
	if cfg.Spin != 0.005 {
		t.Errorf("expected spin 0.005, got %f", cfg.Spin)
	}
	if !cfg.Shadows {
		t.Error("shadows should be on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative fps", func(c *Config) { c.Window.FPS = -1 }},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 180 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"zero distance", func(c *Config) { c.Camera.Distance = 0 }},
		{"damping above one", func(c *Config) { c.Camera.DampingFactor = 2 }},
		{"infinite spin", func(c *Config) { c.Spin = math.Inf(1) }},
		{"nan spin", func(c *Config) { c.Spin = math.NaN() }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "molview.yaml")
	data := []byte("spin: 0.01\ncamera:\n  distance: 300\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Spin != 0.01 {
		t.Errorf("expected spin 0.01, got %f", cfg.Spin)
	}
	if cfg.Camera.Distance != 300 {
		t.Errorf("expected distance 300, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.FOV != DefaultFOV {
		t.Errorf("expected default fov to survive, got %f", cfg.Camera.FOV)
	}
}

func TestLoadOverLayersOnPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "molview.yaml")
	if err := os.WriteFile(path, []byte("theme: ocean\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("closeup")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "ocean" || cfg.Camera.Distance != 120 {
		t.Errorf("expected preset values under the file, got %+v", cfg)
	}
	if base.Theme != DefaultTheme {
		t.Error("LoadOver must not modify base")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window:\n  fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "ocean"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("closeup")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Camera.Distance != 120 {
		t.Errorf("expected distance 120, got %f", cfg.Camera.Distance)
	}

	cfg.Spin = 99
	if Presets["closeup"].Spin == 99 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if _, err := MustPreset("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := Presets[name].Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
