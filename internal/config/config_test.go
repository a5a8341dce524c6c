package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Diameter != DefaultDiameter {
		t.Errorf("expected diameter %g, got %g", DefaultDiameter, cfg.Diameter)
	}
	if cfg.Porosity <= 0 || cfg.Porosity > 1 {
		t.Error("default porosity should be in (0,1]")
	}
	if !cfg.ClipNegative {
		t.Error("negative clipping should default on")
	}
	if !cfg.Params().HasFluidProperties() {
		t.Error("defaults should enable the Reynolds number")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero diameter", func(c *Config) { c.Diameter = 0 }, false},
		{"negative length", func(c *Config) { c.Length = -0.1 }, false},
		{"porosity above one", func(c *Config) { c.Porosity = 1.2 }, false},
		{"negative porosity", func(c *Config) { c.Porosity = -0.1 }, false},
		{"porosity at bounds", func(c *Config) { c.Porosity = 1.0 }, true},
		{"negative viscosity", func(c *Config) { c.Viscosity = -1 }, false},
		{"no fluid properties", func(c *Config) { c.ParticleDiameter = 0; c.Viscosity = 0; c.Density = 0 }, true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: expected valid, got %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reactor.yaml")

	cfg := DefaultConfig()
	cfg.Diameter = 0.025
	cfg.ClipNegative = false

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Diameter != 0.025 {
		t.Errorf("expected diameter 0.025, got %g", loaded.Diameter)
	}
	if loaded.ClipNegative {
		t.Error("clip_negative should round-trip as false")
	}
	if loaded.Length != DefaultLength {
		t.Errorf("unset fields should keep defaults, got length %g", loaded.Length)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("water-lab")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Porosity != 0.33 {
		t.Errorf("expected porosity 0.33, got %g", cfg.Porosity)
	}

	// Presets hand out copies; mutating one must not leak back.
	cfg.Porosity = 0.99
	if Presets["water-lab"].Porosity != 0.33 {
		t.Error("preset registry was mutated through GetPreset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}

func TestTracerOnlyPresetDisablesReynolds(t *testing.T) {
	cfg := GetPreset("tracer-only")
	if cfg == nil {
		t.Fatal("expected preset")
	}
	if cfg.Params().HasFluidProperties() {
		t.Error("tracer-only preset should not enable the Reynolds number")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}
