package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Count != DefaultCount {
		t.Errorf("expected count %d, got %d", DefaultCount, cfg.Count)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
}

func TestValidateRejectsBadParams(t *testing.T) {
	cases := map[string]func(*Config){
		"zero length":     func(c *Config) { c.PendulumA.Length = 0 },
		"negative mass":   func(c *Config) { c.PendulumB.Mass = -1 },
		"zero count":      func(c *Config) { c.Count = 0 },
		"negative dt":     func(c *Config) { c.Dt = -0.001 },
		"zero steps/tick": func(c *Config) { c.StepsPerTick = 0 },
	}

	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Count = 123
	cfg.Seed = 99
	cfg.InitState.ThetaB = -1.25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Count != 123 || loaded.Seed != 99 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.InitState.ThetaB != -1.25 {
		t.Errorf("expected theta_b -1.25, got %v", loaded.InitState.ThetaB)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected classic preset")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("classic preset invalid: %v", err)
	}
	if math.Abs(cfg.InitState.ThetaA-math.Pi) > 1e-9 {
		t.Errorf("classic theta_a should be π, got %v", cfg.InitState.ThetaA)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestAllPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestBaseTrajectory(t *testing.T) {
	cfg := DefaultConfig()
	traj := cfg.BaseTrajectory()

	if traj.A.Angle != cfg.InitState.ThetaA || traj.B.Velocity != cfg.InitState.OmegaB {
		t.Errorf("base trajectory does not mirror init_state: %+v", traj)
	}
}
