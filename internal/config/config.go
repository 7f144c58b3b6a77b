package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seralo/chaoscope/internal/pendulum"
)

const (
	DefaultLengthA      = 180.0
	DefaultMassA        = 10.0
	DefaultLengthB      = 162.0
	DefaultMassB        = 1.0
	DefaultCount        = 5000
	DefaultDelta        = 1e-8
	DefaultDt           = 0.0001
	DefaultStepsPerTick = 166 // ~1/60s of simulated time at the default dt
	DefaultSnapshotPath = "out/last_run.json"
	DefaultListenAddr   = ":8471"
)

type Config struct {
	PendulumA    ArmConfig   `yaml:"pendulum_a"`
	PendulumB    ArmConfig   `yaml:"pendulum_b"`
	Count        int         `yaml:"count"`
	Random       bool        `yaml:"random"`
	Seed         int64       `yaml:"seed"`
	Delta        float64     `yaml:"delta"`
	Dt           float64     `yaml:"dt"`
	StepsPerTick int         `yaml:"steps_per_tick"`
	Duration     float64     `yaml:"duration"`
	Workers      int         `yaml:"workers"`
	InitState    StateConfig `yaml:"init_state"`
	SnapshotPath string      `yaml:"snapshot"`
	ListenAddr   string      `yaml:"listen"`
}

type ArmConfig struct {
	Length float64 `yaml:"length"`
	Mass   float64 `yaml:"mass"`
}

type StateConfig struct {
	ThetaA float64 `yaml:"theta_a"`
	OmegaA float64 `yaml:"omega_a"`
	ThetaB float64 `yaml:"theta_b"`
	OmegaB float64 `yaml:"omega_b"`
}

func DefaultConfig() *Config {
	return &Config{
		PendulumA:    ArmConfig{Length: DefaultLengthA, Mass: DefaultMassA},
		PendulumB:    ArmConfig{Length: DefaultLengthB, Mass: DefaultMassB},
		Count:        DefaultCount,
		Delta:        DefaultDelta,
		Dt:           DefaultDt,
		StepsPerTick: DefaultStepsPerTick,
		Duration:     30.0,
		InitState: StateConfig{
			ThetaA: 3.14159265358979,
			OmegaA: 1.5707963267949,
			ThetaB: 0.14159265358979,
			OmegaB: 0.78539816339745,
		},
		SnapshotPath: DefaultSnapshotPath,
		ListenAddr:   DefaultListenAddr,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate surfaces configuration errors before any population is built.
func (c *Config) Validate() error {
	if _, err := pendulum.NewParams(c.PendulumA.Length, c.PendulumA.Mass); err != nil {
		return fmt.Errorf("pendulum_a: %w", err)
	}
	if _, err := pendulum.NewParams(c.PendulumB.Length, c.PendulumB.Mass); err != nil {
		return fmt.Errorf("pendulum_b: %w", err)
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.StepsPerTick < 1 {
		return fmt.Errorf("steps_per_tick must be at least 1, got %d", c.StepsPerTick)
	}
	return nil
}

// BaseTrajectory returns the configured baseline initial state.
func (c *Config) BaseTrajectory() pendulum.Trajectory {
	return pendulum.Trajectory{
		A: pendulum.ArmState{Angle: c.InitState.ThetaA, Velocity: c.InitState.OmegaA},
		B: pendulum.ArmState{Angle: c.InitState.ThetaB, Velocity: c.InitState.OmegaB},
	}
}
