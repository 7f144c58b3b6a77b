package config

// Presets are ready-made ensembles. "classic" reproduces the reference run:
// 5000 copies of one state, arm B's angle fanned out by 1e-8 per copy.
var Presets = map[string]*Config{
	"classic": {
		PendulumA: ArmConfig{Length: 180, Mass: 10},
		PendulumB: ArmConfig{Length: 162, Mass: 1},
		Count:     5000, Delta: 1e-8,
		Dt: 0.0001, StepsPerTick: 166, Duration: 30,
		InitState: StateConfig{
			ThetaA: 3.14159265358979, OmegaA: 1.5707963267949,
			ThetaB: 0.14159265358979, OmegaB: 0.78539816339745,
		},
	},
	"spray": {
		PendulumA: ArmConfig{Length: 150, Mass: 5},
		PendulumB: ArmConfig{Length: 150, Mass: 5},
		Count:     2000, Random: true,
		Dt: 0.0001, StepsPerTick: 166, Duration: 30,
	},
	"tight": {
		PendulumA: ArmConfig{Length: 180, Mass: 10},
		PendulumB: ArmConfig{Length: 162, Mass: 1},
		Count:     500, Delta: 1e-10,
		Dt: 0.00005, StepsPerTick: 333, Duration: 60,
		InitState: StateConfig{
			ThetaA: 2.8, OmegaA: 0,
			ThetaB: -2.8, OmegaB: 0,
		},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = DefaultSnapshotPath
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
