// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Energy     EnergyConfig     `yaml:"energy"`
	Regrowth   RegrowthConfig   `yaml:"regrowth"`
	Simulation SimulationConfig `yaml:"simulation"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ScreenConfig holds display settings for the graphical host.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds grid dimensions and initial seeding parameters.
type WorldConfig struct {
	Width          int   `yaml:"width"`
	Height         int   `yaml:"height"`
	Seed           int64 `yaml:"seed"`
	InitialEnergy  int32 `yaml:"initial_energy"`
	SpawnThreshold int   `yaml:"spawn_threshold"` // spawn roll byte must exceed this
	OrganicRange   int32 `yaml:"organic_range"`   // initial organic in [0, range)
}

// EnergyConfig holds the per-tick energy economics.
type EnergyConfig struct {
	ExistenceCost int32 `yaml:"existence_cost"`
	MoveCost      int32 `yaml:"move_cost"`
	PhotoGain     int32 `yaml:"photo_gain"`
	EatMax        int32 `yaml:"eat_max"`
	CorpseOrganic int32 `yaml:"corpse_organic"`
}

// RegrowthConfig holds ambient organic regrowth parameters.
type RegrowthConfig struct {
	Chance int   `yaml:"chance"` // 1-in-N per botless cell per tick
	Amount int32 `yaml:"amount"`
}

// SimulationConfig holds tick scheduling parameters.
type SimulationConfig struct {
	Workers        int `yaml:"workers"` // 0 = hardware parallelism, 1 = deterministic
	MaxSteps       int `yaml:"max_steps"`
	StepsPerUpdate int `yaml:"steps_per_update"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file, typically as a snapshot
// next to an experiment's CSV output.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
