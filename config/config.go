// Package config provides configuration loading and access for the mesh viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/meshgrid/mesh"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer and simulation parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Sim        SimConfig        `yaml:"sim"`
	Grid       GridConfig       `yaml:"grid"`
	Visibility VisibilityConfig `yaml:"visibility"`
	Pointer    PointerConfig    `yaml:"pointer"`
	Render     RenderConfig     `yaml:"render"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimConfig holds clock settings for headless runs.
type SimConfig struct {
	DT float64 `yaml:"dt"` // seconds advanced per tick when no wall clock drives the grid
}

// GridConfig mirrors mesh.Config.
type GridConfig struct {
	Cols            int     `yaml:"cols"`
	Rows            int     `yaml:"rows"`
	Spacing         float64 `yaml:"spacing"`
	Bound           float64 `yaml:"bound"`
	Stiffness       float64 `yaml:"stiffness"`
	Iterations      int     `yaml:"iterations"`
	CollisionRadius float64 `yaml:"collision_radius"`
	Pinned          bool    `yaml:"pinned"` // anchor top and bottom rows
}

// VisibilityConfig holds the pointer falloff radii, in simulation units.
type VisibilityConfig struct {
	Inner      float64 `yaml:"inner"`
	Outer      float64 `yaml:"outer"`
	MinOpacity float64 `yaml:"min_opacity"` // floor applied when drawing, so hidden points stay faintly visible
}

// Pointer smoothing modes.
const (
	PointerLerp   = "lerp"
	PointerSpring = "spring"
)

// PointerConfig holds cursor smoothing parameters.
type PointerConfig struct {
	Mode      string  `yaml:"mode"`      // "lerp" or "spring"
	Follow    float64 `yaml:"follow"`    // lerp factor per frame toward the raw cursor
	Frequency float64 `yaml:"frequency"` // spring angular frequency
	Damping   float64 `yaml:"damping"`   // spring damping ratio
}

// RenderConfig holds drawing parameters.
type RenderConfig struct {
	PointSize     float64 `yaml:"point_size"`     // base radius in pixels
	WaveIntensity float64 `yaml:"wave_intensity"` // pulse strength, [0, 0.6]
	PulseSpeed    float64 `yaml:"pulse_speed"`
}

// TelemetryConfig holds stats and perf window settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds of sim time per stats window
	PerfWindow  int     `yaml:"perf_window"`  // ticks averaged by the perf collector
}

// DerivedConfig holds precomputed values.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
	Mesh      mesh.Config
}

// Mesh converts the grid section into a mesh.Config.
func (g GridConfig) Mesh() mesh.Config {
	return mesh.Config{
		Cols:            g.Cols,
		Rows:            g.Rows,
		Spacing:         g.Spacing,
		Bound:           g.Bound,
		Stiffness:       g.Stiffness,
		Iterations:      g.Iterations,
		CollisionRadius: g.CollisionRadius,
		Pinned:          g.Pinned,
	}
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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
// If path is empty, only embedded defaults are used. The grid section is
// validated so a bad file fails here rather than at the first tick.
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
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Grid.Mesh().Validate(); err != nil {
		return nil, fmt.Errorf("grid section: %w", err)
	}
	switch cfg.Pointer.Mode {
	case "", PointerLerp, PointerSpring:
	default:
		return nil, fmt.Errorf("pointer section: unknown mode %q", cfg.Pointer.Mode)
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.Mesh = c.Grid.Mesh()

	if c.Pointer.Mode == "" {
		c.Pointer.Mode = PointerLerp
	}
	if c.Sim.DT <= 0 {
		c.Sim.DT = 1.0 / 60.0
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
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
