package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rtdlab/internal/rtd"
)

// Defaults match the reference packed-bed column this tool was built
// around: a 16.8 mm tube packed with 300 µm beads, water as the
// carrier fluid.
const (
	DefaultDiameter         = 0.01680 // m
	DefaultLength           = 0.1000  // m
	DefaultPorosity         = 0.33
	DefaultParticleDiameter = 300e-6 // m
	DefaultViscosity        = 0.0010 // Pa·s
	DefaultDensity          = 1000.0 // kg/m³
)

// Config is the full parameter set for one analysis: reactor geometry,
// optional fluid properties, and pipeline behavior flags.
type Config struct {
	Diameter         float64 `yaml:"diameter"`
	Length           float64 `yaml:"length"`
	Porosity         float64 `yaml:"porosity"`
	ParticleDiameter float64 `yaml:"particle_diameter"`
	Viscosity        float64 `yaml:"viscosity"`
	Density          float64 `yaml:"density"`
	ClipNegative     bool    `yaml:"clip_negative"`
}

func DefaultConfig() *Config {
	return &Config{
		Diameter:         DefaultDiameter,
		Length:           DefaultLength,
		Porosity:         DefaultPorosity,
		ParticleDiameter: DefaultParticleDiameter,
		Viscosity:        DefaultViscosity,
		Density:          DefaultDensity,
		ClipNegative:     true,
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

// Validate rejects parameter values the derived-quantity algebra cannot
// work with.
func (c *Config) Validate() error {
	if c.Diameter <= 0 {
		return fmt.Errorf("config: diameter must be positive, got %g", c.Diameter)
	}
	if c.Length <= 0 {
		return fmt.Errorf("config: length must be positive, got %g", c.Length)
	}
	if c.Porosity < 0 || c.Porosity > 1 {
		return fmt.Errorf("config: porosity must be in [0,1], got %g", c.Porosity)
	}
	if c.ParticleDiameter < 0 || c.Viscosity < 0 || c.Density < 0 {
		return fmt.Errorf("config: fluid properties must be non-negative")
	}
	return nil
}

// Params returns the read-only parameter set handed to the pipeline.
func (c *Config) Params() rtd.Params {
	return rtd.Params{
		Diameter:         c.Diameter,
		Length:           c.Length,
		Porosity:         c.Porosity,
		ParticleDiameter: c.ParticleDiameter,
		Viscosity:        c.Viscosity,
		Density:          c.Density,
	}
}

func (c *Config) Options() rtd.Options {
	return rtd.Options{ClipNegative: c.ClipNegative}
}
