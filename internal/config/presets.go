package config

import "sort"

// Presets are named parameter sets for the columns and carrier fluids
// the lab runs most often.
var Presets = map[string]*Config{
	"water-lab": {
		Diameter: 0.01680, Length: 0.1000, Porosity: 0.33,
		ParticleDiameter: 300e-6, Viscosity: 0.0010, Density: 1000.0,
		ClipNegative: true,
	},
	"gas-phase": {
		Diameter: 0.02500, Length: 0.5000, Porosity: 0.40,
		ParticleDiameter: 2e-3, Viscosity: 1.8e-5, Density: 1.2,
		ClipNegative: true,
	},
	// No fluid properties: Reynolds number stays disabled.
	"tracer-only": {
		Diameter: 0.02000, Length: 0.1000, Porosity: 0.40,
		ClipNegative: false,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
