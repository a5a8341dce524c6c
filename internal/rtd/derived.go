package rtd

import "math"

// Params holds reactor geometry and fluid properties, supplied once per
// analysis and shared read-only across runs. ParticleDiameter,
// Viscosity and Density are optional; the Reynolds number is only
// computed when all three are present.
type Params struct {
	Diameter         float64 // tube inner diameter, m
	Length           float64 // packed bed length, m
	Porosity         float64 // bed void fraction, 0–1
	ParticleDiameter float64 // packing particle diameter, m
	Viscosity        float64 // fluid dynamic viscosity, Pa·s
	Density          float64 // fluid density, kg/m³
}

// CrossSection returns the tube cross-sectional area π(D/2)².
func (p Params) CrossSection() float64 {
	r := p.Diameter / 2
	return math.Pi * r * r
}

// HasFluidProperties reports whether the optional particle/fluid
// parameters needed for the Reynolds number were all supplied.
func (p Params) HasFluidProperties() bool {
	return p.ParticleDiameter > 0 && p.Viscosity > 0 && p.Density > 0
}

// Derived holds the quantities computed from the moments and the
// reactor parameters. Any field whose formula divides by zero is NaN.
type Derived struct {
	VolumetricFlow      float64 // Q, m³/s
	SuperficialVelocity float64 // v, m/s
	AxialDispersion     float64 // D_ax, m²/s
	Peclet              float64 // Pe, dimensionless
	SpaceTime           float64 // τ₀, s
	Reynolds            float64 // Re, dimensionless; NaN unless fluid properties supplied
}

// ComputeDerived evaluates the dispersion-model algebra for one run.
// flowMlPerMin is converted to m³/s before use. Every division guards
// its denominator and yields NaN instead of panicking, so a zero-flow
// run still produces a row.
func ComputeDerived(sigma2, flowMlPerMin float64, p Params) Derived {
	a := p.CrossSection()
	q := flowMlPerMin / (1e6 * 60)

	d := Derived{
		VolumetricFlow:      q,
		SuperficialVelocity: math.NaN(),
		AxialDispersion:     math.NaN(),
		Peclet:              math.NaN(),
		SpaceTime:           math.NaN(),
		Reynolds:            math.NaN(),
	}

	if a == 0 {
		return d
	}
	v := q / a
	d.SuperficialVelocity = v

	if v != 0 {
		d.AxialDispersion = (sigma2 * v * v * v) / 2
	}
	if d.AxialDispersion != 0 && !math.IsNaN(d.AxialDispersion) {
		d.Peclet = (p.Length * v) / d.AxialDispersion
	}
	if q != 0 {
		d.SpaceTime = (p.Porosity * a * p.Length) / q
	}
	if p.HasFluidProperties() {
		d.Reynolds = (p.ParticleDiameter * v * p.Density) / ((1 - p.Porosity) * p.Viscosity)
	}
	return d
}
