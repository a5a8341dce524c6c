package rtd

// Options selects the configurable behaviors of the pipeline.
type Options struct {
	// ClipNegative replaces concentration values below zero with zero
	// before normalization. Detector noise near the baseline commonly
	// produces small negative readings.
	ClipNegative bool
}

// Normalize converts a raw concentration trace into the exit-age
// distribution E(t) = C(t) / ∫C dt. If the total integrated signal is
// zero the distribution is degenerate and E is all-zero; downstream
// moments are then zero and quantities dividing by them come out NaN.
func Normalize(tr Trace, opts Options) []float64 {
	c := make([]float64, len(tr.Concentrations))
	copy(c, tr.Concentrations)
	if opts.ClipNegative {
		for i, v := range c {
			if v < 0 {
				c[i] = 0
			}
		}
	}

	area := Trapezoid(c, tr.Times)
	if area == 0 {
		return make([]float64, len(c))
	}

	e := make([]float64, len(c))
	for i, v := range c {
		e[i] = v / area
	}
	return e
}
