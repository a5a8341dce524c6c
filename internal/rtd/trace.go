package rtd

// Trace is one run's raw tracer measurements: concentration sampled
// over time at a constant pump flow rate. FlowRateMlPerMin is the first
// value observed for the run; later rows of the same run are not
// checked for consistency, matching how lab files are usually filled in
// (the pump column only on the first row).
type Trace struct {
	RunID            string
	Times            []float64
	Concentrations   []float64
	FlowRateMlPerMin float64
}

// Validate checks the structural invariants integration relies on:
// at least two samples, matching lengths, and strictly increasing
// non-negative timestamps.
func (t Trace) Validate() error {
	if len(t.Times) != len(t.Concentrations) {
		return ErrLengthMismatch
	}
	if len(t.Times) < 2 {
		return ErrInsufficientSamples
	}
	if t.Times[0] < 0 {
		return ErrNegativeTime
	}
	for i := 1; i < len(t.Times); i++ {
		if t.Times[i] <= t.Times[i-1] {
			return ErrNonMonotonicTime
		}
	}
	return nil
}

// Curve is a normalized exit-age distribution E(t) over the trace's
// time grid, together with its first moment τ. It carries everything
// the presentation layer needs to draw the RTD plot with a marker at
// t = τ.
type Curve struct {
	RunID string
	Times []float64
	E     []float64
	Tau   float64
}
