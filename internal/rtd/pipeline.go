package rtd

import (
	"context"
	"sync"
)

// Result collects everything computed for one run. Scalar fields whose
// formula was undefined for this run are NaN.
type Result struct {
	RunID             string
	FlowRateMlPerMin  float64
	MeanResidenceTime float64 // τ, s
	Variance          float64 // σ², s²
	AxialDispersion   float64 // D_ax, m²/s
	Peclet            float64
	SpaceTime         float64 // τ₀, s
	Reynolds          float64
	Curve             Curve
}

// Analyze runs the full pipeline for a single trace: validation,
// normalization, moment computation and the derived-quantity algebra.
func Analyze(tr Trace, p Params, opts Options) (Result, error) {
	if err := tr.Validate(); err != nil {
		return Result{}, err
	}

	e := Normalize(tr, opts)
	tau, sigma2 := Moments(tr.Times, e)
	d := ComputeDerived(sigma2, tr.FlowRateMlPerMin, p)

	return Result{
		RunID:             tr.RunID,
		FlowRateMlPerMin:  tr.FlowRateMlPerMin,
		MeanResidenceTime: tau,
		Variance:          sigma2,
		AxialDispersion:   d.AxialDispersion,
		Peclet:            d.Peclet,
		SpaceTime:         d.SpaceTime,
		Reynolds:          d.Reynolds,
		Curve: Curve{
			RunID: tr.RunID,
			Times: tr.Times,
			E:     e,
			Tau:   tau,
		},
	}, nil
}

// AnalyzeAll analyzes every trace concurrently, one goroutine per run.
// Runs share no state beyond the read-only Params, so no coordination
// is needed. The returned slices are index-aligned with traces; a
// failed run gets a *RunError and a stub Result carrying only its id,
// and does not disturb the others.
func AnalyzeAll(ctx context.Context, traces []Trace, p Params, opts Options) ([]Result, []error) {
	results := make([]Result, len(traces))
	errs := make([]error, len(traces))

	var wg sync.WaitGroup
	for i := range traces {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[idx] = Result{RunID: traces[idx].RunID}
				errs[idx] = &RunError{RunID: traces[idx].RunID, Wrapped: err}
				return
			}

			res, err := Analyze(traces[idx], p, opts)
			if err != nil {
				results[idx] = Result{RunID: traces[idx].RunID}
				errs[idx] = &RunError{RunID: traces[idx].RunID, Wrapped: err}
				return
			}
			results[idx] = res
		}(i)
	}
	wg.Wait()

	return results, errs
}
