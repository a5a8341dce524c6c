// Package rtd computes residence-time-distribution statistics for
// packed-bed-reactor tracer experiments.
//
// The package turns a raw (time, concentration) trace into a normalized
// exit-age distribution E(t) and the derived quantities a reactor
// engineer reads off it:
//
//   - [Trace]: one run's measured tracer concentrations
//   - [Curve]: the normalized E(t) distribution with its mean τ
//   - [Params]: reactor geometry and fluid properties
//   - [Result]: per-run scalars (τ, σ², D_ax, Pe, τ₀, Re)
//
// # Example
//
//	tr := rtd.Trace{RunID: "1", Times: t, Concentrations: c, FlowRateMlPerMin: 30}
//	res, err := rtd.Analyze(tr, rtd.Params{Diameter: 0.0168, Length: 0.1, Porosity: 0.33}, rtd.Options{ClipNegative: true})
//
// Quantities whose formula would divide by zero (zero flow, zero
// velocity, zero dispersion) come back as NaN rather than an error;
// callers render them as undefined. Structural problems with a trace
// (too few samples, non-monotonic times) are reported as errors.
//
// # Thread Safety
//
// All functions are pure: traces are never mutated and Params is
// read-only, so runs may be analyzed concurrently. [AnalyzeAll] does
// exactly that, one goroutine per run.
package rtd
