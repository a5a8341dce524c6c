package rtd

import "errors"

// Domain errors for trace analysis.
var (
	// ErrInsufficientSamples indicates a trace with fewer than two samples,
	// which cannot be integrated.
	ErrInsufficientSamples = errors.New("rtd: trace needs at least two samples")

	// ErrLengthMismatch indicates times and concentrations of different length.
	ErrLengthMismatch = errors.New("rtd: times and concentrations differ in length")

	// ErrNonMonotonicTime indicates timestamps that are not strictly
	// increasing; trapezoidal integration over such a grid is meaningless.
	ErrNonMonotonicTime = errors.New("rtd: times must be strictly increasing")

	// ErrNegativeTime indicates a timestamp before the injection instant.
	ErrNegativeTime = errors.New("rtd: times must be non-negative")
)

// RunError wraps an error with the run it belongs to, so a single bad
// run can be reported without aborting the rest of the analysis.
type RunError struct {
	RunID   string
	Wrapped error
}

func (e *RunError) Error() string {
	return "run " + e.RunID + ": " + e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
