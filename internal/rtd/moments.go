package rtd

// Moments computes the first moment τ (mean residence time) and the
// second central moment σ² (variance) of the distribution e over the
// time grid, both by trapezoidal integration on the same grid.
func Moments(times, e []float64) (tau, sigma2 float64) {
	n := len(times)
	weighted := make([]float64, n)
	for i := 0; i < n; i++ {
		weighted[i] = times[i] * e[i]
	}
	tau = Trapezoid(weighted, times)

	for i := 0; i < n; i++ {
		d := times[i] - tau
		weighted[i] = d * d * e[i]
	}
	sigma2 = Trapezoid(weighted, times)
	return tau, sigma2
}
