package rtd

// Trapezoid integrates y over x using the trapezoidal rule. The grid
// need not be uniform. With exactly two samples the result is the area
// of a single trapezoid, i.e. linear interpolation of the endpoints.
// Fewer than two samples integrate to zero.
func Trapezoid(y, x []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	sum := 0.0
	for i := 1; i < n; i++ {
		sum += 0.5 * (y[i] + y[i-1]) * (x[i] - x[i-1])
	}
	return sum
}
