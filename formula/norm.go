package formula

import "math"

// NormPDF is the standard Gaussian density.
func NormPDF(x float64) float64 {
	return kInvSqrtPi2 * math.Exp(-0.5*x*x)
}

// NormCDF approximates the standard normal cumulative distribution
// with the Abramowitz-Stegun 26.2.17 polynomial, absolute error below
// 7.5e-8. The polynomial covers x >= 0; negative inputs go through the
// symmetry CDF(-x) = 1 - CDF(x). The closed form avoids a dependency
// on an erf primitive so it stays expressible element-wise over
// columnar batches.
func NormCDF(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if math.IsInf(x, 1) {
		return 1
	}
	if math.IsInf(x, -1) {
		return 0
	}

	const (
		b0 = 0.2316419
		b1 = 0.31938153
		b2 = -0.356563782
		b3 = 1.781477937
		b4 = -1.821255978
		b5 = 1.330274429
	)

	z := math.Abs(x)
	k := 1.0 / (1.0 + b0*z)
	poly := k * (b1 + k*(b2+k*(b3+k*(b4+k*b5))))
	w := 1.0 - NormPDF(z)*poly
	if x < 0 {
		return 1.0 - w
	}
	return w
}
