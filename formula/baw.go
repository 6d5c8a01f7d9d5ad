package formula

import "math"

// BAWResult is the outcome of the Barone-Adesi-Whaley approximation.
// Degraded is set when the critical-price solve did not converge and
// the value fell back to the European price with a zero early-exercise
// correction; the row is an approximation of documented lower quality,
// not an error.
type BAWResult struct {
	Price    float64
	Degraded bool
}

// BAWPrice values an American option with the Barone-Adesi-Whaley
// quadratic approximation. The European Black-Scholes price is the
// baseline; a correction term parameterized by the critical exercise
// boundary S* is added on top. S* solves the smooth-pasting condition
// by Newton iteration seeded with the Haug starting values.
//
// A call on a non-dividend-paying underlying (q <= 0) is never
// exercised early and returns the European price directly.
func BAWPrice(c Contract, typ OptionType) (BAWResult, error) {
	if err := c.Validate(); err != nil {
		return BAWResult{Price: math.NaN()}, err
	}
	if !typ.Valid() {
		return BAWResult{Price: math.NaN()}, rowErrf(ErrInvalidInput, "option type not set")
	}
	if c.expired() {
		return BAWResult{Price: c.Intrinsic(typ)}, nil
	}

	european, err := Price(c, typ)
	if err != nil {
		return BAWResult{Price: math.NaN()}, err
	}
	if typ == OptionTypeCall && c.Q <= 0 {
		return BAWResult{Price: european}, nil
	}

	// The characteristic-exponent equation divides by 1-e^{-rT}; at
	// r <= 0 the quadratic approximation is undefined, so report the
	// European value as a degraded answer instead of iterating.
	kappa := 1 - math.Exp(-c.R*c.T)
	if kappa <= kBAWTolerance {
		return BAWResult{Price: european, Degraded: true}, nil
	}

	if typ == OptionTypeCall {
		return bawCall(c, european, kappa)
	}
	return bawPut(c, european, kappa)
}

func bawCall(c Contract, european, kappa float64) (BAWResult, error) {
	b := c.R - c.Q
	sigma2 := c.Sigma * c.Sigma
	m := 2 * c.R / sigma2
	n := 2 * b / sigma2
	sqrtT := math.Sqrt(c.T)
	ebrt := math.Exp((b - c.R) * c.T)
	q2 := 0.5 * (-(n - 1) + math.Sqrt((n-1)*(n-1)+4*m/kappa))

	// Haug seed: boundary for the perpetual option, pulled toward the
	// strike for finite expiry.
	q2Inf := 0.5 * (-(n - 1) + math.Sqrt((n-1)*(n-1)+4*m))
	sInf := c.K / (1 - 1/q2Inf)
	h2 := -(b*c.T + 2*c.Sigma*sqrtT) * c.K / (sInf - c.K)
	si := c.K + (sInf-c.K)*(1-math.Exp(h2))

	converged := false
	for i := 0; i < DefaultMaxIterations; i++ {
		if !(si > 0) {
			break
		}
		at := c
		at.S = si
		d1, _ := at.dPlusMinus(c.Sigma)
		euroAt, _ := Price(at, OptionTypeCall)

		lhs := si - c.K
		rhs := euroAt + (1-ebrt*NormCDF(d1))*si/q2
		if math.Abs(lhs-rhs)/c.K < kBAWTolerance {
			converged = true
			break
		}
		slope := ebrt*NormCDF(d1)*(1-1/q2) + (1-ebrt*NormPDF(d1)/(c.Sigma*sqrtT))/q2
		si = (c.K + rhs - slope*si) / (1 - slope)
	}
	if !converged || !(si > 0) {
		return BAWResult{Price: european, Degraded: true}, nil
	}

	if c.S >= si {
		return BAWResult{Price: c.S - c.K}, nil
	}
	at := c
	at.S = si
	d1, _ := at.dPlusMinus(c.Sigma)
	a2 := (si / q2) * (1 - ebrt*NormCDF(d1))
	return BAWResult{Price: european + a2*math.Pow(c.S/si, q2)}, nil
}

func bawPut(c Contract, european, kappa float64) (BAWResult, error) {
	b := c.R - c.Q
	sigma2 := c.Sigma * c.Sigma
	m := 2 * c.R / sigma2
	n := 2 * b / sigma2
	sqrtT := math.Sqrt(c.T)
	ebrt := math.Exp((b - c.R) * c.T)
	q1 := 0.5 * (-(n - 1) - math.Sqrt((n-1)*(n-1)+4*m/kappa))

	q1Inf := 0.5 * (-(n - 1) - math.Sqrt((n-1)*(n-1)+4*m))
	sInf := c.K / (1 - 1/q1Inf)
	h1 := (b*c.T - 2*c.Sigma*sqrtT) * c.K / (c.K - sInf)
	si := sInf + (c.K-sInf)*math.Exp(h1)

	converged := false
	for i := 0; i < DefaultMaxIterations; i++ {
		if !(si > 0) {
			break
		}
		at := c
		at.S = si
		d1, _ := at.dPlusMinus(c.Sigma)
		euroAt, _ := Price(at, OptionTypePut)

		lhs := c.K - si
		rhs := euroAt - (1-ebrt*NormCDF(-d1))*si/q1
		if math.Abs(lhs-rhs)/c.K < kBAWTolerance {
			converged = true
			break
		}
		slope := -ebrt*NormCDF(-d1)*(1-1/q1) - (1+ebrt*NormPDF(d1)/(c.Sigma*sqrtT))/q1
		si = (c.K - rhs + slope*si) / (1 + slope)
	}
	if !converged || !(si > 0) {
		return BAWResult{Price: european, Degraded: true}, nil
	}

	if c.S <= si {
		return BAWResult{Price: c.K - c.S}, nil
	}
	at := c
	at.S = si
	d1, _ := at.dPlusMinus(c.Sigma)
	a1 := -(si / q1) * (1 - ebrt*NormCDF(-d1))
	return BAWResult{Price: european + a1*math.Pow(c.S/si, q1)}, nil
}
