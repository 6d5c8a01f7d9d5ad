package formula

import "math"

// GreekResult carries the five analytic sensitivities of one contract.
// Theta follows the holding-cost sign convention: it is the annualized
// decay of the position value as expiry approaches, negative for long
// options. Vega is per unit volatility, rho per unit rate; neither is
// rescaled to percentage points.
type GreekResult struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// Greeks computes all five sensitivities from the same d1/d2
// construction the pricer uses. It keeps no state between calls.
//
// At expiry or with zero volatility the distribution collapses: every
// Greek is zero except delta, which becomes the in-the-money indicator
// (negated for puts).
func Greeks(c Contract, typ OptionType) (GreekResult, error) {
	if err := c.Validate(); err != nil {
		return GreekResult{}, err
	}
	if !typ.Valid() {
		return GreekResult{}, rowErrf(ErrInvalidInput, "option type not set")
	}
	if c.expired() {
		return degenerateGreeks(c, typ), nil
	}

	d1, d2 := c.dPlusMinus(c.Sigma)
	sqrtT := math.Sqrt(c.T)
	carry := math.Exp(-c.Q * c.T)
	discount := math.Exp(-c.R * c.T)
	pdfD1 := NormPDF(d1)

	var g GreekResult
	g.Gamma = carry * pdfD1 / (c.S * c.Sigma * sqrtT)
	g.Vega = c.S * carry * pdfD1 * sqrtT

	decay := -c.S * carry * pdfD1 * c.Sigma / (2 * sqrtT)
	switch typ {
	case OptionTypeCall:
		g.Delta = carry * NormCDF(d1)
		g.Theta = decay - c.R*c.K*discount*NormCDF(d2) + c.Q*c.S*carry*NormCDF(d1)
		g.Rho = c.K * c.T * discount * NormCDF(d2)
	default:
		g.Delta = carry * (NormCDF(d1) - 1)
		g.Theta = decay + c.R*c.K*discount*NormCDF(-d2) - c.Q*c.S*carry*NormCDF(-d1)
		g.Rho = -c.K * c.T * discount * NormCDF(-d2)
	}
	return g, nil
}

// Vega computes only the volatility sensitivity; the implied
// volatility solver uses it as the Newton derivative.
func Vega(c Contract, sigma float64) float64 {
	if c.T == 0 || sigma <= 0 {
		return 0
	}
	d1, _ := c.dPlusMinus(sigma)
	return c.S * math.Exp(-c.Q*c.T) * NormPDF(d1) * math.Sqrt(c.T)
}

func degenerateGreeks(c Contract, typ OptionType) GreekResult {
	var g GreekResult
	switch typ {
	case OptionTypeCall:
		if c.S > c.K {
			g.Delta = 1
		}
	default:
		if c.S < c.K {
			g.Delta = -1
		}
	}
	return g
}
