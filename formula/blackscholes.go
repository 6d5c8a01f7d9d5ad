package formula

import "math"

// Price values a European option with the Black-Scholes closed form,
// discounting the spot leg by the dividend yield and the strike leg by
// the risk-free rate. At expiry or with zero volatility the formula is
// undefined and the intrinsic value is returned instead.
func Price(c Contract, typ OptionType) (float64, error) {
	if err := c.Validate(); err != nil {
		return math.NaN(), err
	}
	if !typ.Valid() {
		return math.NaN(), rowErrf(ErrInvalidInput, "option type not set")
	}
	if c.expired() {
		return c.Intrinsic(typ), nil
	}

	d1, d2 := c.dPlusMinus(c.Sigma)
	spotLeg := c.S * math.Exp(-c.Q*c.T)
	strikeLeg := c.K * math.Exp(-c.R*c.T)

	switch typ {
	case OptionTypeCall:
		return spotLeg*NormCDF(d1) - strikeLeg*NormCDF(d2), nil
	default:
		return strikeLeg*NormCDF(-d2) - spotLeg*NormCDF(-d1), nil
	}
}
