package formula

import "math"

// IVConfig tunes the implied volatility solve. The zero value is not
// usable; start from DefaultIVConfig and override fields as needed.
type IVConfig struct {
	// InitialGuess seeds the Newton iteration. Default 0.2.
	InitialGuess float64
	// Tolerance is the absolute price-error convergence criterion.
	// Default 1e-8.
	Tolerance float64
	// MaxIterations bounds each of the Newton and bisection phases.
	// Default 100.
	MaxIterations int
}

// DefaultIVConfig returns the documented solver defaults.
func DefaultIVConfig() IVConfig {
	return IVConfig{
		InitialGuess:  DefaultIVGuess,
		Tolerance:     DefaultIVTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

func (cfg IVConfig) withDefaults() IVConfig {
	if cfg.InitialGuess <= 0 {
		cfg.InitialGuess = DefaultIVGuess
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultIVTolerance
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	return cfg
}

// IVResult is the terminal state of one implied volatility solve.
type IVResult struct {
	Sigma      float64
	Iterations int
	Converged  bool
}

// ImpliedVol root-finds the volatility that reproduces marketPrice
// under the Black-Scholes forward model. The Sigma field of the
// contract is ignored.
//
// Newton-Raphson with the analytic vega as derivative converges in a
// handful of iterations for well-behaved rows. When vega is too small
// to drive a step (deep in or out of the money, short expiry) the
// solve falls back to bisection over a bounded volatility bracket,
// relying on the monotonicity of price in volatility. A market price
// outside the no-arbitrage bounds fails immediately without iterating.
func ImpliedVol(c Contract, typ OptionType, marketPrice float64, cfg IVConfig) (IVResult, error) {
	cfg = cfg.withDefaults()
	c.Sigma = cfg.InitialGuess
	if err := c.Validate(); err != nil {
		return IVResult{Sigma: math.NaN()}, err
	}
	if !typ.Valid() {
		return IVResult{Sigma: math.NaN()}, rowErrf(ErrInvalidInput, "option type not set")
	}
	if !(marketPrice >= 0) {
		return IVResult{Sigma: math.NaN()}, rowErrf(ErrInvalidInput, "market price must be non-negative, got %v", marketPrice)
	}

	lower, upper := priceBounds(c, typ)
	if marketPrice < lower-cfg.Tolerance || marketPrice > upper+cfg.Tolerance {
		return IVResult{Sigma: math.NaN()},
			rowErrf(ErrPriceBounds, "market price %v outside [%v, %v]", marketPrice, lower, upper)
	}

	sigma := cfg.InitialGuess
	for i := 1; i <= cfg.MaxIterations; i++ {
		at := c
		at.Sigma = sigma
		price, err := Price(at, typ)
		if err != nil {
			return IVResult{Sigma: math.NaN()}, err
		}
		diff := price - marketPrice
		if math.Abs(diff) < cfg.Tolerance {
			return IVResult{Sigma: sigma, Iterations: i, Converged: true}, nil
		}

		vega := Vega(c, sigma)
		if vega < kDerivativeFloor {
			return bisectIV(c, typ, marketPrice, cfg, i)
		}
		next := sigma - diff/vega
		if next <= 0 || next > kIVBracketHi {
			// Newton overshot the meaningful volatility range.
			return bisectIV(c, typ, marketPrice, cfg, i)
		}
		sigma = next
	}
	return IVResult{Sigma: math.NaN(), Iterations: cfg.MaxIterations},
		rowErrf(ErrNoConvergence, "newton exhausted %d iterations", cfg.MaxIterations)
}

// bisectIV brackets the root over [kIVBracketLo, kIVBracketHi] using
// the sign of price(sigma) - marketPrice. Price is non-decreasing in
// volatility, so a bracket with opposite signs always contains the
// root.
func bisectIV(c Contract, typ OptionType, marketPrice float64, cfg IVConfig, done int) (IVResult, error) {
	lo, hi := kIVBracketLo, kIVBracketHi
	priceAt := func(sigma float64) float64 {
		at := c
		at.Sigma = sigma
		p, _ := Price(at, typ)
		return p
	}
	fLo := priceAt(lo) - marketPrice
	fHi := priceAt(hi) - marketPrice
	if math.Abs(fLo) < cfg.Tolerance {
		return IVResult{Sigma: lo, Iterations: done, Converged: true}, nil
	}
	if math.Abs(fHi) < cfg.Tolerance {
		return IVResult{Sigma: hi, Iterations: done, Converged: true}, nil
	}
	if fLo*fHi > 0 {
		return IVResult{Sigma: math.NaN(), Iterations: done},
			rowErrf(ErrDegenerate, "no bisection bracket: f(%v)=%v, f(%v)=%v", lo, fLo, hi, fHi)
	}

	for i := 1; i <= cfg.MaxIterations; i++ {
		mid := 0.5 * (lo + hi)
		fMid := priceAt(mid) - marketPrice
		if math.Abs(fMid) < cfg.Tolerance {
			return IVResult{Sigma: mid, Iterations: done + i, Converged: true}, nil
		}
		if fMid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return IVResult{Sigma: math.NaN(), Iterations: done + cfg.MaxIterations},
		rowErrf(ErrNoConvergence, "bisection exhausted %d iterations", cfg.MaxIterations)
}

// priceBounds returns the no-arbitrage interval for the observed
// price: a call is worth at most the carry-discounted spot, a put at
// most the discounted strike, and both at least the discounted
// intrinsic forward value.
func priceBounds(c Contract, typ OptionType) (lower, upper float64) {
	spotLeg := c.S * math.Exp(-c.Q*c.T)
	strikeLeg := c.K * math.Exp(-c.R*c.T)
	if typ == OptionTypeCall {
		return math.Max(spotLeg-strikeLeg, 0), spotLeg
	}
	return math.Max(strikeLeg-spotLeg, 0), strikeLeg
}
