package formula

import "math"

// BinomialPrice values an option on a Cox-Ross-Rubinstein recombining
// tree with the given number of steps. American style checks early
// exercise at every interior node. Larger step counts converge toward
// the continuous-time closed form at linear compute cost; the
// trade-off belongs to the caller and is never auto-tuned.
//
// The risk-neutral probability must land in [0,1]; a large carry
// relative to volatility at a coarse step size can push it outside,
// which is reported as a numerical degeneracy rather than silently
// priced.
func BinomialPrice(c Contract, typ OptionType, style ExerciseStyle, steps int) (float64, error) {
	if err := c.Validate(); err != nil {
		return math.NaN(), err
	}
	if !typ.Valid() {
		return math.NaN(), rowErrf(ErrInvalidInput, "option type not set")
	}
	if style != StyleEuropean && style != StyleAmerican {
		return math.NaN(), rowErrf(ErrInvalidInput, "exercise style not set")
	}
	if steps < 1 {
		return math.NaN(), rowErrf(ErrInvalidInput, "steps must be at least 1, got %d", steps)
	}
	if c.expired() {
		return c.Intrinsic(typ), nil
	}

	dt := c.T / float64(steps)
	u := math.Exp(c.Sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp((c.R-c.Q)*dt) - d) / (u - d)
	if !(p >= 0 && p <= 1) {
		return math.NaN(), rowErrf(ErrDegenerate, "risk-neutral probability %v outside [0,1]", p)
	}
	discount := math.Exp(-c.R * dt)

	// Terminal payoffs at the N+1 leaves; node j holds S*u^(2j-level).
	values := make([]float64, steps+1)
	for j := 0; j <= steps; j++ {
		node := c
		node.S = c.S * math.Pow(u, float64(2*j-steps))
		values[j] = node.Intrinsic(typ)
	}

	// Backward induction in place, one level per pass.
	for level := steps - 1; level >= 0; level-- {
		for j := 0; j <= level; j++ {
			continuation := discount * (p*values[j+1] + (1-p)*values[j])
			if style == StyleAmerican {
				node := c
				node.S = c.S * math.Pow(u, float64(2*j-level))
				continuation = math.Max(continuation, node.Intrinsic(typ))
			}
			values[j] = continuation
		}
	}
	return values[0], nil
}
