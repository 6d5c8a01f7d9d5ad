package formula

import "math"

var (
	kInvSqrtPi2 = 1.0 / math.Sqrt(2*math.Pi)
)

const (
	// DefaultBinomialSteps is the tree depth used when the caller does
	// not choose one. Odd so the tree has a layer straddling the strike.
	DefaultBinomialSteps = 201

	// DefaultIVGuess seeds the Newton-Raphson implied volatility solve.
	DefaultIVGuess = 0.2

	// DefaultIVTolerance is the absolute price-error tolerance for the
	// implied volatility solve.
	DefaultIVTolerance = 1e-8

	// DefaultMaxIterations bounds Newton and bisection loops.
	DefaultMaxIterations = 100

	// Bisection bracket for the implied volatility fallback.
	kIVBracketLo = 1e-6
	kIVBracketHi = 5.0

	// Vega below this cannot drive a Newton step.
	kDerivativeFloor = 1e-10

	// Relative tolerance on the BAW smooth-pasting residual.
	kBAWTolerance = 1e-6
)
