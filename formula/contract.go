// Package formula implements closed-form and discrete-time option
// valuation models, analytic Greeks and implied-volatility
// calibration. Every function is pure and operates on a single
// contract; batch application over columnar data lives in the engine
// package.
package formula

import (
	"fmt"
	"math"
	"strings"
)

// OptionType is a closed call/put variant.
type OptionType uint8

const (
	OptionTypeCall = OptionType(1)
	OptionTypePut  = OptionType(2)
)

func (t OptionType) String() string {
	switch t {
	case OptionTypeCall:
		return "call"
	case OptionTypePut:
		return "put"
	default:
		return fmt.Sprintf("OptionType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the two known variants.
func (t OptionType) Valid() bool {
	return t == OptionTypeCall || t == OptionTypePut
}

// ParseOptionType accepts "call"/"put" and the single-letter "c"/"p"
// forms, case insensitive.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return OptionTypeCall, nil
	case "put", "p":
		return OptionTypePut, nil
	default:
		return 0, rowErrf(ErrInvalidInput, "unknown option type %q", s)
	}
}

// ExerciseStyle selects the exercise right of a tree-priced option.
type ExerciseStyle uint8

const (
	StyleEuropean = ExerciseStyle(1)
	StyleAmerican = ExerciseStyle(2)
)

func (s ExerciseStyle) String() string {
	switch s {
	case StyleEuropean:
		return "european"
	case StyleAmerican:
		return "american"
	default:
		return fmt.Sprintf("ExerciseStyle(%d)", uint8(s))
	}
}

// Contract holds one option row. Q is the continuous dividend/carry
// yield and defaults to zero when the caller has none.
type Contract struct {
	S     float64 // spot price, > 0
	K     float64 // strike price, > 0
	T     float64 // time to expiry in years, >= 0
	R     float64 // continuously compounded risk-free rate
	Sigma float64 // annualized volatility, >= 0
	Q     float64 // continuous dividend yield
}

// Validate rejects rows no model can price. The comparisons are
// written negated so NaN inputs fail them too.
func (c Contract) Validate() error {
	if !(c.S > 0) {
		return rowErrf(ErrInvalidInput, "spot must be positive, got %v", c.S)
	}
	if !(c.K > 0) {
		return rowErrf(ErrInvalidInput, "strike must be positive, got %v", c.K)
	}
	if !(c.T >= 0) {
		return rowErrf(ErrInvalidInput, "time to expiry must be non-negative, got %v", c.T)
	}
	if !(c.Sigma >= 0) {
		return rowErrf(ErrInvalidInput, "volatility must be non-negative, got %v", c.Sigma)
	}
	if math.IsNaN(c.R) || math.IsNaN(c.Q) {
		return rowErrf(ErrInvalidInput, "rate inputs must be finite")
	}
	return nil
}

// Intrinsic is the immediate exercise value of the contract.
func (c Contract) Intrinsic(typ OptionType) float64 {
	if typ == OptionTypePut {
		return math.Max(c.K-c.S, 0)
	}
	return math.Max(c.S-c.K, 0)
}

// expired reports whether the closed form degenerates to intrinsic
// value: at expiry, or with zero volatility, the formula divides by
// zero and the payoff is deterministic.
func (c Contract) expired() bool {
	return c.T == 0 || c.Sigma == 0
}

// dPlusMinus computes d1 and d2 with continuous carry r-q at the given
// volatility. Callers guarantee T > 0 and sigma > 0.
func (c Contract) dPlusMinus(sigma float64) (d1, d2 float64) {
	factor := sigma * math.Sqrt(c.T)
	d1 = (math.Log(c.S/c.K) + (c.R-c.Q+0.5*sigma*sigma)*c.T) / factor
	d2 = d1 - factor
	return d1, d2
}
