package formula

import (
	"errors"
	"fmt"
)

// Row-level failure classes. Rows that trip one of these are priced as
// null by the batch engine; they never abort sibling rows.
var (
	// ErrInvalidInput marks a contract no model can price, such as a
	// non-positive spot or strike.
	ErrInvalidInput = errors.New("invalid contract input")

	// ErrDegenerate marks a numerically degenerate configuration, such
	// as a risk-neutral probability outside [0,1] or a vanished vega
	// with no usable bisection bracket.
	ErrDegenerate = errors.New("numerical degeneracy")

	// ErrNoConvergence marks an iterative solve that exhausted its
	// iteration budget before meeting tolerance.
	ErrNoConvergence = errors.New("no convergence within iteration budget")

	// ErrPriceBounds marks an observed price outside the model's
	// no-arbitrage bounds; no iteration is attempted for such rows.
	ErrPriceBounds = errors.New("price outside no-arbitrage bounds")
)

func rowErrf(class error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, class)...)
}
