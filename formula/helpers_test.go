package formula

import (
	"math"
	"testing"
)

func assertFloatEqual(t *testing.T, want, got, tolerance float64) {
	t.Helper()
	if math.Abs(want-got) > tolerance {
		t.Errorf("not equal, want: %v, got: %v", want, got)
	}
}

func assertTrue(t *testing.T, x bool) {
	t.Helper()
	if !x {
		t.Errorf("should be true")
	}
}

func assertFalse(t *testing.T, x bool) {
	t.Helper()
	if x {
		t.Errorf("should be false")
	}
}

func assertNaN(t *testing.T, x float64) {
	t.Helper()
	if !math.IsNaN(x) {
		t.Errorf("should be NaN, got: %v", x)
	}
}

// The at-the-money reference contract used across the pricing tests:
// closed-form call value 10.450584, put value 5.573526.
func atmContract() Contract {
	return Contract{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.2}
}
