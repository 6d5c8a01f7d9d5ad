package formula

import (
	"errors"
	"math"
	"testing"
)

func TestGreeksReference(t *testing.T) {
	// d1 = 0.35, d2 = 0.15 for the at-the-money contract.
	call, err := Greeks(atmContract(), OptionTypeCall)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, 0.636831, call.Delta, 1e-3)
	assertFloatEqual(t, 0.018762, call.Gamma, 1e-4)
	assertFloatEqual(t, 37.52403, call.Vega, 1e-3)
	assertFloatEqual(t, -6.41404, call.Theta, 1e-3)
	assertFloatEqual(t, 53.2325, call.Rho, 1e-3)

	put, err := Greeks(atmContract(), OptionTypePut)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, -0.363169, put.Delta, 1e-3)
	assertFloatEqual(t, call.Gamma, put.Gamma, 0)
	assertFloatEqual(t, call.Vega, put.Vega, 0)
	assertFloatEqual(t, -1.65789, put.Theta, 1e-3)
	assertFloatEqual(t, -41.8905, put.Rho, 1e-3)
}

func TestGreeksDegenerate(t *testing.T) {
	itm := Contract{S: 120, K: 100, T: 0, R: 0.05, Sigma: 0.2}
	g, err := Greeks(itm, OptionTypeCall)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, 1, g.Delta, 0)
	assertFloatEqual(t, 0, g.Gamma, 0)
	assertFloatEqual(t, 0, g.Theta, 0)
	assertFloatEqual(t, 0, g.Vega, 0)
	assertFloatEqual(t, 0, g.Rho, 0)

	g, err = Greeks(itm, OptionTypePut)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, 0, g.Delta, 0)

	otm := Contract{S: 80, K: 100, T: 1, R: 0.05, Sigma: 0}
	g, _ = Greeks(otm, OptionTypeCall)
	assertFloatEqual(t, 0, g.Delta, 0)
	g, _ = Greeks(otm, OptionTypePut)
	assertFloatEqual(t, -1, g.Delta, 0)
}

func TestGreeksInvalidInput(t *testing.T) {
	_, err := Greeks(Contract{S: 0, K: 100, T: 1, Sigma: 0.2}, OptionTypeCall)
	assertTrue(t, errors.Is(err, ErrInvalidInput))
}

func TestVegaMatchesGreeks(t *testing.T) {
	for sigma := 0.05; sigma <= 1.5; sigma += 0.05 {
		c := Contract{S: 95, K: 100, T: 0.5, R: 0.03, Sigma: sigma, Q: 0.01}
		g, err := Greeks(c, OptionTypeCall)
		if err != nil {
			t.Fatal(err)
		}
		assertFloatEqual(t, g.Vega, Vega(c, sigma), 1e-12)
		assertTrue(t, Vega(c, sigma) >= 0)
	}
	assertFloatEqual(t, 0, Vega(Contract{S: 100, K: 100, T: 0}, 0.2), 0)
}

func TestGreeksFiniteDifferenceDelta(t *testing.T) {
	c := Contract{S: 100, K: 110, T: 0.5, R: 0.02, Sigma: 0.3, Q: 0.01}
	g, err := Greeks(c, OptionTypeCall)
	if err != nil {
		t.Fatal(err)
	}
	const h = 1e-4
	up := c
	up.S += h
	down := c
	down.S -= h
	pUp, _ := Price(up, OptionTypeCall)
	pDown, _ := Price(down, OptionTypeCall)
	numeric := (pUp - pDown) / (2 * h)
	assertFloatEqual(t, numeric, g.Delta, math.Max(1e-5, 1e-4*math.Abs(g.Delta)))
}
