package formula

import (
	"errors"
	"testing"
)

func TestBAWCallNoDividendIsEuropean(t *testing.T) {
	c := Contract{S: 100, K: 95, T: 1, R: 0.05, Sigma: 0.25}
	european, err := Price(c, OptionTypeCall)
	if err != nil {
		t.Fatal(err)
	}
	res, err := BAWPrice(c, OptionTypeCall)
	if err != nil {
		t.Fatal(err)
	}
	assertFalse(t, res.Degraded)
	assertFloatEqual(t, european, res.Price, 0)
}

func TestBAWEarlyExercisePremium(t *testing.T) {
	contracts := []Contract{
		{S: 100, K: 100, T: 1, R: 0.05, Sigma: 0.2, Q: 0.08},
		{S: 90, K: 100, T: 0.5, R: 0.06, Sigma: 0.3, Q: 0.04},
		{S: 110, K: 100, T: 2, R: 0.04, Sigma: 0.25, Q: 0.06},
	}
	for _, c := range contracts {
		for _, typ := range []OptionType{OptionTypeCall, OptionTypePut} {
			european, err := Price(c, typ)
			if err != nil {
				t.Fatal(err)
			}
			res, err := BAWPrice(c, typ)
			if err != nil {
				t.Fatal(err)
			}
			assertFalse(t, res.Degraded)
			assertTrue(t, res.Price >= european-1e-9)
			assertTrue(t, res.Price >= c.Intrinsic(typ))
		}
	}
}

func TestBAWMatchesBinomialAmerican(t *testing.T) {
	contracts := []Contract{
		{S: 100, K: 100, T: 0.5, R: 0.06, Sigma: 0.2, Q: 0.03},
		{S: 100, K: 110, T: 1, R: 0.05, Sigma: 0.3},
		{S: 100, K: 90, T: 0.25, R: 0.04, Sigma: 0.4, Q: 0.05},
	}
	for _, c := range contracts {
		res, err := BAWPrice(c, OptionTypePut)
		if err != nil {
			t.Fatal(err)
		}
		tree, err := BinomialPrice(c, OptionTypePut, StyleAmerican, 501)
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("K=%v baw=%v tree=%v", c.K, res.Price, tree)
		assertFloatEqual(t, tree, res.Price, 0.1)
	}
}

func TestBAWDeepInTheMoneyExercisesImmediately(t *testing.T) {
	put := Contract{S: 10, K: 100, T: 1, R: 0.08, Sigma: 0.2}
	res, err := BAWPrice(put, OptionTypePut)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, 90, res.Price, 0)

	call := Contract{S: 300, K: 100, T: 1, R: 0.03, Sigma: 0.2, Q: 0.09}
	res, err = BAWPrice(call, OptionTypeCall)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, 200, res.Price, 0)
}

func TestBAWZeroRateDegrades(t *testing.T) {
	c := Contract{S: 100, K: 100, T: 1, R: 0, Sigma: 0.2}
	european, _ := Price(c, OptionTypePut)
	res, err := BAWPrice(c, OptionTypePut)
	if err != nil {
		t.Fatal(err)
	}
	assertTrue(t, res.Degraded)
	assertFloatEqual(t, european, res.Price, 0)
}

func TestBAWExpiredIsIntrinsic(t *testing.T) {
	c := Contract{S: 80, K: 100, T: 0, R: 0.05, Sigma: 0.2}
	res, err := BAWPrice(c, OptionTypePut)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, 20, res.Price, 0)
	assertFalse(t, res.Degraded)
}

func TestBAWInvalidInput(t *testing.T) {
	res, err := BAWPrice(Contract{S: 100, K: -5, T: 1, Sigma: 0.2}, OptionTypeCall)
	assertNaN(t, res.Price)
	assertTrue(t, errors.Is(err, ErrInvalidInput))
}
