package engine

import (
	"math"

	"github.com/matthewgson/quantpolars/formula"
	"github.com/matthewgson/quantpolars/frame"
)

// Price appends a Black-Scholes European price column (default name
// "price").
func Price(b Bindings, opts ...Option) frame.Transform {
	o := buildOptions(opts)
	return func(f *frame.Frame) (*frame.Frame, error) {
		br, err := b.resolve(f, needs{sigma: true})
		if err != nil {
			return nil, err
		}
		n := f.NumRows()
		out := make([]float64, n)
		valid := make([]bool, n)
		name := o.name("price")

		bt := batch{
			op:   "price",
			opts: o,
			eval: func(i int) error {
				c, typ, err := br.contract(i)
				if err != nil {
					out[i] = math.NaN()
					return err
				}
				price, err := formula.Price(c, typ)
				out[i] = price
				if err != nil {
					return err
				}
				valid[i] = true
				return nil
			},
			outputs: func() []*frame.Series {
				return []*frame.Series{frame.NewFloat64Nullable(name, out, valid)}
			},
		}
		if o.reasons {
			bt.reason = name + "_reason"
		}
		return bt.run(f)
	}
}

// Greeks appends the five sensitivity columns delta, gamma, theta,
// vega and rho.
func Greeks(b Bindings, opts ...Option) frame.Transform {
	o := buildOptions(opts)
	return func(f *frame.Frame) (*frame.Frame, error) {
		br, err := b.resolve(f, needs{sigma: true})
		if err != nil {
			return nil, err
		}
		n := f.NumRows()
		delta := make([]float64, n)
		gamma := make([]float64, n)
		theta := make([]float64, n)
		vega := make([]float64, n)
		rho := make([]float64, n)
		valid := make([]bool, n)

		bt := batch{
			op:   "greeks",
			opts: o,
			eval: func(i int) error {
				c, typ, err := br.contract(i)
				if err == nil {
					var g formula.GreekResult
					if g, err = formula.Greeks(c, typ); err == nil {
						delta[i], gamma[i], theta[i] = g.Delta, g.Gamma, g.Theta
						vega[i], rho[i] = g.Vega, g.Rho
						valid[i] = true
						return nil
					}
				}
				nan := math.NaN()
				delta[i], gamma[i], theta[i], vega[i], rho[i] = nan, nan, nan, nan, nan
				return err
			},
			outputs: func() []*frame.Series {
				return []*frame.Series{
					frame.NewFloat64Nullable("delta", delta, valid),
					frame.NewFloat64Nullable("gamma", gamma, valid),
					frame.NewFloat64Nullable("theta", theta, valid),
					frame.NewFloat64Nullable("vega", vega, valid),
					frame.NewFloat64Nullable("rho", rho, valid),
				}
			},
		}
		if o.reasons {
			bt.reason = "greeks_reason"
		}
		return bt.run(f)
	}
}

// BinomialPrice appends a CRR tree price column (default name
// "price"). steps <= 0 selects formula.DefaultBinomialSteps.
func BinomialPrice(b Bindings, steps int, style formula.ExerciseStyle, opts ...Option) frame.Transform {
	o := buildOptions(opts)
	if steps <= 0 {
		steps = formula.DefaultBinomialSteps
	}
	return func(f *frame.Frame) (*frame.Frame, error) {
		br, err := b.resolve(f, needs{sigma: true})
		if err != nil {
			return nil, err
		}
		n := f.NumRows()
		out := make([]float64, n)
		valid := make([]bool, n)
		name := o.name("price")

		bt := batch{
			op:   "binomial_price",
			opts: o,
			eval: func(i int) error {
				c, typ, err := br.contract(i)
				if err != nil {
					out[i] = math.NaN()
					return err
				}
				price, err := formula.BinomialPrice(c, typ, style, steps)
				out[i] = price
				if err != nil {
					return err
				}
				valid[i] = true
				return nil
			},
			outputs: func() []*frame.Series {
				return []*frame.Series{frame.NewFloat64Nullable(name, out, valid)}
			},
		}
		if o.reasons {
			bt.reason = name + "_reason"
		}
		return bt.run(f)
	}
}

// BAWPrice appends the Barone-Adesi-Whaley American price (default
// name "price") plus a bool column flagging the rows whose
// critical-price solve degraded to the plain European value.
func BAWPrice(b Bindings, opts ...Option) frame.Transform {
	o := buildOptions(opts)
	return func(f *frame.Frame) (*frame.Frame, error) {
		br, err := b.resolve(f, needs{sigma: true})
		if err != nil {
			return nil, err
		}
		n := f.NumRows()
		out := make([]float64, n)
		degraded := make([]bool, n)
		valid := make([]bool, n)
		name := o.name("price")
		degradedName := "baw_degraded"
		if o.outName != "" {
			degradedName = o.outName + "_degraded"
		}

		bt := batch{
			op:   "baw_price",
			opts: o,
			eval: func(i int) error {
				c, typ, err := br.contract(i)
				if err != nil {
					out[i] = math.NaN()
					return err
				}
				res, err := formula.BAWPrice(c, typ)
				out[i] = res.Price
				if err != nil {
					return err
				}
				degraded[i] = res.Degraded
				valid[i] = true
				return nil
			},
			outputs: func() []*frame.Series {
				return []*frame.Series{
					frame.NewFloat64Nullable(name, out, valid),
					frame.NewBoolNullable(degradedName, degraded, valid),
				}
			},
		}
		if o.reasons {
			bt.reason = name + "_reason"
		}
		return bt.run(f)
	}
}

// ImpliedVol appends the calibrated volatility (default name
// "implied_sigma") plus a bool convergence flag ("iv_converged").
// A zero-valued cfg selects the documented solver defaults.
func ImpliedVol(b Bindings, cfg formula.IVConfig, opts ...Option) frame.Transform {
	o := buildOptions(opts)
	return func(f *frame.Frame) (*frame.Frame, error) {
		br, err := b.resolve(f, needs{market: true})
		if err != nil {
			return nil, err
		}
		n := f.NumRows()
		out := make([]float64, n)
		converged := make([]bool, n)
		valid := make([]bool, n)
		name := o.name("implied_sigma")
		convergedName := "iv_converged"
		if o.outName != "" {
			convergedName = o.outName + "_converged"
		}

		bt := batch{
			op:   "implied_vol",
			opts: o,
			eval: func(i int) error {
				c, typ, err := br.contract(i)
				if err != nil {
					out[i] = math.NaN()
					return err
				}
				market, err := br.marketPrice(i)
				if err != nil {
					out[i] = math.NaN()
					return err
				}
				res, err := formula.ImpliedVol(c, typ, market, cfg)
				out[i] = res.Sigma
				if err != nil {
					return err
				}
				converged[i] = res.Converged
				valid[i] = true
				return nil
			},
			outputs: func() []*frame.Series {
				return []*frame.Series{
					frame.NewFloat64Nullable(name, out, valid),
					frame.NewBoolNullable(convergedName, converged, valid),
				}
			},
		}
		if o.reasons {
			bt.reason = name + "_reason"
		}
		return bt.run(f)
	}
}
