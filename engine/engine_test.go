package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewgson/quantpolars/formula"
	"github.com/matthewgson/quantpolars/frame"
)

func chain(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.NewFloat64("spot", []float64{100, 100, 100, 100}),
		frame.NewFloat64("strike", []float64{90, 100, 110, 120}),
		frame.NewFloat64("expiry", []float64{1, 1, 0.5, 0.25}),
		frame.NewFloat64("rate", []float64{0.05, 0.05, 0.05, 0.05}),
		frame.NewFloat64("vol", []float64{0.2, 0.2, 0.3, 0.4}),
		frame.NewString("side", []string{"call", "put", "CALL", "p"}),
	)
	require.NoError(t, err)
	return f
}

func bindings() Bindings {
	return Bindings{
		S:          "spot",
		K:          "strike",
		T:          "expiry",
		R:          "rate",
		Sigma:      "vol",
		OptionType: TypeColumn("side"),
	}
}

func TestPriceOp(t *testing.T) {
	f := chain(t)
	out, err := Price(bindings())(f)
	require.NoError(t, err)
	assert.Equal(t, f.NumCols()+1, out.NumCols())
	assert.Equal(t, f.NumRows(), out.NumRows())

	s, err := out.FloatColumn("price")
	require.NoError(t, err)
	for i := 0; i < out.NumRows(); i++ {
		assert.True(t, s.IsValid(i))
		assert.Greater(t, s.Float(i), 0.0)
	}

	// Row 0 against the scalar model.
	want, err := formula.Price(
		formula.Contract{S: 100, K: 90, T: 1, R: 0.05, Sigma: 0.2},
		formula.OptionTypeCall,
	)
	require.NoError(t, err)
	assert.InDelta(t, want, s.Float(0), 1e-12)
}

func TestPriceLiteralType(t *testing.T) {
	f := chain(t)
	b := bindings()
	b.OptionType = TypeLiteral(formula.OptionTypePut)
	out, err := Price(b)(f)
	require.NoError(t, err)

	s, _ := out.FloatColumn("price")
	want, _ := formula.Price(
		formula.Contract{S: 100, K: 90, T: 1, R: 0.05, Sigma: 0.2},
		formula.OptionTypePut,
	)
	assert.InDelta(t, want, s.Float(0), 1e-12)
}

func TestBadRowsAreIsolated(t *testing.T) {
	f, err := frame.New(
		frame.NewFloat64("spot", []float64{100, -5, 100, 100}),
		frame.NewFloat64("strike", []float64{100, 100, 100, 100}),
		frame.NewFloat64("expiry", []float64{1, 1, 1, 1}),
		frame.NewFloat64("rate", []float64{0.05, 0.05, 0.05, 0.05}),
		frame.NewFloat64Nullable("vol", []float64{0.2, 0.2, 0, 0.2}, []bool{true, true, false, true}),
		frame.NewString("side", []string{"call", "call", "call", "frog"}),
	)
	require.NoError(t, err)

	out, err := Price(bindings(), WithReasons())(f)
	require.NoError(t, err)

	s, err := out.FloatColumn("price")
	require.NoError(t, err)
	assert.True(t, s.IsValid(0))
	assert.False(t, s.IsValid(1), "negative spot")
	assert.False(t, s.IsValid(2), "null vol")
	assert.False(t, s.IsValid(3), "unparsable option type")
	assert.True(t, math.IsNaN(s.Float(1)))

	reason, err := out.StringColumn("price_reason")
	require.NoError(t, err)
	assert.False(t, reason.IsValid(0))
	assert.Equal(t, ReasonInvalidInput, reason.Str(1))
	assert.Equal(t, ReasonInvalidInput, reason.Str(2))
	assert.Equal(t, ReasonInvalidInput, reason.Str(3))
}

func TestSchemaErrorsAbortWholeCall(t *testing.T) {
	f := chain(t)

	t.Run("missing column", func(t *testing.T) {
		b := bindings()
		b.K = "nope"
		_, err := Price(b)(f)
		var se *frame.SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "nope", se.Column)
	})

	t.Run("wrong dtype", func(t *testing.T) {
		b := bindings()
		b.S = "side"
		_, err := Price(b)(f)
		var se *frame.SchemaError
		assert.ErrorAs(t, err, &se)
	})

	t.Run("unbound required parameter", func(t *testing.T) {
		b := bindings()
		b.Sigma = ""
		_, err := Price(b)(f)
		var se *frame.SchemaError
		assert.ErrorAs(t, err, &se)
	})

	t.Run("unbound option type", func(t *testing.T) {
		b := bindings()
		b.OptionType = TypeBinding{}
		_, err := Price(b)(f)
		var se *frame.SchemaError
		assert.ErrorAs(t, err, &se)
	})
}

func TestGreeksOp(t *testing.T) {
	f := chain(t)
	out, err := Greeks(bindings())(f)
	require.NoError(t, err)
	for _, name := range []string{"delta", "gamma", "theta", "vega", "rho"} {
		s, err := out.FloatColumn(name)
		require.NoError(t, err)
		assert.True(t, s.IsValid(0))
	}

	delta, _ := out.FloatColumn("delta")
	assert.Greater(t, delta.Float(0), 0.0, "call delta positive")
	assert.Less(t, delta.Float(1), 0.0, "put delta negative")
}

func TestBinomialOp(t *testing.T) {
	f := chain(t)
	euro, err := Price(bindings(), WithOutputName("bs"))(f)
	require.NoError(t, err)
	out, err := BinomialPrice(bindings(), 500, formula.StyleEuropean)(euro)
	require.NoError(t, err)

	bs, _ := out.FloatColumn("bs")
	tree, _ := out.FloatColumn("price")
	for i := 0; i < out.NumRows(); i++ {
		assert.InDelta(t, bs.Float(i), tree.Float(i), 5e-2)
	}

	// steps <= 0 selects the package default.
	_, err = BinomialPrice(bindings(), 0, formula.StyleAmerican)(f)
	assert.NoError(t, err)
}

func TestBAWOp(t *testing.T) {
	f, err := frame.New(
		frame.NewFloat64("spot", []float64{100, 100}),
		frame.NewFloat64("strike", []float64{100, 100}),
		frame.NewFloat64("expiry", []float64{1, 1}),
		frame.NewFloat64("rate", []float64{0.05, 0}),
		frame.NewFloat64("vol", []float64{0.2, 0.2}),
		frame.NewFloat64("yield", []float64{0.03, 0}),
		frame.NewString("side", []string{"put", "put"}),
	)
	require.NoError(t, err)
	b := bindings()
	b.Q = "yield"

	out, err := BAWPrice(b)(f)
	require.NoError(t, err)

	price, err := out.FloatColumn("price")
	require.NoError(t, err)
	degraded, err := out.Column("baw_degraded")
	require.NoError(t, err)
	assert.Equal(t, frame.Bool, degraded.Dtype())

	assert.True(t, price.IsValid(0))
	assert.False(t, degraded.Bool(0))
	// Zero rate degrades to the European value, flagged not nulled.
	assert.True(t, price.IsValid(1))
	assert.True(t, degraded.Bool(1))
}

func TestImpliedVolOp(t *testing.T) {
	f := chain(t)
	priced, err := Price(bindings())(f)
	require.NoError(t, err)

	b := bindings()
	b.Sigma = ""
	b.MarketPrice = "price"
	out, err := ImpliedVol(b, formula.IVConfig{})(priced)
	require.NoError(t, err)

	iv, err := out.FloatColumn("implied_sigma")
	require.NoError(t, err)
	converged, err := out.Column("iv_converged")
	require.NoError(t, err)
	vol, _ := f.FloatColumn("vol")
	for i := 0; i < out.NumRows(); i++ {
		require.True(t, iv.IsValid(i))
		assert.True(t, converged.Bool(i))
		assert.InDelta(t, vol.Float(i), iv.Float(i), 1e-4)
	}
}

func TestImpliedVolBoundsRow(t *testing.T) {
	f, err := frame.New(
		frame.NewFloat64("spot", []float64{100, 100}),
		frame.NewFloat64("strike", []float64{100, 100}),
		frame.NewFloat64("expiry", []float64{1, 1}),
		frame.NewFloat64("rate", []float64{0.05, 0.05}),
		frame.NewFloat64("observed", []float64{10.45, 150}),
		frame.NewString("side", []string{"call", "call"}),
	)
	require.NoError(t, err)

	b := Bindings{
		S: "spot", K: "strike", T: "expiry", R: "rate",
		MarketPrice: "observed",
		OptionType:  TypeColumn("side"),
	}
	out, err := ImpliedVol(b, formula.IVConfig{}, WithReasons())(f)
	require.NoError(t, err)

	iv, _ := out.FloatColumn("implied_sigma")
	assert.True(t, iv.IsValid(0))
	assert.False(t, iv.IsValid(1))

	reason, err := out.StringColumn("implied_sigma_reason")
	require.NoError(t, err)
	assert.Equal(t, ReasonPriceBounds, reason.Str(1))
}

func TestLazyPipeline(t *testing.T) {
	f := chain(t)
	lz := f.Lazy().Pipe(
		Price(bindings()),
		Greeks(bindings()),
	)
	// Source untouched before Collect.
	assert.False(t, f.HasColumn("price"))

	out, err := lz.Collect()
	require.NoError(t, err)
	assert.True(t, out.HasColumn("price"))
	assert.True(t, out.HasColumn("delta"))
	assert.False(t, f.HasColumn("price"))

	again, err := lz.Collect()
	require.NoError(t, err)
	a, _ := out.FloatColumn("price")
	b, _ := again.FloatColumn("price")
	assert.Equal(t, a.Float(3), b.Float(3))
}

func TestParallelismMatchesSerial(t *testing.T) {
	n := 1000
	spot := make([]float64, n)
	strike := make([]float64, n)
	expiry := make([]float64, n)
	rate := make([]float64, n)
	vol := make([]float64, n)
	for i := 0; i < n; i++ {
		spot[i] = 80 + float64(i%41)
		strike[i] = 100
		expiry[i] = 0.1 + float64(i%10)*0.2
		rate[i] = 0.03
		vol[i] = 0.1 + float64(i%20)*0.05
	}
	f, err := frame.New(
		frame.NewFloat64("spot", spot),
		frame.NewFloat64("strike", strike),
		frame.NewFloat64("expiry", expiry),
		frame.NewFloat64("rate", rate),
		frame.NewFloat64("vol", vol),
	)
	require.NoError(t, err)

	b := Bindings{
		S: "spot", K: "strike", T: "expiry", R: "rate", Sigma: "vol",
		OptionType: TypeLiteral(formula.OptionTypeCall),
	}
	serial, err := Price(b, WithParallelism(1))(f)
	require.NoError(t, err)
	parallel, err := Price(b, WithParallelism(8))(f)
	require.NoError(t, err)

	a, _ := serial.FloatColumn("price")
	p, _ := parallel.FloatColumn("price")
	for i := 0; i < n; i++ {
		assert.Equal(t, a.Float(i), p.Float(i), "row %d", i)
	}
}
