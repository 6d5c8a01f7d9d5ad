package ttest

import (
	"math"

	"github.com/matthewgson/quantpolars/frame"
)

// OneSample tests whether the mean of column differs from mu, per
// group when groupBy columns are given. Groups with fewer than two
// usable observations produce a row of null statistics.
func OneSample(f *frame.Frame, column string, mu float64, alt Alternative, groupBy ...string) (*frame.Frame, error) {
	col, err := f.FloatColumn(column)
	if err != nil {
		return nil, err
	}
	g, err := groupRows(f, groupBy)
	if err != nil {
		return nil, err
	}

	n := len(g.groups)
	out := newStatsBuilder(n, alt)
	counts := make([]float64, n)
	means := make([]float64, n)
	stds := make([]float64, n)
	momentsValid := make([]bool, n)

	for gi, grp := range g.groups {
		s := newSample(dropNulls(col, grp.rows))
		counts[gi] = float64(s.n)
		if s.n < 2 {
			continue
		}
		momentsValid[gi] = true
		means[gi] = s.mean
		stds[gi] = s.std

		se := s.std / math.Sqrt(float64(s.n))
		t := math.Inf(1)
		if se > 0 {
			t = (s.mean - mu) / se
		}
		out.set(gi, t, float64(s.n-1))
	}

	cols := g.keyColumns()
	cols = append(cols,
		frame.NewFloat64("n", counts),
		frame.NewFloat64Nullable("mean", means, momentsValid),
		frame.NewFloat64Nullable("std", stds, momentsValid),
	)
	cols = append(cols, out.columns()...)
	return frame.New(cols...)
}

// statsBuilder accumulates the shared tail of every result frame:
// t_statistic, df, p_value, alternative, significant_at_0.05.
type statsBuilder struct {
	alt   Alternative
	t     []float64
	df    []float64
	p     []float64
	sig   []bool
	valid []bool
}

func newStatsBuilder(n int, alt Alternative) *statsBuilder {
	return &statsBuilder{
		alt:   alt,
		t:     make([]float64, n),
		df:    make([]float64, n),
		p:     make([]float64, n),
		sig:   make([]bool, n),
		valid: make([]bool, n),
	}
}

func (b *statsBuilder) set(i int, t, df float64) {
	b.valid[i] = true
	b.t[i] = t
	b.df[i] = df
	b.p[i] = pValue(t, df, b.alt)
	b.sig[i] = b.p[i] < 0.05
}

func (b *statsBuilder) columns() []*frame.Series {
	alts := make([]string, len(b.t))
	for i := range alts {
		alts[i] = b.alt.String()
	}
	return []*frame.Series{
		frame.NewFloat64Nullable("t_statistic", b.t, b.valid),
		frame.NewFloat64Nullable("df", b.df, b.valid),
		frame.NewFloat64Nullable("p_value", b.p, b.valid),
		frame.NewString("alternative", alts),
		frame.NewBoolNullable("significant_at_0.05", b.sig, b.valid),
	}
}
