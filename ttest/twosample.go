package ttest

import (
	"fmt"
	"sort"

	"github.com/matthewgson/quantpolars/frame"
)

// TwoSample compares the means of two columns with Welch's unequal
// variance t-test, per group when groupBy columns are given.
func TwoSample(f *frame.Frame, column1, column2 string, alt Alternative, groupBy ...string) (*frame.Frame, error) {
	col1, err := f.FloatColumn(column1)
	if err != nil {
		return nil, err
	}
	col2, err := f.FloatColumn(column2)
	if err != nil {
		return nil, err
	}
	g, err := groupRows(f, groupBy)
	if err != nil {
		return nil, err
	}

	pair := newPairBuilder(len(g.groups), alt)
	for gi, grp := range g.groups {
		a := newSample(dropNulls(col1, grp.rows))
		b := newSample(dropNulls(col2, grp.rows))
		pair.set(gi, a, b)
	}

	cols := append(g.keyColumns(), pair.columns()...)
	return frame.New(cols...)
}

// TwoSampleGrouped compares the two levels of groupColumn within
// valueColumn. The group column must hold exactly two distinct
// non-null values; level 1 and level 2 are its sorted values. Under
// groupBy, sub-groups violating the two-level rule are skipped rather
// than failing the call; without groupBy the violation is an error.
func TwoSampleGrouped(f *frame.Frame, valueColumn, groupColumn string, alt Alternative, groupBy ...string) (*frame.Frame, error) {
	col, err := f.FloatColumn(valueColumn)
	if err != nil {
		return nil, err
	}
	levels, err := f.Column(groupColumn)
	if err != nil {
		return nil, err
	}
	g, err := groupRows(f, groupBy)
	if err != nil {
		return nil, err
	}

	type split struct {
		lo, hi string
		a, b   sample
	}
	splits := make([]split, 0, len(g.groups))
	keep := make(map[int]bool, len(g.groups))
	for gi, grp := range g.groups {
		lo, hi, ok := twoLevels(levels, grp.rows)
		if !ok {
			if len(groupBy) == 0 {
				return nil, fmt.Errorf("column %q must have exactly 2 unique values", groupColumn)
			}
			continue
		}
		keep[gi] = true
		splits = append(splits, split{
			lo: lo,
			hi: hi,
			a:  newSample(levelValues(col, levels, grp.rows, lo)),
			b:  newSample(levelValues(col, levels, grp.rows, hi)),
		})
	}
	g.dropGroups(keep)

	n := len(splits)
	group1 := make([]string, n)
	group2 := make([]string, n)
	pair := newPairBuilder(n, alt)
	for i, sp := range splits {
		group1[i] = sp.lo
		group2[i] = sp.hi
		pair.set(i, sp.a, sp.b)
	}

	cols := g.keyColumns()
	cols = append(cols,
		frame.NewString("group1", group1),
		frame.NewString("group2", group2),
	)
	cols = append(cols, pair.columns()...)
	return frame.New(cols...)
}

// twoLevels returns the sorted pair of distinct non-null values the
// group column takes over the given rows, rendered as strings. ok is
// false unless there are exactly two.
func twoLevels(s *frame.Series, idx []int) (lo, hi string, ok bool) {
	rows := idx
	if rows == nil {
		rows = make([]int, s.Len())
		for i := range rows {
			rows[i] = i
		}
	}

	if s.Dtype() == frame.Float64 {
		seen := make(map[float64]bool)
		for _, i := range rows {
			if s.IsValid(i) {
				seen[s.Float(i)] = true
			}
		}
		if len(seen) != 2 {
			return "", "", false
		}
		vals := make([]float64, 0, 2)
		for v := range seen {
			vals = append(vals, v)
		}
		sort.Float64s(vals)
		return fmt.Sprintf("%v", vals[0]), fmt.Sprintf("%v", vals[1]), true
	}

	seen := make(map[string]bool)
	for _, i := range rows {
		if s.IsValid(i) {
			seen[cellKey(s, i)] = true
		}
	}
	if len(seen) != 2 {
		return "", "", false
	}
	vals := make([]string, 0, 2)
	for v := range seen {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals[0], vals[1], true
}

// levelValues extracts the non-null value cells whose group cell
// renders to level.
func levelValues(col, levels *frame.Series, idx []int, level string) []float64 {
	rows := idx
	if rows == nil {
		rows = make([]int, col.Len())
		for i := range rows {
			rows[i] = i
		}
	}
	var out []float64
	for _, i := range rows {
		if !levels.IsValid(i) || cellKey(levels, i) != level {
			continue
		}
		if col.IsValid(i) {
			out = append(out, col.Float(i))
		}
	}
	return out
}

// pairBuilder accumulates the two-sample result columns.
type pairBuilder struct {
	stats  *statsBuilder
	n1, n2 []float64
	mean1  []float64
	mean2  []float64
	std1   []float64
	std2   []float64
	valid  []bool
}

func newPairBuilder(n int, alt Alternative) *pairBuilder {
	return &pairBuilder{
		stats: newStatsBuilder(n, alt),
		n1:    make([]float64, n),
		n2:    make([]float64, n),
		mean1: make([]float64, n),
		mean2: make([]float64, n),
		std1:  make([]float64, n),
		std2:  make([]float64, n),
		valid: make([]bool, n),
	}
}

func (b *pairBuilder) set(i int, a, c sample) {
	b.n1[i] = float64(a.n)
	b.n2[i] = float64(c.n)
	if a.n < 2 || c.n < 2 {
		return
	}
	b.valid[i] = true
	b.mean1[i], b.mean2[i] = a.mean, c.mean
	b.std1[i], b.std2[i] = a.std, c.std
	t, df := welch(a, c)
	b.stats.set(i, t, df)
}

func (b *pairBuilder) columns() []*frame.Series {
	cols := []*frame.Series{
		frame.NewFloat64("n1", b.n1),
		frame.NewFloat64("n2", b.n2),
		frame.NewFloat64Nullable("mean1", b.mean1, b.valid),
		frame.NewFloat64Nullable("mean2", b.mean2, b.valid),
		frame.NewFloat64Nullable("std1", b.std1, b.valid),
		frame.NewFloat64Nullable("std2", b.std2, b.valid),
	}
	return append(cols, b.stats.columns()...)
}
