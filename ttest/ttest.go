// Package ttest runs Welch's t-tests over frame columns: one-sample
// against a hypothesized mean, and two-sample in either a two-column
// or a group-column arrangement. Every entry point accepts optional
// group-by columns and returns one result row per group, in first
// appearance order.
package ttest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/matthewgson/quantpolars/frame"
)

// Alternative is the direction of the test's alternative hypothesis.
type Alternative uint8

const (
	TwoSided = Alternative(iota + 1)
	Greater
	Less
)

func (a Alternative) String() string {
	switch a {
	case Greater:
		return "greater"
	case Less:
		return "less"
	default:
		return "two-sided"
	}
}

// pValue converts a t-statistic into a p-value under Student's t with
// nu degrees of freedom.
func pValue(t, nu float64, alt Alternative) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}
	switch alt {
	case Greater:
		return 1 - dist.CDF(t)
	case Less:
		return dist.CDF(t)
	default:
		return 2 * (1 - dist.CDF(math.Abs(t)))
	}
}

// sample is a column's non-null values with their first two moments.
type sample struct {
	n    int
	mean float64
	std  float64
}

func newSample(values []float64) sample {
	s := sample{n: len(values)}
	if s.n == 0 {
		return s
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	s.mean = sum / float64(s.n)
	if s.n >= 2 {
		var ss float64
		for _, v := range values {
			d := v - s.mean
			ss += d * d
		}
		s.std = math.Sqrt(ss / float64(s.n-1))
	}
	return s
}

// welch computes the two-sample t-statistic and Welch-Satterthwaite
// degrees of freedom. A zero variance in either sample falls back to
// the pooled n1+n2-2 degrees of freedom.
func welch(a, b sample) (t, df float64) {
	varA := a.std * a.std
	varB := b.std * b.std
	se := math.Sqrt(varA/float64(a.n) + varB/float64(b.n))
	if se > 0 {
		t = (a.mean - b.mean) / se
	} else {
		t = math.Inf(1)
	}

	df = float64(a.n + b.n - 2)
	if varA > 0 && varB > 0 {
		num := varA/float64(a.n) + varB/float64(b.n)
		num *= num
		den := (varA / float64(a.n)) * (varA / float64(a.n)) / float64(a.n-1)
		den += (varB / float64(b.n)) * (varB / float64(b.n)) / float64(b.n-1)
		if den > 0 {
			df = num / den
		}
	}
	return t, df
}

// dropNulls extracts the non-null values of a float column at the
// given row indices (all rows when idx is nil).
func dropNulls(s *frame.Series, idx []int) []float64 {
	var out []float64
	if idx == nil {
		for i := 0; i < s.Len(); i++ {
			if s.IsValid(i) {
				out = append(out, s.Float(i))
			}
		}
		return out
	}
	for _, i := range idx {
		if s.IsValid(i) {
			out = append(out, s.Float(i))
		}
	}
	return out
}
