// Package describe computes per-column summary statistics over a
// frame.Frame: observation counts, missing share, moments, a fixed
// percentile ladder and distinct-value counts, one output row per
// input column.
package describe

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/matthewgson/quantpolars/frame"
)

// percentiles is the fixed ladder reported for numeric columns.
var percentiles = []float64{0.01, 0.05, 0.25, 0.50, 0.75, 0.95, 0.99}

var percentileNames = []string{"p1", "p5", "p25", "p50", "p75", "p95", "p99"}

const (
	typeNumeric     = "numeric"
	typeCategorical = "categorical"
)

// Summarize builds the summary frame. Each input column becomes one
// row with columns variable, type, nobs, pct_missing, mean, sd, min,
// max, p1..p99 and n_unique; string and bool columns are categorical
// and carry null moments. Null cells and NaNs are dropped before any
// statistic. Categorical rows sort before numeric ones, original
// column order preserved within each group.
func Summarize(f *frame.Frame) (*frame.Frame, error) {
	var rows []columnSummary
	for _, s := range f.Columns() {
		if s.Dtype() == frame.Float64 {
			continue
		}
		rows = append(rows, summarizeCategorical(s))
	}
	for _, s := range f.Columns() {
		if s.Dtype() != frame.Float64 {
			continue
		}
		rows = append(rows, summarizeNumeric(s))
	}

	n := len(rows)
	variable := make([]string, n)
	colType := make([]string, n)
	nobs := make([]float64, n)
	pctMissing := make([]float64, n)
	mean := make([]float64, n)
	sd := make([]float64, n)
	min := make([]float64, n)
	max := make([]float64, n)
	quantiles := make([][]float64, len(percentiles))
	for i := range quantiles {
		quantiles[i] = make([]float64, n)
	}
	nUnique := make([]float64, n)
	numericValid := make([]bool, n)
	sdValid := make([]bool, n)

	for i, r := range rows {
		variable[i] = r.variable
		colType[i] = r.colType
		nobs[i] = float64(r.nobs)
		pctMissing[i] = r.pctMissing
		nUnique[i] = float64(r.nUnique)
		if r.colType != typeNumeric || r.values == 0 {
			continue
		}
		numericValid[i] = true
		mean[i] = r.mean
		min[i] = r.min
		max[i] = r.max
		for j := range percentiles {
			quantiles[j][i] = r.quantiles[j]
		}
		if r.values >= 2 {
			sd[i] = r.sd
			sdValid[i] = true
		}
	}

	cols := []*frame.Series{
		frame.NewString("variable", variable),
		frame.NewString("type", colType),
		frame.NewFloat64("nobs", nobs),
		frame.NewFloat64("pct_missing", pctMissing),
		frame.NewFloat64Nullable("mean", mean, numericValid),
		frame.NewFloat64Nullable("sd", sd, sdValid),
		frame.NewFloat64Nullable("min", min, numericValid),
		frame.NewFloat64Nullable("max", max, numericValid),
	}
	for j, name := range percentileNames {
		cols = append(cols, frame.NewFloat64Nullable(name, quantiles[j], numericValid))
	}
	cols = append(cols, frame.NewFloat64("n_unique", nUnique))
	return frame.New(cols...)
}

type columnSummary struct {
	variable   string
	colType    string
	nobs       int // non-null cells
	values     int // cells surviving the NaN drop too
	pctMissing float64
	nUnique    int
	mean       float64
	sd         float64
	min        float64
	max        float64
	quantiles  []float64
}

func summarizeNumeric(s *frame.Series) columnSummary {
	out := columnSummary{variable: s.Name(), colType: typeNumeric}

	values := make([]float64, 0, s.Len())
	unique := make(map[uint64]struct{}, s.Len())
	for i := 0; i < s.Len(); i++ {
		if !s.IsValid(i) {
			continue
		}
		out.nobs++
		v := s.Float(i)
		unique[math.Float64bits(v)] = struct{}{}
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	out.values = len(values)
	out.nUnique = len(unique)
	out.pctMissing = missingShare(out.nobs, s.Len())
	if len(values) == 0 {
		return out
	}

	out.mean = stat.Mean(values, nil)
	if len(values) >= 2 {
		out.sd = stat.StdDev(values, nil)
	}
	sort.Float64s(values)
	out.min = values[0]
	out.max = values[len(values)-1]
	out.quantiles = make([]float64, len(percentiles))
	for j, p := range percentiles {
		out.quantiles[j] = nearestQuantile(values, p)
	}
	return out
}

func summarizeCategorical(s *frame.Series) columnSummary {
	out := columnSummary{variable: s.Name(), colType: typeCategorical}

	uniqueStr := make(map[string]struct{})
	uniqueBool := make(map[bool]struct{})
	for i := 0; i < s.Len(); i++ {
		if !s.IsValid(i) {
			continue
		}
		out.nobs++
		if s.Dtype() == frame.Bool {
			uniqueBool[s.Bool(i)] = struct{}{}
		} else {
			uniqueStr[s.Str(i)] = struct{}{}
		}
	}
	out.nUnique = len(uniqueStr) + len(uniqueBool)
	out.pctMissing = missingShare(out.nobs, s.Len())
	return out
}

// missingShare is the null fraction rounded to four decimals, matching
// the report's display precision.
func missingShare(nobs, total int) float64 {
	if total == 0 {
		return 0
	}
	share := float64(total-nobs) / float64(total)
	return math.Round(share*1e4) / 1e4
}

// nearestQuantile picks the sorted element closest to rank p*(n-1),
// ties rounding up.
func nearestQuantile(sorted []float64, p float64) float64 {
	idx := int(p*float64(len(sorted)-1) + 0.5)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
