// Package frame is a small columnar dataset: typed Series grouped into
// a Frame, transformed by pure Frame-to-Frame functions. It carries
// just enough structure for batch valuation — three dtypes, a validity
// mask, and a deferred pipeline builder — and is not a general
// dataframe library.
package frame

import "fmt"

// Dtype is the closed set of column element types.
type Dtype uint8

const (
	Float64 = Dtype(1)
	String  = Dtype(2)
	Bool    = Dtype(3)
)

func (d Dtype) String() string {
	switch d {
	case Float64:
		return "float64"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("Dtype(%d)", uint8(d))
	}
}

// Series is one named, typed column. Values with a false validity bit
// are null; a nil mask means every value is valid. A Series is
// immutable once constructed.
type Series struct {
	name  string
	dtype Dtype

	floats  []float64
	strings []string
	bools   []bool
	valid   []bool
}

// NewFloat64 builds a fully valid float column.
func NewFloat64(name string, values []float64) *Series {
	return &Series{name: name, dtype: Float64, floats: values}
}

// NewFloat64Nullable builds a float column with a validity mask. The
// mask must be nil or the same length as values.
func NewFloat64Nullable(name string, values []float64, valid []bool) *Series {
	return &Series{name: name, dtype: Float64, floats: values, valid: valid}
}

// NewString builds a fully valid string column.
func NewString(name string, values []string) *Series {
	return &Series{name: name, dtype: String, strings: values}
}

// NewStringNullable builds a string column with a validity mask.
func NewStringNullable(name string, values []string, valid []bool) *Series {
	return &Series{name: name, dtype: String, strings: values, valid: valid}
}

// NewBool builds a fully valid bool column.
func NewBool(name string, values []bool) *Series {
	return &Series{name: name, dtype: Bool, bools: values}
}

// NewBoolNullable builds a bool column with a validity mask.
func NewBoolNullable(name string, values []bool, valid []bool) *Series {
	return &Series{name: name, dtype: Bool, bools: values, valid: valid}
}

func (s *Series) Name() string { return s.name }

func (s *Series) Dtype() Dtype { return s.dtype }

func (s *Series) Len() int {
	switch s.dtype {
	case Float64:
		return len(s.floats)
	case String:
		return len(s.strings)
	case Bool:
		return len(s.bools)
	default:
		return 0
	}
}

// IsValid reports whether row i holds a non-null value.
func (s *Series) IsValid(i int) bool {
	return s.valid == nil || s.valid[i]
}

// Float returns the value at row i. The column must be Float64; the
// value is meaningless when IsValid(i) is false.
func (s *Series) Float(i int) float64 { return s.floats[i] }

// Str returns the value at row i of a String column.
func (s *Series) Str(i int) string { return s.strings[i] }

// Bool returns the value at row i of a Bool column.
func (s *Series) Bool(i int) bool { return s.bools[i] }

// Rename returns a copy of s sharing the backing data under a new
// name.
func (s *Series) Rename(name string) *Series {
	out := *s
	out.name = name
	return &out
}
