// Package engine applies the formula package across every row of a
// frame.Frame. Callers describe where the model inputs live with a
// Bindings value, pick an operation, and get back a frame.Transform
// that appends the output columns; everything already in the frame
// passes through untouched. A bad binding is a schema error and aborts
// the whole call, a bad row is encoded as a null output and never
// disturbs its siblings.
package engine

import (
	"fmt"

	"github.com/matthewgson/quantpolars/formula"
	"github.com/matthewgson/quantpolars/frame"
)

// TypeBinding says where the call/put variant of each row comes from:
// either one literal applied to every row, or a per-row string column
// holding "call"/"put" (case insensitive, "c"/"p" accepted).
type TypeBinding struct {
	column  string
	literal formula.OptionType
}

// TypeColumn binds the option type to a string column.
func TypeColumn(name string) TypeBinding {
	return TypeBinding{column: name}
}

// TypeLiteral binds every row to the same option type.
func TypeLiteral(typ formula.OptionType) TypeBinding {
	return TypeBinding{literal: typ}
}

// Bindings maps the models' logical parameters to column names in the
// input frame. Q is optional and defaults to a zero dividend yield
// when left empty; Sigma and MarketPrice are only consulted by the
// operations that need them.
type Bindings struct {
	S           string
	K           string
	T           string
	R           string
	Sigma       string
	Q           string
	MarketPrice string
	OptionType  TypeBinding
}

// needs declares which optional parameters an operation reads.
type needs struct {
	sigma  bool
	market bool
}

// boundRows is a Bindings resolved against a concrete frame. All
// schema checking happens in resolve; row access after that can only
// fail row-level.
type boundRows struct {
	s, k, t, r *frame.Series
	sigma      *frame.Series
	q          *frame.Series
	market     *frame.Series
	typeCol    *frame.Series
	typeLit    formula.OptionType
}

func (b Bindings) resolve(f *frame.Frame, need needs) (*boundRows, error) {
	br := &boundRows{typeLit: b.OptionType.literal}

	var err error
	if br.s, err = requireFloat(f, "S", b.S); err != nil {
		return nil, err
	}
	if br.k, err = requireFloat(f, "K", b.K); err != nil {
		return nil, err
	}
	if br.t, err = requireFloat(f, "T", b.T); err != nil {
		return nil, err
	}
	if br.r, err = requireFloat(f, "r", b.R); err != nil {
		return nil, err
	}
	if need.sigma {
		if br.sigma, err = requireFloat(f, "sigma", b.Sigma); err != nil {
			return nil, err
		}
	}
	if need.market {
		if br.market, err = requireFloat(f, "market_price", b.MarketPrice); err != nil {
			return nil, err
		}
	}
	if b.Q != "" {
		if br.q, err = f.FloatColumn(b.Q); err != nil {
			return nil, err
		}
	}

	if b.OptionType.column != "" {
		if br.typeCol, err = f.StringColumn(b.OptionType.column); err != nil {
			return nil, err
		}
	} else if !br.typeLit.Valid() {
		return nil, &frame.SchemaError{Column: "option_type", Reason: "is not bound"}
	}
	return br, nil
}

func requireFloat(f *frame.Frame, param, column string) (*frame.Series, error) {
	if column == "" {
		return nil, &frame.SchemaError{Column: param, Reason: "is not bound"}
	}
	return f.FloatColumn(column)
}

// contract assembles row i. A null in any bound cell, or an
// unparsable option type string, is a row-level invalid input.
func (br *boundRows) contract(i int) (formula.Contract, formula.OptionType, error) {
	var c formula.Contract
	var err error
	if c.S, err = cell(br.s, i); err != nil {
		return c, 0, err
	}
	if c.K, err = cell(br.k, i); err != nil {
		return c, 0, err
	}
	if c.T, err = cell(br.t, i); err != nil {
		return c, 0, err
	}
	if c.R, err = cell(br.r, i); err != nil {
		return c, 0, err
	}
	if br.sigma != nil {
		if c.Sigma, err = cell(br.sigma, i); err != nil {
			return c, 0, err
		}
	}
	if br.q != nil {
		if c.Q, err = cell(br.q, i); err != nil {
			return c, 0, err
		}
	}

	typ := br.typeLit
	if br.typeCol != nil {
		if !br.typeCol.IsValid(i) {
			return c, 0, nullCell(br.typeCol)
		}
		if typ, err = formula.ParseOptionType(br.typeCol.Str(i)); err != nil {
			return c, 0, err
		}
	}
	return c, typ, nil
}

// marketPrice reads the observed price for row i.
func (br *boundRows) marketPrice(i int) (float64, error) {
	return cell(br.market, i)
}

func cell(s *frame.Series, i int) (float64, error) {
	if !s.IsValid(i) {
		return 0, nullCell(s)
	}
	return s.Float(i), nil
}

func nullCell(s *frame.Series) error {
	return fmt.Errorf("%w: column %q is null", formula.ErrInvalidInput, s.Name())
}
