package frame

import "fmt"

// SchemaError reports a structural problem with a Frame: a referenced
// column is missing or has the wrong dtype. It aborts a whole
// transform before any row is touched, unlike row-level value errors.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: column %q %s", e.Column, e.Reason)
}

func missingColumn(name string) *SchemaError {
	return &SchemaError{Column: name, Reason: "not found"}
}

func wrongDtype(name string, want, got Dtype) *SchemaError {
	return &SchemaError{Column: name, Reason: fmt.Sprintf("has dtype %s, want %s", got, want)}
}

// Frame is an ordered set of equal-length Series with unique names.
// Like Series it is immutable; WithColumns returns a new Frame.
type Frame struct {
	cols  []*Series
	index map[string]int
	rows  int
}

// New builds a Frame from columns. All columns must have the same
// length and distinct names.
func New(cols ...*Series) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	for i, s := range cols {
		if s.Name() == "" {
			return nil, &SchemaError{Column: "", Reason: "has no name"}
		}
		if _, ok := f.index[s.Name()]; ok {
			return nil, &SchemaError{Column: s.Name(), Reason: "duplicated"}
		}
		if i == 0 {
			f.rows = s.Len()
		} else if s.Len() != f.rows {
			return nil, &SchemaError{
				Column: s.Name(),
				Reason: fmt.Sprintf("has %d rows, frame has %d", s.Len(), f.rows),
			}
		}
		f.index[s.Name()] = i
		f.cols = append(f.cols, s)
	}
	return f, nil
}

func (f *Frame) NumRows() int { return f.rows }

func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, s := range f.cols {
		names[i] = s.Name()
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column looks a column up by name.
func (f *Frame) Column(name string) (*Series, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, missingColumn(name)
	}
	return f.cols[i], nil
}

// FloatColumn looks up a column that must hold float64 values.
func (f *Frame) FloatColumn(name string) (*Series, error) {
	s, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if s.Dtype() != Float64 {
		return nil, wrongDtype(name, Float64, s.Dtype())
	}
	return s, nil
}

// StringColumn looks up a column that must hold string values.
func (f *Frame) StringColumn(name string) (*Series, error) {
	s, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if s.Dtype() != String {
		return nil, wrongDtype(name, String, s.Dtype())
	}
	return s, nil
}

// Columns returns the column slice in frame order. Callers must not
// mutate it.
func (f *Frame) Columns() []*Series { return f.cols }

// WithColumns returns a new Frame with the given columns merged in:
// a column whose name already exists replaces it in place, anything
// else is appended on the right. Existing columns pass through
// untouched. New columns must match the frame's row count, except
// into an empty frame, which adopts theirs.
func (f *Frame) WithColumns(cols ...*Series) (*Frame, error) {
	out := &Frame{
		cols:  append([]*Series(nil), f.cols...),
		index: make(map[string]int, len(f.cols)+len(cols)),
		rows:  f.rows,
	}
	for name, i := range f.index {
		out.index[name] = i
	}
	for _, s := range cols {
		if len(out.cols) == 0 {
			out.rows = s.Len()
		} else if s.Len() != out.rows {
			return nil, &SchemaError{
				Column: s.Name(),
				Reason: fmt.Sprintf("has %d rows, frame has %d", s.Len(), out.rows),
			}
		}
		if i, ok := out.index[s.Name()]; ok {
			out.cols[i] = s
			continue
		}
		out.index[s.Name()] = len(out.cols)
		out.cols = append(out.cols, s)
	}
	return out, nil
}
