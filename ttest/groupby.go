package ttest

import (
	"fmt"
	"strings"

	"github.com/matthewgson/quantpolars/frame"
)

// grouping partitions a frame's row indices by the values of the
// group-by columns, keeping groups in first appearance order. With no
// group-by columns there is exactly one group covering every row
// (signalled by a nil index slice).
type grouping struct {
	by     []*frame.Series
	groups []groupSlice
}

type groupSlice struct {
	firstRow int
	rows     []int
}

func groupRows(f *frame.Frame, by []string) (*grouping, error) {
	g := &grouping{}
	if len(by) == 0 {
		g.groups = []groupSlice{{rows: nil}}
		return g, nil
	}

	for _, name := range by {
		s, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		g.by = append(g.by, s)
	}

	seen := make(map[string]int)
	for i := 0; i < f.NumRows(); i++ {
		key := g.key(i)
		gi, ok := seen[key]
		if !ok {
			gi = len(g.groups)
			seen[key] = gi
			g.groups = append(g.groups, groupSlice{firstRow: i})
		}
		g.groups[gi].rows = append(g.groups[gi].rows, i)
	}
	return g, nil
}

func (g *grouping) key(row int) string {
	var b strings.Builder
	for _, s := range g.by {
		b.WriteString(cellKey(s, row))
		b.WriteByte(0)
	}
	return b.String()
}

func cellKey(s *frame.Series, i int) string {
	if !s.IsValid(i) {
		return "\x01null"
	}
	switch s.Dtype() {
	case frame.Float64:
		return fmt.Sprintf("%v", s.Float(i))
	case frame.Bool:
		return fmt.Sprintf("%t", s.Bool(i))
	default:
		return s.Str(i)
	}
}

// keyColumns rebuilds the group-by columns for the result frame, one
// row per group, carrying the source dtypes through.
func (g *grouping) keyColumns() []*frame.Series {
	cols := make([]*frame.Series, 0, len(g.by))
	n := len(g.groups)
	for _, src := range g.by {
		valid := make([]bool, n)
		for gi, grp := range g.groups {
			valid[gi] = src.IsValid(grp.firstRow)
		}
		switch src.Dtype() {
		case frame.Float64:
			vals := make([]float64, n)
			for gi, grp := range g.groups {
				if valid[gi] {
					vals[gi] = src.Float(grp.firstRow)
				}
			}
			cols = append(cols, frame.NewFloat64Nullable(src.Name(), vals, valid))
		case frame.Bool:
			vals := make([]bool, n)
			for gi, grp := range g.groups {
				if valid[gi] {
					vals[gi] = src.Bool(grp.firstRow)
				}
			}
			cols = append(cols, frame.NewBoolNullable(src.Name(), vals, valid))
		default:
			vals := make([]string, n)
			for gi, grp := range g.groups {
				if valid[gi] {
					vals[gi] = src.Str(grp.firstRow)
				}
			}
			cols = append(cols, frame.NewStringNullable(src.Name(), vals, valid))
		}
	}
	return cols
}

// dropGroups removes the groups whose index is absent from keep,
// preserving order. Used by the grouped two-sample mode, where a
// group without exactly two levels is skipped rather than failed.
func (g *grouping) dropGroups(keep map[int]bool) {
	if len(keep) == len(g.groups) {
		return
	}
	kept := g.groups[:0]
	for gi, grp := range g.groups {
		if keep[gi] {
			kept = append(kept, grp)
		}
	}
	g.groups = kept
}
