package describe

import (
	"fmt"
	"strings"

	"github.com/matthewgson/quantpolars/frame"
)

// Render formats a frame as a plain-text table, one line per row,
// columns padded to their widest cell. Null cells print as "-". It is
// meant for Summarize output but accepts any frame.
func Render(f *frame.Frame) string {
	cols := f.Columns()
	if len(cols) == 0 {
		return ""
	}

	grid := make([][]string, f.NumRows()+1)
	grid[0] = f.Names()
	for i := 0; i < f.NumRows(); i++ {
		row := make([]string, len(cols))
		for j, s := range cols {
			row[j] = renderCell(s, i)
		}
		grid[i+1] = row
	}

	widths := make([]int, len(cols))
	for _, row := range grid {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCell(s *frame.Series, i int) string {
	if !s.IsValid(i) {
		return "-"
	}
	switch s.Dtype() {
	case frame.Float64:
		return fmt.Sprintf("%g", s.Float(i))
	case frame.Bool:
		return fmt.Sprintf("%t", s.Bool(i))
	default:
		return s.Str(i)
	}
}
