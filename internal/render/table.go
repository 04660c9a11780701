package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table prints the filtered view as an aligned text table. Each SetRows call
// reprints the header followed by the rows.
type Table struct {
	w io.Writer
	// MaxCellWidth truncates long cells; 0 disables truncation.
	MaxCellWidth int
	header       []string
}

// NewTable returns a Table writing to w.
func NewTable(w io.Writer, maxCellWidth int) *Table {
	return &Table{w: w, MaxCellWidth: maxCellWidth}
}

// SetHeader records the column names used by subsequent SetRows calls.
func (t *Table) SetHeader(columns []string) {
	t.header = append([]string(nil), columns...)
}

// SetRows prints the table.
func (t *Table) SetRows(rows [][]string) {
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	t.writeLine(tw, t.header)
	rule := make([]string, len(t.header))
	for i, h := range t.header {
		rule[i] = strings.Repeat("-", max(3, len([]rune(t.cell(h)))))
	}
	t.writeLine(tw, rule)
	for _, row := range rows {
		t.writeLine(tw, row)
	}
	_ = tw.Flush()
	fmt.Fprintf(t.w, "(%d rows)\n", len(rows))
}

func (t *Table) writeLine(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, t.cell(c))
	}
	io.WriteString(w, "\n")
}

// cell escapes control characters that would break the layout.
func (t *Table) cell(s string) string {
	s = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(s)
	if t.MaxCellWidth > 0 {
		r := []rune(s)
		if len(r) > t.MaxCellWidth {
			if t.MaxCellWidth <= 3 {
				return string(r[:t.MaxCellWidth])
			}
			return string(r[:t.MaxCellWidth-3]) + "..."
		}
	}
	return s
}
