package analysis

import (
	"fmt"
	"strings"

	"github.com/kallumq/Data-Display-site/internal/dataset"
)

// Report is a markdown-friendly summary of an inferred schema.
type Report struct {
	Name       string        `json:"name"`
	Rows       int           `json:"rows"`
	Columns    []ColumnEntry `json:"columns"`
	DateColumn string        `json:"date_column,omitempty"`
	Samples    [][]string    `json:"samples,omitempty"`
}

// ColumnEntry is one column of the report.
type ColumnEntry struct {
	Name    string  `json:"name"`
	Kind    string  `json:"kind"` // numeric|text|empty
	Total   int     `json:"total"`
	Numeric int     `json:"numeric"`
	Missing int     `json:"missing"`
	Ratio   float64 `json:"ratio"`
	Min     float64 `json:"min,omitempty"`
	Max     float64 `json:"max,omitempty"`
	Mean    float64 `json:"mean,omitempty"`
	Std     float64 `json:"std,omitempty"`
}

// NewReport builds a report for ds with up to sampleRows example rows.
func NewReport(name string, ds dataset.Dataset, s Schema, sampleRows int) *Report {
	r := &Report{Name: name, Rows: len(ds)}
	if dc, ok := DateColumn(s.Columns); ok {
		r.DateColumn = dc
	}
	for _, st := range s.Stats {
		e := ColumnEntry{
			Name:    st.Name,
			Total:   st.Total,
			Numeric: st.NumericCount,
			Missing: st.Missing,
			Ratio:   st.Ratio(),
		}
		switch {
		case st.IsNumeric():
			e.Kind = "numeric"
			e.Min, e.Max, e.Mean, e.Std = st.Min, st.Max, st.Mean, st.Std
		case st.Total == 0:
			e.Kind = "empty"
		default:
			e.Kind = "text"
		}
		r.Columns = append(r.Columns, e)
	}
	for i := 0; i < len(ds) && i < sampleRows; i++ {
		r.Samples = append(r.Samples, Cells(ds[i], s.Columns))
	}
	return r
}

// Cells renders a record as one text cell per column; missing fields are empty.
func Cells(rec dataset.Record, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = rec.Get(c).String()
	}
	return out
}

// Markdown renders the report.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n", len(r.Columns)))
	if r.DateColumn != "" {
		b.WriteString(fmt.Sprintf("Label axis: %s\n", r.DateColumn))
	} else {
		b.WriteString("Label axis: Index\n")
	}

	b.WriteString("\n[SCHEMA]\n")
	for _, c := range r.Columns {
		b.WriteString(fmt.Sprintf("- %s: %s (values %d, numeric %d, missing %d)", safeName(c.Name), c.Kind, c.Total, c.Numeric, c.Missing))
		if c.Kind == "numeric" {
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Std))
		} else if c.Total > 0 {
			b.WriteString(fmt.Sprintf(" — numeric share %.0f%%", c.Ratio*100))
		}
		b.WriteString("\n")
	}

	if len(r.Samples) > 0 {
		b.WriteString("\n[HEAD ROWS]\n| ")
		for i, c := range r.Columns {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(safeVal(safeName(c.Name)))
		}
		b.WriteString(" |\n|")
		for range r.Columns {
			b.WriteString(" --- |")
		}
		b.WriteString("\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i, val := range row {
				if i > 0 {
					b.WriteString(" | ")
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
