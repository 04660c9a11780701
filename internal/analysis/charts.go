package analysis

import (
	"strconv"
	"strings"

	"github.com/kallumq/Data-Display-site/internal/dataset"
)

// ChartPoint is one labelled sample. A nil Value is a gap: renderers must
// break the line there rather than plot zero.
type ChartPoint struct {
	Label string   `json:"label" yaml:"label"`
	Value *float64 `json:"value" yaml:"value"`
}

// ChartSpec describes one line chart for a numeric column.
type ChartSpec struct {
	Column string `json:"column" yaml:"column"`
	// DateColumn names the column labels were taken from; empty means labels
	// are 1-based row positions.
	DateColumn string       `json:"date_column,omitempty" yaml:"date_column,omitempty"`
	Points     []ChartPoint `json:"points" yaml:"points"`
}

// Title is the chart heading.
func (c ChartSpec) Title() string { return c.Column }

// DateAxis reports whether labels come from a date column.
func (c ChartSpec) DateAxis() bool { return c.DateColumn != "" }

// XAxisTitle is the date column name, or "Index" for positional labels.
func (c ChartSpec) XAxisTitle() string {
	if c.DateColumn != "" {
		return c.DateColumn
	}
	return "Index"
}

// Labels returns the label sequence.
func (c ChartSpec) Labels() []string {
	out := make([]string, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Label
	}
	return out
}

// Values returns the value sequence; absent points are nil.
func (c ChartSpec) Values() []*float64 {
	out := make([]*float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Value
	}
	return out
}

// DateColumn returns the first column whose name contains "date" in any case.
func DateColumn(columns []string) (string, bool) {
	for _, c := range columns {
		if strings.Contains(strings.ToLower(c), "date") {
			return c, true
		}
	}
	return "", false
}

// BuildCharts derives one ChartSpec per numeric column, in numeric column
// order. No specs are produced for an empty view or an empty numeric set.
func BuildCharts(rows []dataset.Record, numeric, columns []string) []ChartSpec {
	if len(rows) == 0 || len(numeric) == 0 {
		return []ChartSpec{}
	}
	dateCol, hasDate := DateColumn(columns)
	labels := make([]string, len(rows))
	for i, rec := range rows {
		if hasDate {
			labels[i] = rec.Get(dateCol).String()
		} else {
			labels[i] = strconv.Itoa(i + 1)
		}
	}

	specs := make([]ChartSpec, 0, len(numeric))
	for _, col := range numeric {
		spec := ChartSpec{Column: col, DateColumn: dateCol, Points: make([]ChartPoint, len(rows))}
		for i, rec := range rows {
			spec.Points[i].Label = labels[i]
			if x, ok := rec.Get(col).Float(); ok {
				spec.Points[i].Value = &x
			}
		}
		specs = append(specs, spec)
	}
	return specs
}
