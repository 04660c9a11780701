package analysis

import (
	"math"

	"github.com/kallumq/Data-Display-site/internal/dataset"
)

// NumericThreshold is the minimum share of non-blank values that must parse
// as finite numbers for a column to be charted. The comparison is inclusive.
const NumericThreshold = 0.5

// Schema is the column layout inferred once from a full dataset.
type Schema struct {
	// Columns lists every field name in first-seen order.
	Columns []string
	// Numeric is the subset of Columns that qualifies for charting, same order.
	Numeric []string
	// Stats holds one entry per column, aligned with Columns.
	Stats []ColumnStats
}

// ColumnStats captures the counts behind the numeric decision plus summary
// statistics over the values that parsed.
type ColumnStats struct {
	Name string
	// Total counts values that are present, non-null and not empty text.
	Total int
	// NumericCount counts the Total values that convert to a finite number.
	NumericCount int
	// Missing counts records without a usable value (absent, null or "").
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Std     float64
}

// Ratio is NumericCount/Total, or 0 for a column with no values.
func (c ColumnStats) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.NumericCount) / float64(c.Total)
}

// IsNumeric applies the inclusive threshold. Columns with no values never qualify.
func (c ColumnStats) IsNumeric() bool {
	return c.Total > 0 && c.Ratio() >= NumericThreshold
}

// IsNumeric reports whether name is in the numeric column set.
func (s Schema) IsNumeric(name string) bool {
	for _, n := range s.Numeric {
		if n == name {
			return true
		}
	}
	return false
}

// Columns returns the union of field names across records in first-seen order.
func Columns(ds dataset.Dataset) []string {
	seen := make(map[string]struct{})
	cols := []string{}
	for _, rec := range ds {
		for _, k := range rec.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, k)
		}
	}
	return cols
}

// InferSchema derives the column set and the numeric column set.
func InferSchema(ds dataset.Dataset) Schema {
	cols := Columns(ds)
	s := Schema{
		Columns: cols,
		Numeric: []string{},
		Stats:   make([]ColumnStats, 0, len(cols)),
	}
	for _, col := range cols {
		st := scanColumn(ds, col)
		if st.IsNumeric() {
			s.Numeric = append(s.Numeric, col)
		}
		s.Stats = append(s.Stats, st)
	}
	return s
}

func scanColumn(ds dataset.Dataset, col string) ColumnStats {
	st := ColumnStats{Name: col}
	// Welford running mean/variance over parsed values
	var mean, m2 float64
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, rec := range ds {
		v := rec.Get(col)
		if v.Blank() {
			st.Missing++
			continue
		}
		st.Total++
		x, ok := v.Float()
		if !ok {
			continue
		}
		st.NumericCount++
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
		k := float64(st.NumericCount)
		delta := x - mean
		// x/k - mean/k stays finite where delta/k would not.
		mean += x/k - mean/k
		m2 += delta * (x - mean)
	}
	if st.NumericCount > 0 {
		st.Min, st.Max = minV, maxV
		st.Mean = finite(mean)
		if st.NumericCount > 1 {
			st.Std = finite(math.Sqrt(m2 / float64(st.NumericCount-1)))
		}
	}
	return st
}

// finite maps NaN and ±Inf to 0 so stats stay encodable.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
