package analysis

import (
	"strings"

	"github.com/kallumq/Data-Display-site/internal/dataset"
)

// NormalizeQuery trims and lower-cases a search string.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Filter returns the records with at least one field whose text contains the
// query, case-insensitively. An empty query returns every record. Order is
// preserved and the result is never nil.
func Filter(ds dataset.Dataset, query string) []dataset.Record {
	q := NormalizeQuery(query)
	if q == "" {
		out := make([]dataset.Record, len(ds))
		copy(out, ds)
		return out
	}
	out := make([]dataset.Record, 0, len(ds))
	for _, rec := range ds {
		if matches(rec, q) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec dataset.Record, q string) bool {
	for _, k := range rec.Keys() {
		if strings.Contains(strings.ToLower(rec.Get(k).String()), q) {
			return true
		}
	}
	return false
}
