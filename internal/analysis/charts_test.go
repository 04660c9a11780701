package analysis

import (
	"reflect"
	"testing"

	"github.com/kallumq/Data-Display-site/internal/dataset"
)

func TestEndToEndDateLabels(t *testing.T) {
	ds := dataset.Dataset{
		rec(f("date", text("2024-01-01")), f("temp", text("10"))),
		rec(f("date", text("2024-01-02")), f("temp", text("x"))),
	}
	s := InferSchema(ds)
	if !reflect.DeepEqual(s.Columns, []string{"date", "temp"}) {
		t.Fatalf("columns = %v", s.Columns)
	}
	if !reflect.DeepEqual(s.Numeric, []string{"temp"}) {
		t.Fatalf("numeric = %v", s.Numeric)
	}
	specs := BuildCharts(Filter(ds, ""), s.Numeric, s.Columns)
	if len(specs) != 1 {
		t.Fatalf("specs = %d, want 1", len(specs))
	}
	sp := specs[0]
	if sp.Column != "temp" || !sp.DateAxis() || sp.XAxisTitle() != "date" {
		t.Fatalf("unexpected spec header: %+v", sp)
	}
	if !reflect.DeepEqual(sp.Labels(), []string{"2024-01-01", "2024-01-02"}) {
		t.Fatalf("labels = %v", sp.Labels())
	}
	vals := sp.Values()
	if vals[0] == nil || *vals[0] != 10 || vals[1] != nil {
		t.Fatalf("values = %v", vals)
	}
}

func TestBuildChartsPositionalLabelsAndGaps(t *testing.T) {
	rows := []dataset.Record{
		rec(f("a", num(1)), f("b", num(5))),
		rec(f("a", null())),
		rec(f("a", text("3")), f("b", text("")), f("note", text("y"))),
	}
	columns := []string{"a", "b", "note"}
	specs := BuildCharts(rows, []string{"b", "a"}, columns)
	if len(specs) != 2 || specs[0].Column != "b" || specs[1].Column != "a" {
		t.Fatalf("spec order wrong: %+v", specs)
	}
	for _, sp := range specs {
		if len(sp.Points) != len(rows) {
			t.Fatalf("%s: %d points, want %d", sp.Column, len(sp.Points), len(rows))
		}
		if sp.DateAxis() || sp.XAxisTitle() != "Index" {
			t.Fatalf("%s: expected positional axis", sp.Column)
		}
		if !reflect.DeepEqual(sp.Labels(), []string{"1", "2", "3"}) {
			t.Fatalf("%s: labels = %v", sp.Column, sp.Labels())
		}
	}
	b := specs[0].Values()
	if b[0] == nil || *b[0] != 5 || b[1] != nil || b[2] != nil {
		t.Fatalf("b values = %v", b)
	}
	a := specs[1].Values()
	if a[0] == nil || a[1] != nil || a[2] == nil || *a[2] != 3 {
		t.Fatalf("a values = %v", a)
	}
}

func TestDateColumnCaseInsensitive(t *testing.T) {
	col, ok := DateColumn([]string{"id", "UpdateDate", "date"})
	if !ok || col != "UpdateDate" {
		t.Fatalf("got %q, %v", col, ok)
	}
	if _, ok := DateColumn([]string{"id", "when"}); ok {
		t.Fatal("expected no date column")
	}
}

func TestBuildChartsEmpty(t *testing.T) {
	if got := BuildCharts(nil, []string{"a"}, []string{"a"}); got == nil || len(got) != 0 {
		t.Fatalf("empty rows: %v", got)
	}
	rows := []dataset.Record{rec(f("a", num(1)))}
	if got := BuildCharts(rows, nil, []string{"a"}); len(got) != 0 {
		t.Fatalf("no numeric columns: %v", got)
	}
}

func TestDateColumnMatchesSubstring(t *testing.T) {
	col, ok := DateColumn([]string{"id", "LastUpdated", "date"})
	if !ok || col != "LastUpdated" {
		t.Fatalf("DateColumn = %q, %v; want LastUpdated", col, ok)
	}
	rows := []dataset.Record{rec(f("id", num(1)), f("LastUpdated", text("mon")))}
	specs := BuildCharts(rows, []string{"id"}, []string{"id", "LastUpdated"})
	if len(specs) != 1 || !specs[0].DateAxis() || specs[0].XAxisTitle() != "LastUpdated" {
		t.Fatalf("specs = %+v", specs)
	}
	if specs[0].Labels()[0] != "mon" {
		t.Fatalf("labels = %v", specs[0].Labels())
	}
	if _, ok := DateColumn([]string{"a", "note"}); ok {
		t.Fatal("no column contains date")
	}
}
