package dataset

import (
	"math"
	"testing"
)

func TestValueFloat(t *testing.T) {
	cases := []struct {
		name string
		in   Value
		want float64
		ok   bool
	}{
		{"number", Number(2.5), 2.5, true},
		{"text decimal", Text("3.14"), 3.14, true},
		{"text negative", Text("-2"), -2, true},
		{"text padded", Text(" 7 "), 7, true},
		{"text exponent", Text("1e3"), 1000, true},
		{"empty text", Text(""), 0, false},
		{"whitespace text", Text("   "), 0, false},
		{"word", Text("x"), 0, false},
		{"infinity text", Text("Inf"), 0, false},
		{"nan number", Number(math.NaN()), 0, false},
		{"null", Null(), 0, false},
		{"absent", Value{}, 0, false},
	}
	for _, c := range cases {
		got, ok := c.in.Float()
		if ok != c.ok || got != c.want {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestValueBlankAndString(t *testing.T) {
	if !(Value{}).Blank() || !Null().Blank() || !Text("").Blank() {
		t.Fatal("absent, null and empty text must be blank")
	}
	if Text(" ").Blank() || Number(0).Blank() {
		t.Fatal("whitespace text and zero are not blank")
	}
	if got := Number(10).String(); got != "10" {
		t.Fatalf("Number(10).String() = %q", got)
	}
	if got := Number(0.25).String(); got != "0.25" {
		t.Fatalf("Number(0.25).String() = %q", got)
	}
	for f, want := range map[float64]string{1e21: "1e+21", 1e-7: "1e-7", -2.5e-9: "-2.5e-9", 1.5e300: "1.5e+300", 1e20: "100000000000000000000", 0.000001: "0.000001"} {
		if got := Number(f).String(); got != want {
			t.Fatalf("Number(%v).String() = %q, want %q", f, got, want)
		}
	}
	if Null().String() != "" || (Value{}).String() != "" {
		t.Fatal("null and absent render empty")
	}
}

func TestRecordKeepsFirstPosition(t *testing.T) {
	r := NewRecord(F("b", Number(1)), F("a", Number(2)), F("b", Text("x")))
	keys := r.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("keys = %v", keys)
	}
	if r.Get("b").String() != "x" {
		t.Fatalf("expected overwrite, got %q", r.Get("b").String())
	}
	if r.Get("missing").Kind() != KindAbsent || r.Has("missing") {
		t.Fatal("missing field must read as absent")
	}
}
