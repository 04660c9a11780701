package dataset_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kallumq/Data-Display-site/internal/dataset"
)

func TestDecodeJSONKeepsKeyOrder(t *testing.T) {
	ds, err := dataset.DecodeJSON([]byte(`[{"b":1,"a":"2"},{"c":null,"d":true,"e":[1,2]}, 5]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("records = %d, want 3", len(ds))
	}
	if k := ds[0].Keys(); len(k) != 2 || k[0] != "b" || k[1] != "a" {
		t.Fatalf("keys = %v", k)
	}
	if ds[0].Get("b").Kind() != dataset.KindNumber || ds[0].Get("a").Kind() != dataset.KindText {
		t.Fatal("unexpected kinds for first record")
	}
	if ds[1].Get("c").Kind() != dataset.KindNull {
		t.Fatal("null must stay null")
	}
	if got := ds[1].Get("d").String(); got != "true" {
		t.Fatalf("bool text = %q", got)
	}
	if got := ds[1].Get("e").String(); got != "[1,2]" {
		t.Fatalf("nested text = %q", got)
	}
	if ds[2].Len() != 0 {
		t.Fatal("non-object element must be an empty record")
	}
}

func TestDecodeJSONNotASequence(t *testing.T) {
	for _, in := range []string{`{"a":1}`, `null`, `"text"`, `[]`} {
		ds, err := dataset.DecodeJSON([]byte(in))
		if err != nil {
			t.Fatalf("%s: unexpected error %v", in, err)
		}
		if len(ds) != 0 {
			t.Fatalf("%s: expected empty dataset, got %d", in, len(ds))
		}
	}
	if _, err := dataset.DecodeJSON([]byte(`[{"a":`)); err == nil {
		t.Fatal("expected parse error for truncated json")
	}
}

func TestDecodeCSVAndYAML(t *testing.T) {
	ds, err := dataset.DecodeCSV([]byte("date,temp\n2024-01-01,10\n2024-01-02\n"), ',')
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if len(ds) != 2 || ds[0].Get("temp").String() != "10" {
		t.Fatalf("unexpected csv dataset: %+v", ds)
	}
	if ds[1].Has("temp") {
		t.Fatal("short row must leave trailing field absent")
	}

	ds, err = dataset.DecodeCSV([]byte("name, score\n  , 7\n"), ',')
	if err != nil {
		t.Fatalf("csv whitespace: %v", err)
	}
	if got := ds[0].Get("name"); got.Blank() || got.String() != "  " {
		t.Fatalf("whitespace cell = %q (blank=%v), want kept", got.String(), got.Blank())
	}
	if _, ok := ds[0].Get("score").Float(); !ok {
		t.Fatal("padded number must still parse")
	}

	ds, err = dataset.DecodeYAML([]byte("- name: a\n  score: 3\n  note: ~\n- name: b\n  score: x\n"))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("yaml records = %d", len(ds))
	}
	if k := ds[0].Keys(); len(k) != 3 || k[0] != "name" || k[2] != "note" {
		t.Fatalf("yaml keys = %v", k)
	}
	if ds[0].Get("score").Kind() != dataset.KindNumber || ds[0].Get("note").Kind() != dataset.KindNull {
		t.Fatal("unexpected yaml kinds")
	}
}

func TestLoaderHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"name":"Alice"}]`))
		case "/broken.json":
			_, _ = w.Write([]byte(`[{`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := dataset.NewLoader(5 * time.Second)
	ds, err := l.Load(context.Background(), srv.URL+"/data.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds) != 1 || ds[0].Get("name").String() != "Alice" {
		t.Fatalf("unexpected dataset: %+v", ds)
	}

	_, err = l.Load(context.Background(), srv.URL+"/missing.json")
	var le *dataset.LoadError
	if !errors.As(err, &le) || le.Status != http.StatusNotFound {
		t.Fatalf("expected 404 LoadError, got %v", err)
	}

	_, err = l.Load(context.Background(), srv.URL+"/broken.json")
	if !errors.As(err, &le) || le.Status != 0 {
		t.Fatalf("expected parse LoadError, got %v", err)
	}
}

func TestLoaderFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(p, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ds, err := dataset.NewLoader(0).Load(context.Background(), p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds) != 1 || ds[0].Get("b").String() != "2" {
		t.Fatalf("unexpected dataset: %+v", ds)
	}

	_, err = dataset.NewLoader(0).Load(context.Background(), filepath.Join(dir, "nope.json"))
	var le *dataset.LoadError
	if !errors.As(err, &le) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist LoadError, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]dataset.Format{
		"data.json":                      dataset.FormatJSON,
		"rows.CSV":                       dataset.FormatCSV,
		"rows.tsv":                       dataset.FormatTSV,
		"rows.yml":                       dataset.FormatYAML,
		"https://example.com/x.csv?v=1":  dataset.FormatCSV,
		"https://example.com/api/latest": dataset.FormatJSON,
	}
	for in, want := range cases {
		if got := dataset.DetectFormat(in); got != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", in, got, want)
		}
	}
}
