package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kallumq/Data-Display-site/internal/utils"
)

func TestSafeWriteFileReplacesAtomically(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	if err := utils.EnsureDir(dir); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	p := filepath.Join(dir, "out.json")
	for _, body := range []string{"first", "second"} {
		if err := utils.SafeWriteFile(p, []byte(body)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "second" {
		t.Fatalf("content = %q", b)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestEncoders(t *testing.T) {
	v := map[string]any{"column": "temp"}
	j, err := utils.PrettyJSON(v)
	if err != nil || !strings.Contains(string(j), "\"column\": \"temp\"") {
		t.Fatalf("json = %s, %v", j, err)
	}
	y, err := utils.YAML(v)
	if err != nil || strings.TrimSpace(string(y)) != "column: temp" {
		t.Fatalf("yaml = %s, %v", y, err)
	}
}
