package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wayming/jsonconv/json2tab"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestBatchConverterSQL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "users.json", `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`)
	writeFile(t, dir, "orders.json", `{"orders":[{"total":9.5}]}`)

	b := NewBatchConverter(dir, json2tab.FormatSQL)
	if err := b.Execute(2); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "users.sql"))
	if err != nil {
		t.Fatalf("users.sql not written: %v", err)
	}
	if !strings.Contains(string(data), `CREATE TABLE "users"`) {
		t.Errorf("users.sql missing CREATE TABLE:\n%s", data)
	}
	if !strings.Contains(string(data), `INSERT INTO "users"`) {
		t.Errorf("users.sql missing INSERT:\n%s", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "orders.sql")); err != nil {
		t.Errorf("orders.sql not written: %v", err)
	}
}

func TestBatchConverterCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tags.json", `{"tags":["x","y"]}`)

	b := NewBatchConverter(dir, json2tab.FormatCSV)
	if err := b.Execute(1); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tags.csv"))
	if err != nil {
		t.Fatalf("tags.csv not written: %v", err)
	}
	if got := string(data); got != "tags\n\"x, y\"" {
		t.Errorf("tags.csv = %q", got)
	}
}

func TestBatchConverterReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `{"a":1}`)
	writeFile(t, dir, "bad.json", `{"a":`)

	b := NewBatchConverter(dir, json2tab.FormatSQL)
	err := b.Execute(2)
	if err == nil {
		t.Fatalf("Execute() expected an error for the malformed file")
	}
	if !strings.Contains(err.Error(), "1 of 2 files failed") {
		t.Errorf("Execute() error = %v", err)
	}

	// The good file still converts.
	if _, statErr := os.Stat(filepath.Join(dir, "good.sql")); statErr != nil {
		t.Errorf("good.sql not written: %v", statErr)
	}
}

func TestBatchConverterEmptyDir(t *testing.T) {
	b := NewBatchConverter(t.TempDir(), json2tab.FormatSQL)
	if err := b.Execute(1); err == nil {
		t.Errorf("Execute() expected an error for an empty directory")
	}
}
