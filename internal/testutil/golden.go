// Package testutil provides fixtures and golden-file helpers for the grade tools' tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var updateGolden = flag.Bool("update", false, "update golden files")

// Update returns true if golden files should be updated.
// Use with: go test -update
func Update() bool {
	return *updateGolden
}

// Golden compares actual output against testdata/<name>.golden, relative to the
// test's package directory. With -update the golden file is rewritten instead.
//
//	func TestReport(t *testing.T) {
//	    testutil.Golden(t, "report", renderReport())
//	}
func Golden(t *testing.T, name string, actual []byte) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if Update() {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("Failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, actual, 0644); err != nil {
			t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}

	if !bytes.Equal(actual, expected) {
		t.Errorf("Output does not match golden file %s.\n"+
			"To update the golden file, run: go test -update ./...\n\n"+
			"Got:\n%s\n\nWant:\n%s",
			goldenPath, actual, expected)
	}
}

// GoldenJSON encodes v as indented JSON, without HTML escaping, and compares it
// against the golden file.
func GoldenJSON(t *testing.T, name string, v interface{}) {
	t.Helper()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		t.Fatalf("Failed to encode %s: %v", name, err)
	}
	Golden(t, name, buf.Bytes())
}

// ReadTestdata returns the contents of testdata/<name>.
func ReadTestdata(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read testdata %s: %v", name, err)
	}
	return string(data)
}

var ansiPattern = regexp.MustCompile("\033\\[[0-9;]*[A-Za-z]")

// StripANSIString removes ANSI escape codes, for comparing terminal output.
func StripANSIString(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
