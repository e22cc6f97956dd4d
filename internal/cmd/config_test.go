package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/config"
)

func TestConfigShowDefaults(t *testing.T) {
	inTempDir(t)

	out, _, err := executeCommand(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"aeries:", "layout:", "window_size: 20", "format: table"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowJSON(t *testing.T) {
	inTempDir(t)

	out, _, err := executeCommand(t, "", "config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var got config.Config
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Aeries.Layout.WeightLookahead != 4 || got.Aeries.Output.Width != 80 {
		t.Errorf("unexpected config: %+v", got.Aeries)
	}
	if !strings.Contains(out, `"Tests & Quizzes"`) {
		t.Errorf("JSON should not escape '&':\n%s", out)
	}
}

func TestConfigShowUnknownFormat(t *testing.T) {
	inTempDir(t)

	_, _, err := executeCommand(t, "", "config", "show", "--format", "toml")
	if code := exitCode(t, err); code != ExitFailure {
		t.Errorf("exit code = %d, want %d", code, ExitFailure)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := inTempDir(t)

	out, _, err := executeCommand(t, "", "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, filepath.Join(".aeries", "config.yaml")) {
		t.Errorf("unexpected init output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, ".aeries", "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	_, _, err = executeCommand(t, "", "config", "init")
	if code := exitCode(t, err); code != ExitFailure {
		t.Errorf("second init without --force: exit code = %d, want %d", code, ExitFailure)
	}

	out, _, err = executeCommand(t, "", "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v\n%s", err, out)
	}
	for _, want := range []string{"[PASS] Config file:", "Status: VALID"} {
		if !strings.Contains(out, want) {
			t.Errorf("validate output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	inTempDir(t)

	out, _, err := executeCommand(t, "", "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "[WARN] Config file not found (using defaults)") {
		t.Errorf("expected defaults warning:\n%s", out)
	}
}

func TestConfigValidateInvalid(t *testing.T) {
	dir := inTempDir(t)
	path := writeFile(t, dir, "custom.yaml", `aeries:
  layout:
    window_size: 0
    comment_patterns: ["(unclosed"]
  output:
    format: html
`)

	out, _, err := executeCommand(t, "", "config", "validate", "--config", path)
	if code := exitCode(t, err); code != ExitFailure {
		t.Errorf("exit code = %d, want %d", code, ExitFailure)
	}
	for _, want := range []string{
		"[PASS] Config file: " + path,
		"[FAIL] aeries.layout.window_size: must be at least 1",
		"[FAIL] aeries.layout.comment_patterns[0]: is not a valid regular expression",
		"[FAIL] aeries.output.format: must be one of: table json yaml csv",
		"Status: INVALID",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("validate output missing %q:\n%s", want, out)
		}
	}
}
