package test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildCLI compiles ./cmd/aeries into a temp directory.
func buildCLI(t *testing.T) (binary, projectRoot string) {
	t.Helper()

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	wd, _ := os.Getwd()
	projectRoot = filepath.Dir(wd)
	if _, err := os.Stat(filepath.Join(projectRoot, "cmd", "aeries")); err != nil {
		projectRoot = wd
	}

	binary = filepath.Join(t.TempDir(), binaryName())
	build := exec.Command("go", "build", "-o", binary, "./cmd/aeries")
	build.Dir = projectRoot
	if output, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\n%s", err, output)
	}
	return binary, projectRoot
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "aeries.exe"
	}
	return "aeries"
}

func run(t *testing.T, binary, dir, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	cmd := exec.Command(binary, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdin)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		t.Fatalf("failed to run %v: %v", args, err)
	}
	return out.String(), errOut.String(), code
}

func TestCLI(t *testing.T) {
	binary, root := buildCLI(t)
	paste := filepath.Join(root, "internal", "extract", "testdata", "biology_1a.txt")
	dir := t.TempDir()

	t.Run("version", func(t *testing.T) {
		out, _, code := run(t, binary, dir, "", "version")
		if code != 0 || !strings.Contains(out, "aeries version") {
			t.Errorf("version: code %d, output:\n%s", code, out)
		}
	})

	t.Run("help_shows_commands", func(t *testing.T) {
		out, _, _ := run(t, binary, dir, "", "--help")
		for _, name := range []string{"parse", "grade", "calc", "new", "config", "version"} {
			if !strings.Contains(out, name) {
				t.Errorf("help missing command %q", name)
			}
		}
	})

	t.Run("grade_json_on_stdout", func(t *testing.T) {
		out, stderr, code := run(t, binary, dir, "", "grade", paste, "--json")
		if code != 0 {
			t.Fatalf("grade exit code %d:\n%s", code, stderr)
		}
		if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"letter": "B"`) {
			t.Errorf("stdout should be the JSON report:\n%s", out)
		}
		if strings.Contains(stderr, "{") {
			t.Errorf("JSON leaked to stderr:\n%s", stderr)
		}
	})

	t.Run("stdin", func(t *testing.T) {
		data, err := os.ReadFile(paste)
		if err != nil {
			t.Fatal(err)
		}
		out, _, code := run(t, binary, dir, string(data), "parse", "-", "--format", "yaml")
		if code != 0 || !strings.Contains(out, "teacher_name: Jane Smith") {
			t.Errorf("parse from stdin: code %d:\n%s", code, out)
		}
	})

	t.Run("no_assignments_exit_code", func(t *testing.T) {
		_, stderr, code := run(t, binary, dir, "nothing to see\n", "parse")
		if code != 2 {
			t.Errorf("exit code = %d, want 2", code)
		}
		if !strings.Contains(stderr, "Error: no assignments found") {
			t.Errorf("stderr = %q", stderr)
		}
	})

	t.Run("bad_flag_exit_code", func(t *testing.T) {
		_, _, code := run(t, binary, dir, "", "grade", "--log-level", "loud")
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	})
}
