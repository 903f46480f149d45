package main

import (
	"os"
	"path/filepath"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	return string(buf[:n])
}

func writeScript(t *testing.T, dir, name, source string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(source), 0644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

func TestRunEvalExpression(t *testing.T) {
	out := captureStdout(t, func() {
		code := run([]string{"-e", "3 + 4"})
		if code != exitOK {
			t.Errorf("exit code = %d, want %d", code, exitOK)
		}
	})
	if out != "7\n" {
		t.Errorf("output = %q, want %q", out, "7\n")
	}
}

func TestRunEvalParseError(t *testing.T) {
	code := run([]string{"-e", "[ :x |"})
	if code != exitRuntime {
		t.Errorf("exit code = %d, want %d", code, exitRuntime)
	}
}

func TestRunScriptFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "hello.nemo", "1 + 2.")

	code := run([]string{path})
	if code != exitOK {
		t.Errorf("exit code = %d, want %d", code, exitOK)
	}
}

func TestRunScriptWithUncaughtException(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "boom.nemo", "1 / 0.")

	code := run([]string{path})
	if code != exitRuntime {
		t.Errorf("exit code = %d, want %d", code, exitRuntime)
	}
}

func TestRunMissingScript(t *testing.T) {
	code := run([]string{"/does/not/exist.nemo"})
	if code != exitRuntime {
		t.Errorf("exit code = %d, want %d", code, exitRuntime)
	}
}

func TestRunTooManyArguments(t *testing.T) {
	code := run([]string{"one.nemo", "two.nemo"})
	if code != exitBadUsage {
		t.Errorf("exit code = %d, want %d", code, exitBadUsage)
	}
}
