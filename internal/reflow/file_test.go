package reflow_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mreflow/internal/reflow"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "script.m",
		"% This is a very long comment that should wrap across multiple lines because it exceeds the limit\nx = 1;\n")

	opts := reflow.Options{LineLength: 40, IgnoreIndented: true}
	res, err := reflow.ProcessFile(path, opts)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if !res.Changed {
		t.Errorf("ProcessFile() Changed = false, want true")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	want := "% This is a very long comment that\n% should wrap across multiple lines\n% because it exceeds the limit\nx = 1;\n"
	if string(got) != want {
		t.Errorf("rewritten content =\n%q\nwant\n%q", got, want)
	}

	// A second pass over its own output must be a no-op.
	res, err = reflow.ProcessFile(path, opts)
	if err != nil {
		t.Fatalf("ProcessFile() second pass error = %v", err)
	}
	if res.Changed {
		t.Errorf("ProcessFile() second pass Changed = true, want false")
	}
}

func TestProcessFileMissing(t *testing.T) {
	_, err := reflow.ProcessFile(filepath.Join(t.TempDir(), "nope.m"), reflow.DefaultOptions())
	if err == nil {
		t.Fatal("ProcessFile() error = nil, want not-found error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ProcessFile() error = %v, want wrapped fs not-found", err)
	}
}

func TestProcessPaths(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.m", "% alpha beta\n% gamma\n")
	writeTestFile(t, dir, "notes.txt", "% not matlab\n")
	writeTestFile(t, dir, filepath.Join("sub", "b.m"), "x = 1;\n")

	results, err := reflow.ProcessPaths([]string{dir}, reflow.DefaultOptions())
	if err != nil {
		t.Fatalf("ProcessPaths() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("ProcessPaths() returned %d results, want 2 (.m files only): %+v", len(results), results)
	}
	for _, res := range results {
		if filepath.Ext(res.Path) != ".m" {
			t.Errorf("ProcessPaths() touched non-.m file %s", res.Path)
		}
	}
}

func TestProcessPathsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	// A file named directly is processed whatever its extension.
	path := writeTestFile(t, dir, "notes.txt", "% alpha\n% beta\n")

	results, err := reflow.ProcessPaths([]string{path}, reflow.DefaultOptions())
	if err != nil {
		t.Fatalf("ProcessPaths() error = %v", err)
	}
	if len(results) != 1 || !results[0].Changed {
		t.Fatalf("ProcessPaths() results = %+v, want one changed file", results)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(got) != "% alpha beta\n" {
		t.Errorf("rewritten content = %q, want %q", got, "% alpha beta\n")
	}
}

func TestProcessPathsFailFast(t *testing.T) {
	dir := t.TempDir()
	good := writeTestFile(t, dir, "a.m", "% fine\n")

	_, err := reflow.ProcessPaths([]string{filepath.Join(dir, "missing.m"), good}, reflow.DefaultOptions())
	if err == nil {
		t.Fatal("ProcessPaths() error = nil, want error for missing file")
	}
}
