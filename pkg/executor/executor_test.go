package executor

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	out, err := New().Execute(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Execute() = %q, want hello", out)
	}
}

func TestExecuteIncludesStderr(t *testing.T) {
	_, err := New().Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should fail on non-zero exit")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should include stderr", err)
	}
}

func TestExecuteInDir(t *testing.T) {
	dir := t.TempDir()
	out, err := New().ExecuteInDir(context.Background(), dir, "sh", "-c", "pwd")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(out))
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Errorf("ExecuteInDir() ran in %q, want %q", got, want)
	}
}
