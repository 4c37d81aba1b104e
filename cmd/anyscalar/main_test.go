package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/anyscalar/scalar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "anyscalar.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestKindsCommand(t *testing.T) {
	path := writeConfig(t, "[log]\nverbosity = 0\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", path, "kinds"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(scalar.Kinds())+1 {
		t.Errorf("lines = %d, want %d:\n%s", len(lines), len(scalar.Kinds())+1, out)
	}
	for _, want := range []string{"KIND", "UnsignedLongLong", "scalar.LongDouble", "float32"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestKindsCommandFiltered(t *testing.T) {
	path := writeConfig(t, "[log]\nverbosity = 0\n\n[kinds]\nshow = [\"Char16\"]\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", path, "kinds"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[1], "Char16") || !strings.HasSuffix(lines[1], "16") {
		t.Errorf("row = %q, want Char16 ... 16", lines[1])
	}
}

func TestCheckCommand(t *testing.T) {
	path := writeConfig(t, "[log]\nverbosity = 0\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", path, "check"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d\nstdout: %s\nstderr: %s", code, stdout.String(), stderr.String())
	}
	if strings.Contains(stdout.String(), "FAIL") {
		t.Errorf("unexpected failure:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "value-assignment") {
		t.Errorf("output missing value-assignment check:\n%s", stdout.String())
	}
}

func TestUsageErrors(t *testing.T) {
	path := writeConfig(t, "[log]\nverbosity = 0\n")
	tests := [][]string{
		{},
		{"-config", path, "frobnicate"},
		{"-config", path, "kinds", "extra"},
		{"-nosuchflag"},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 2 {
			t.Errorf("run(%v) = %d, want 2", args, code)
		}
	}
}

func TestBadConfig(t *testing.T) {
	path := writeConfig(t, "[kinds]\nshow = [\"Quad\"]\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", path, "kinds"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Quad") {
		t.Errorf("stderr should name the bad kind: %s", stderr.String())
	}
}
