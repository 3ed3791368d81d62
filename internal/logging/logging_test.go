package logging

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{" DEBUG ", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	log.Info("hidden")
	log.Warn("program unavailable", "program", "p1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "program=p1") {
		t.Fatalf("output = %q, want program=p1", out)
	}

	if _, err := New(&buf, "nope"); err == nil {
		t.Fatal("New with bad level returned nil error")
	}
}

func TestOpenFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "liftbook.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	if _, err := f.WriteString("line\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	_ = f.Close()

	lines, err := Tail(path, 5)
	if err != nil || len(lines) != 1 || lines[0] != "line" {
		t.Fatalf("Tail = %v, %v", lines, err)
	}
}

func TestTail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.log")
	var body strings.Builder
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&body, "line %d\n", i)
	}
	if err := os.WriteFile(path, []byte(body.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name string
		max  int
		want []string
	}{
		{"last three", 3, []string{"line 5", "line 6", "line 7"}},
		{"more than file", 20, []string{"line 1", "line 2", "line 3", "line 4", "line 5", "line 6", "line 7"}},
		{"zero", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.max)
			if err != nil {
				t.Fatalf("Tail returned error: %v", err)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("Tail = %v, want %v", got, tt.want)
			}
		})
	}

	lines, err := Tail(filepath.Join(dir, "missing.log"), 3)
	if err != nil || lines != nil {
		t.Fatalf("Tail(missing) = %v, %v, want nil, nil", lines, err)
	}
}
