package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr {
		t.Fatalf("ListenAddr = %q, want %q", cfg.ListenAddr, defaultListenAddr)
	}
	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("FetchTimeout = %v, want %v", cfg.FetchTimeout, defaultFetchTimeout)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.UsesHTTP() {
		t.Fatal("UsesHTTP() = true, want false without data_url")
	}
	if len(cfg.Programs) != 0 {
		t.Fatalf("Programs = %v, want none", cfg.Programs)
	}

	wantDataDir := filepath.Join(home, ".local", "share", "liftbook")
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	wantLog := filepath.Join(home, ".local", "state", "liftbook", "liftbook.log")
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "liftbook")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`listen_addr = ":9000"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Fatalf("ListenAddr = %q, want %q", cfg.ListenAddr, ":9000")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
data_url = "  https://example.org/site/  "
data_dir = "  ~/workouts  "
programs = [" arturos-workout ", "", "solo_2"]
fetch_timeout_seconds = 3
listen_addr = "  0.0.0.0:8000  "
log_file = "~/logs/lb.log"
log_level = " DEBUG "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataURL != "https://example.org/site/" || !cfg.UsesHTTP() {
		t.Fatalf("DataURL = %q, want trimmed url", cfg.DataURL)
	}
	if cfg.DataDir != filepath.Join(home, "workouts") {
		t.Fatalf("DataDir = %q, want it under HOME", cfg.DataDir)
	}
	if got := strings.Join(cfg.Programs, ","); got != "arturos-workout,solo_2" {
		t.Fatalf("Programs = %q, want %q", got, "arturos-workout,solo_2")
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Fatalf("FetchTimeout = %v, want 3s", cfg.FetchTimeout)
	}
	if cfg.ListenAddr != "0.0.0.0:8000" {
		t.Fatalf("ListenAddr = %q, want %q", cfg.ListenAddr, "0.0.0.0:8000")
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
listen_addr = "   "
data_dir = ""
log_level = ""
fetch_timeout_seconds = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg.ListenAddr != want.ListenAddr || cfg.DataDir != want.DataDir || cfg.LogLevel != want.LogLevel {
		t.Fatalf("cfg = %#v, want defaults %#v", cfg, want)
	}
	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("FetchTimeout = %v, want %v", cfg.FetchTimeout, defaultFetchTimeout)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `listen_addr = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidProgramIDFails(t *testing.T) {
	_, err := Load(writeConfig(t, `programs = ["../etc/passwd"]`))
	if err == nil || !strings.Contains(err.Error(), "invalid program id") {
		t.Fatalf("Load error = %v, want invalid program id", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
