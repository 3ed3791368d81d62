package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/liftbook/internal/program"
)

// Config is the resolved liftbook configuration.
type Config struct {
	DataURL      string // site root serving data/<id>.json; wins over DataDir
	DataDir      string
	Programs     []string // empty means the built-in catalog
	FetchTimeout time.Duration
	ListenAddr   string
	LogFile      string
	LogLevel     string
}

const (
	defaultConfigPath   = "~/.config/liftbook/config.toml"
	defaultDataDir      = "~/.local/share/liftbook"
	defaultLogFile      = "~/.local/state/liftbook/liftbook.log"
	defaultListenAddr   = "127.0.0.1:8480"
	defaultLogLevel     = "info"
	defaultFetchTimeout = 10 * time.Second
)

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataDir:      mustExpand(defaultDataDir),
		FetchTimeout: defaultFetchTimeout,
		ListenAddr:   defaultListenAddr,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}
}

// Load locates and parses the liftbook config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataURL             string   `toml:"data_url"`
		DataDir             string   `toml:"data_dir"`
		Programs            []string `toml:"programs"`
		FetchTimeoutSeconds int      `toml:"fetch_timeout_seconds"`
		ListenAddr          string   `toml:"listen_addr"`
		LogFile             string   `toml:"log_file"`
		LogLevel            string   `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DataURL = strings.TrimSpace(raw.DataURL)
	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if raw.FetchTimeoutSeconds > 0 {
		cfg.FetchTimeout = time.Duration(raw.FetchTimeoutSeconds) * time.Second
	}
	if addr := strings.TrimSpace(raw.ListenAddr); addr != "" {
		cfg.ListenAddr = addr
	}
	if file := strings.TrimSpace(raw.LogFile); file != "" {
		cfg.LogFile = mustExpand(file)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	for _, id := range raw.Programs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if !program.ValidID(id) {
			return Config{}, fmt.Errorf("parse config: invalid program id %q", id)
		}
		cfg.Programs = append(cfg.Programs, id)
	}

	return cfg, nil
}

// UsesHTTP reports whether programs are fetched from DataURL.
func (c Config) UsesHTTP() bool {
	return strings.TrimSpace(c.DataURL) != ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
