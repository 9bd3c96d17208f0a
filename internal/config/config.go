package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/lrrview/internal/results"
)

// Config captures lrrview's settings.
type Config struct {
	Results  string // local path or http(s) URL of the results artifact
	PageSize int
	LogDir   string
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/lrrview/config.toml"
	defaultResults    = "results.js"
	defaultPageSize   = 10
	defaultLogDir     = "~/.local/share/lrrview"
	defaultLogLevel   = "INFO"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Results:  mustExpand(defaultResults),
		PageSize: defaultPageSize,
		LogDir:   mustExpand(defaultLogDir),
		LogLevel: defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
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
		Results  string `toml:"results"`
		PageSize int    `toml:"page_size"`
		LogDir   string `toml:"log_dir"`
		LogLevel string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if loc := strings.TrimSpace(raw.Results); loc != "" {
		cfg.Results = ResolveResults(loc)
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToUpper(level)
	}

	return cfg, nil
}

// ResolveResults expands a local results path; URLs are returned unchanged.
func ResolveResults(location string) string {
	location = strings.TrimSpace(location)
	if location == "" || results.IsRemote(location) {
		return location
	}
	return mustExpand(location)
}

// LogPath returns the path to the application log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/lrrview.log")
	}
	return filepath.Join(c.LogDir, "lrrview.log")
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
