package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dshills/threadfmt/internal/thread"
)

const (
	DefaultStartNumber   = 1
	DefaultAnonymousName = "名無し"
	DefaultJumpMin       = 50
	DefaultJumpMax       = 250
)

// DotEnvFile is the .env file consulted by Load, relative to the working directory.
var DotEnvFile = ".env"

// Config represents the threadfmt configuration.
type Config struct {
	StartNumber   int    `json:"startNumber"`
	AnonymousName string `json:"anonymousName"`
	JumpMin       int    `json:"jumpMin"`
	JumpMax       int    `json:"jumpMax"`
	Format        string `json:"format"`
	Color         string `json:"color"`
	LogLevel      string `json:"logLevel"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		StartNumber:   DefaultStartNumber,
		AnonymousName: DefaultAnonymousName,
		JumpMin:       DefaultJumpMin,
		JumpMax:       DefaultJumpMax,
		Format:        "text",
		Color:         "auto",
		LogLevel:      "warn",
	}
}

// ThreadOptions returns the formatter options described by cfg.
func (c Config) ThreadOptions() thread.Options {
	return thread.Options{
		StartNumber:   c.StartNumber,
		AnonymousName: c.AnonymousName,
		JumpMin:       c.JumpMin,
		JumpMax:       c.JumpMax,
	}
}

// Validate reports settings the formatter or output layer cannot use.
func (c Config) Validate() error {
	if c.JumpMin > c.JumpMax {
		return fmt.Errorf("%w: jumpMin %d is greater than jumpMax %d", thread.ErrInvalidRange, c.JumpMin, c.JumpMax)
	}
	switch c.Format {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unsupported color mode: %s", c.Color)
	}
	return nil
}

// ConfigDir returns the platform-appropriate config directory for threadfmt.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "threadfmt"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "threadfmt"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "threadfmt"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "threadfmt"), nil
	default:
		return filepath.Join(home, ".config", "threadfmt"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- .env <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)

	dotEnv, err := readDotEnv(DotEnvFile)
	if err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg, func(key string) string { return dotEnv[key] })
	mergeEnv(&cfg, os.Getenv)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

// readDotEnv parses path without touching the process environment.
// A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}

// FromFile returns the defaults overlaid with the values set in src.
func FromFile(src Config) Config {
	cfg := Default()
	mergeFile(&cfg, src)
	return cfg
}

func mergeFile(dst *Config, src Config) {
	if src.StartNumber > 0 {
		dst.StartNumber = src.StartNumber
	}
	if src.AnonymousName != "" {
		dst.AnonymousName = src.AnonymousName
	}
	if src.JumpMin > 0 {
		dst.JumpMin = src.JumpMin
	}
	if src.JumpMax > 0 {
		dst.JumpMax = src.JumpMax
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func mergeEnv(cfg *Config, getenv func(string) string) {
	if n, ok := positiveInt(getenv("THREADFMT_START")); ok {
		cfg.StartNumber = n
	}
	if v := getenv("THREADFMT_NAME"); v != "" {
		cfg.AnonymousName = v
	}
	if n, ok := positiveInt(getenv("THREADFMT_JUMP_MIN")); ok {
		cfg.JumpMin = n
	}
	if n, ok := positiveInt(getenv("THREADFMT_JUMP_MAX")); ok {
		cfg.JumpMax = n
	}
	if v := getenv("THREADFMT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := getenv("THREADFMT_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := getenv("THREADFMT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if n, ok := positiveInt(overrides["startNumber"]); ok {
		cfg.StartNumber = n
	}
	if v, ok := overrides["anonymousName"]; ok && v != "" {
		cfg.AnonymousName = v
	}
	if n, ok := positiveInt(overrides["jumpMin"]); ok {
		cfg.JumpMin = n
	}
	if n, ok := positiveInt(overrides["jumpMax"]); ok {
		cfg.JumpMax = n
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["color"]; ok && v != "" {
		cfg.Color = v
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
}

// positiveInt parses s, reporting false for anything that is not a positive integer.
func positiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "startNumber":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("startNumber must be an integer: %w", err)
		}
		cfg.StartNumber = n
	case "anonymousName":
		cfg.AnonymousName = value
	case "jumpMin":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("jumpMin must be an integer: %w", err)
		}
		cfg.JumpMin = n
	case "jumpMax":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("jumpMax must be an integer: %w", err)
		}
		cfg.JumpMax = n
	case "format":
		cfg.Format = value
	case "color":
		cfg.Color = value
	case "logLevel":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
