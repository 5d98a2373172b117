package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kubepick/kubepick/internal/paths"
)

// DefaultColumnBindingCap bounds the highest header column that gets its
// own function-key binding. 19 matches the function keys available on a
// full-size keyboard; override with column_binding_cap.
const DefaultColumnBindingCap = 19

// Config represents the application configuration.
type Config struct {
	// ColumnBindingCap is the highest header column index (1-based) that
	// is given a dynamic function-key binding.
	ColumnBindingCap int `yaml:"column_binding_cap"`

	// KubectlPath overrides the kubectl binary used for cluster calls.
	KubectlPath string `yaml:"kubectl_path"`

	// EnableLog turns on file logging.
	EnableLog bool `yaml:"enable_log"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `yaml:"log_level"`

	// HistoryDisabled turns off dispatch history recording.
	HistoryDisabled bool `yaml:"history_disabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ColumnBindingCap: DefaultColumnBindingCap,
		KubectlPath:      "kubectl",
		LogLevel:         "warn",
	}
}

// Load loads configuration from the default location
// (~/.config/kp/config.yaml on Linux).
func Load() (*Config, error) {
	return LoadFile(paths.ConfigFilePath())
}

// LoadFile loads configuration from a specific file path.
// A missing file is not an error: defaults are returned.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Backfill zero values so a partial file keeps working defaults
	if cfg.ColumnBindingCap <= 0 {
		cfg.ColumnBindingCap = DefaultColumnBindingCap
	}
	if cfg.KubectlPath == "" {
		cfg.KubectlPath = "kubectl"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}
