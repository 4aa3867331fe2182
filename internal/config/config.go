// Package config loads the pcdiag YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds every application setting. Zero-valued fields in the file
// keep their defaults.
type Config struct {
	// DataDir holds the knowledge base. Empty means the XDG data directory.
	DataDir string `yaml:"data_dir"`

	// Backend is "file" (two JSON files) or "sqlite".
	Backend string `yaml:"backend" validate:"oneof=file sqlite"`

	// SQLiteFile is the database file name inside DataDir.
	SQLiteFile string `yaml:"sqlite_file" validate:"required_if=Backend sqlite"`

	// CancelPolicy decides what dismissing a diagnosis question means:
	// "abort" ends the diagnosis, "no" records a No answer.
	CancelPolicy string `yaml:"cancel_policy" validate:"oneof=abort no"`

	// FactorPolicy is "permissive" or "strict".
	FactorPolicy string `yaml:"factor_policy" validate:"oneof=permissive strict"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the diagnostic log.
type LogConfig struct {
	// File is the log destination. Empty means pcdiag.log in the data
	// directory; "stderr" and "stdout" are accepted.
	File  string `yaml:"file"`
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Backend:      "file",
		SQLiteFile:   "pcdiag.db",
		CancelPolicy: "abort",
		FactorPolicy: "permissive",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path on top of DefaultConfig. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		name := yamlName(fe.StructNamespace())
		if fe.Param() != "" && fe.Tag() == "oneof" {
			return fmt.Errorf("invalid %s %q (want one of: %s)", name, fe.Value(), fe.Param())
		}
		return fmt.Errorf("invalid %s: failed %q check", name, fe.Tag())
	}
	return err
}

// yamlName turns "Config.Log.Level" into "log.level".
func yamlName(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DefaultPath returns $XDG_CONFIG_HOME/pcdiag/config.yaml, falling back to
// ~/.config/pcdiag/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pcdiag", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pcdiag", "config.yaml"), nil
}
