// Package config loads vinculum settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/vinculum/internal/numeral"
)

// Config holds all vinculum configuration.
type Config struct {
	// DBPath is the conversion journal location. Empty means the default.
	DBPath string `yaml:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Separate makes roman output keep one part per magnitude by default.
	Separate bool `yaml:"separate"`

	Verify VerifyConfig `yaml:"verify"`
}

// VerifyConfig configures the round-trip verifier.
type VerifyConfig struct {
	Workers int `yaml:"workers"`
	To      int `yaml:"to"` // exclusive upper bound
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Verify: VerifyConfig{
			Workers: runtime.NumCPU(),
			To:      numeral.Max + 1,
		},
	}
}

// DefaultPath returns ~/.vinculum/config.yaml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vinculum", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("VINCULUM_DB"); path != "" {
		c.DBPath = path
	}
	if level := os.Getenv("VINCULUM_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Verify.Workers < 1 {
		return fmt.Errorf("verify.workers must be at least 1, got %d", c.Verify.Workers)
	}
	if c.Verify.To < 1 || c.Verify.To > numeral.Max+1 {
		return fmt.Errorf("verify.to must be in [1, %d], got %d", numeral.Max+1, c.Verify.To)
	}
	return nil
}
