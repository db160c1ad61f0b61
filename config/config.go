// Package config loads the run configuration of the regressor command
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aouyang1/go-regressor"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoDataPath      = errors.New("no dataset path")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Config represents a single regressor run
type Config struct {
	// Data is the path to a JSON array of {"year": ..., "days": ...} observations
	Data string `yaml:"data"`

	// Predict lists the years to predict ice cover days for
	Predict []float64 `yaml:"predict,omitempty"`

	// Model is an optional path the fitted model is written to as JSON
	Model string `yaml:"model,omitempty"`

	// Trace prints every iteration of an iterative method
	Trace bool `yaml:"trace"`

	LogLevel string `yaml:"log_level"`

	Fit *regressor.Options `yaml:"fit"`
}

// NewDefault returns a closed form run printing no trace
func NewDefault() *Config {
	return &Config{
		LogLevel: "info",
		Fit:      regressor.NewDefaultOptions(),
	}
}

// Load reads a YAML config on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewDefault()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %s, %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config is runnable, filling in fit defaults
func (c *Config) Validate() error {
	if c.Data == "" {
		return ErrNoDataPath
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	opt, err := c.Fit.Validate()
	if err != nil {
		return err
	}
	c.Fit = opt
	return nil
}

// Level returns the slog level named by LogLevel
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%q, %w", c.LogLevel, ErrUnknownLogLevel)
	}
}
