// Package config loads the greet configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported logging values.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config holds all greet configuration.
type Config struct {
	// Names greeted when the CLI gets no arguments.
	Names []string `yaml:"names"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Names: []string{"John Doe"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides lets GREET_* variables win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GREET_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("GREET_LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv("GREET_NAMES"); v != "" {
		names := strings.Split(v, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		c.Names = names
	}
}

// Validate checks the logging settings. Names are never validated.
func (c Config) Validate() error {
	var errs []error
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level))
	}
	if c.Logging.Format != FormatConsole && c.Logging.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("logging.format %q must be %s or %s", c.Logging.Format, FormatConsole, FormatJSON))
	}
	return errors.Join(errs...)
}
