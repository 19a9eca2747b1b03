// Package config loads estimator settings. Values come from built-in
// defaults, then an optional YAML file, then ESTIMATOR_* environment
// variables. PocketBase keeps its own flags (--dir, --http) and is not
// configured here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Reference ReferenceConfig `yaml:"reference"`
	Projects  ProjectsConfig  `yaml:"projects"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ReferenceConfig points at an alternate reference table file. Empty means
// the tables compiled into the binary.
type ReferenceConfig struct {
	File string `yaml:"file"`
}

// ProjectsConfig contains project list settings.
type ProjectsConfig struct {
	PageSize int  `yaml:"page_size"`
	Seed     bool `yaml:"seed"`
}

// Load builds the configuration. An empty path skips the file and uses
// defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Projects: ProjectsConfig{
			PageSize: 10,
			Seed:     true,
		},
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ESTIMATOR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ESTIMATOR_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ESTIMATOR_REFERENCE_FILE"); v != "" {
		cfg.Reference.File = v
	}
	if v := os.Getenv("ESTIMATOR_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ESTIMATOR_PAGE_SIZE: %w", err)
		}
		cfg.Projects.PageSize = n
	}
	return nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "logging.level must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, "logging.format must be json or console")
	}

	if c.Projects.PageSize < 1 || c.Projects.PageSize > 100 {
		errs = append(errs, "projects.page_size must be between 1 and 100")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
