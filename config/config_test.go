package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "estimator.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
	if cfg.Projects.PageSize != 10 {
		t.Errorf("Projects.PageSize = %d, want 10", cfg.Projects.PageSize)
	}
	if !cfg.Projects.Seed {
		t.Error("Projects.Seed = false, want true")
	}
	if cfg.Reference.File != "" {
		t.Errorf("Reference.File = %q, want empty", cfg.Reference.File)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: console
reference:
  file: /etc/estimator/tables.yaml
projects:
  page_size: 25
  seed: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Reference.File != "/etc/estimator/tables.yaml" {
		t.Errorf("Reference.File = %q", cfg.Reference.File)
	}
	if cfg.Projects.PageSize != 25 || cfg.Projects.Seed {
		t.Errorf("Projects = %+v", cfg.Projects)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" || cfg.Projects.PageSize != 10 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/estimator.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "invalid: [yaml: content")

	_, err := Load(path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ESTIMATOR_LOG_LEVEL", "error")
	t.Setenv("ESTIMATOR_LOG_FORMAT", "console")
	t.Setenv("ESTIMATOR_REFERENCE_FILE", "/tmp/tables.yaml")
	t.Setenv("ESTIMATOR_PAGE_SIZE", "50")

	path := writeConfig(t, "logging:\n  level: debug\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want env value %q", cfg.Logging.Level, "error")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Reference.File != "/tmp/tables.yaml" {
		t.Errorf("Reference.File = %q", cfg.Reference.File)
	}
	if cfg.Projects.PageSize != 50 {
		t.Errorf("Projects.PageSize = %d, want 50", cfg.Projects.PageSize)
	}
}

func TestLoad_InvalidPageSizeEnv(t *testing.T) {
	t.Setenv("ESTIMATOR_PAGE_SIZE", "lots")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "ESTIMATOR_PAGE_SIZE") {
		t.Errorf("Load() error = %v, want ESTIMATOR_PAGE_SIZE error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults valid", func(*Config) {}, ""},
		{"upper-case level", func(c *Config) { c.Logging.Level = "DEBUG" }, ""},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"zero page size", func(c *Config) { c.Projects.PageSize = 0 }, "projects.page_size"},
		{"huge page size", func(c *Config) { c.Projects.PageSize = 1000 }, "projects.page_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	if !strings.Contains(err.Error(), "logging.level") || !strings.Contains(err.Error(), "logging.format") {
		t.Errorf("Validate() error = %v, want both problems reported", err)
	}
}
