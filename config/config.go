package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all eatfood configuration.
type Config struct {
	// Where reports and the history database live
	DataDir string `yaml:"data_dir"`

	// History database; relative paths are resolved against DataDir
	DBPath string `yaml:"db_path"`

	// Optional YAML file replacing the built-in lookup tables
	TablesPath string `yaml:"tables_path"`

	Reports ReportsConfig `yaml:"reports"`

	Logging LoggingConfig `yaml:"logging"`
}

// ReportsConfig controls which files a run leaves behind.
type ReportsConfig struct {
	Text    bool `yaml:"text"`    // plain-text report files
	XLSX    bool `yaml:"xlsx"`    // spreadsheet copy of shopping lists
	History bool `yaml:"history"` // SQLite history
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir: ".",
		DBPath:  "eatfood.db",
		Reports: ReportsConfig{
			Text:    true,
			XLSX:    false,
			History: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from path. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
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
	if v := os.Getenv("EATFOOD_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("EATFOOD_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("EATFOOD_TABLES"); v != "" {
		c.TablesPath = v
	}
	if v := os.Getenv("EATFOOD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Reports.History && c.DBPath == "" {
		return fmt.Errorf("db_path is required when history is enabled")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}

// ResolvedDBPath returns the database path, joined to DataDir when relative.
func (c *Config) ResolvedDBPath() string {
	if filepath.IsAbs(c.DBPath) {
		return c.DBPath
	}
	return filepath.Join(c.DataDir, c.DBPath)
}
