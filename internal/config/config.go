// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/payweek/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Payroll PayrollConfig `toml:"payroll"`
	Storage StorageConfig `toml:"storage"`
	Output  OutputConfig  `toml:"output"`
}

// PayrollConfig holds pay week settings.
type PayrollConfig struct {
	Timezone          string  `toml:"timezone"`           // IANA zone pay weeks are computed in
	OvertimeThreshold float64 `toml:"overtime_threshold"` // weekly hours before overtime
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// OutputConfig holds JSON output settings.
type OutputConfig struct {
	Indent int `toml:"indent"` // spaces per level, 0 for compact
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Payroll: PayrollConfig{
			Timezone:          dateutil.DefaultTimezone,
			OvertimeThreshold: 40,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Output: OutputConfig{
			Indent: 2,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "payweek.db"
	}
	return filepath.Join(home, ".local", "share", "payweek", "payweek.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "payweek", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PAYWEEK_TIMEZONE"); v != "" {
		cfg.Payroll.Timezone = v
	}
	if v := os.Getenv("PAYWEEK_OVERTIME_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PAYWEEK_OVERTIME_THRESHOLD: %w", err)
		}
		cfg.Payroll.OvertimeThreshold = f
	}
	if v := os.Getenv("PAYWEEK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("PAYWEEK_OUTPUT_INDENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PAYWEEK_OUTPUT_INDENT: %w", err)
		}
		cfg.Output.Indent = n
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := dateutil.NewZone(c.Payroll.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if c.Payroll.OvertimeThreshold <= 0 {
		return errors.New("overtime_threshold must be positive")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return fmt.Errorf("indent must be between 0 and 8, got %d", c.Output.Indent)
	}
	return nil
}

// Zone returns the configured pay week time zone.
func (c *Config) Zone() (*dateutil.Zone, error) {
	return dateutil.NewZone(c.Payroll.Timezone)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
