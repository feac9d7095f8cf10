// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config is the CLI configuration, loadable from a JSON file. All fields are
// optional; missing values use defaults or come from CLI flags and env vars.
type Config struct {
	DataDir   string `json:"data_dir,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
	Port      int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	CacheSize int    `json:"cache_size,omitempty" validate:"omitempty,min=1"`
	Model     string `json:"model,omitempty"`
	Verbose   bool   `json:"verbose,omitempty"`
}

var validate = validator.New()

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DataDir:   "data",
		Port:      8080,
		CacheSize: 100,
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. CLI flags and env vars still override the merged result.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CacheSize == 0 {
		result.CacheSize = defaults.CacheSize
	}

	// Bool fields: cannot distinguish unset from false, so flags always win.

	return result
}
