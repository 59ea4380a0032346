// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags. Environment variables (via .env) take precedence
// over file values for secrets like the database URL.
type Config struct {
	// Data sources
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	OffersFile  string `json:"offers_file,omitempty"`  // Path to JSON offers catalog

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Matching
	CandidateLimit int `json:"candidate_limit,omitempty"` // Max candidates returned per offer

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// FromEnv overlays environment variables onto the config. DATABASE_URL and
// OFFERS_FILE win over file values so deployments can rotate them without
// editing config files.
func (c *Config) FromEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("OFFERS_FILE"); v != "" {
		c.OffersFile = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.CandidateLimit < 0 {
		return fmt.Errorf("config error: 'candidate_limit' must be non-negative")
	}
	if c.OffersFile != "" {
		if _, err := os.Stat(c.OffersFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: offers file not found: %s", c.OffersFile)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.OffersFile == "" {
		result.OffersFile = defaults.OffersFile
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CandidateLimit == 0 {
		result.CandidateLimit = defaults.CandidateLimit
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
