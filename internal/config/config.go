// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-renderer/internal/build"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Data source
	Source   string `json:"source,omitempty" validate:"omitempty,oneof=sheets csv html json postgres"` // Backend kind
	Location string `json:"location,omitempty"`                                                        // Spreadsheet ID, directory, file path, or URL

	// Google Sheets auth
	AuthMode        string `json:"auth_mode,omitempty" validate:"omitempty,oneof=api-key credentials-file none"` // Sheets auth mode
	APIKey          string `json:"api_key,omitempty"`                                                           // Google API key
	CredentialsFile string `json:"credentials_file,omitempty"`                                                  // Service-account credentials path

	// Postgres
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Output
	PDFMode bool   `json:"pdf_mode,omitempty"` // Strip hyperlink markup for print output
	OutDir  string `json:"out_dir,omitempty"`  // Build artifact directory
	Verbose bool   `json:"verbose,omitempty"`  // Print detailed debug information

	// Document layout for the build command
	Layout *build.Layout `json:"layout,omitempty"`
}

// validate checks struct-level constraints (enums) via tags.
var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Backend-specific requirements
	if c.Source == "sheets" && c.AuthMode == "api-key" && c.APIKey == "" {
		return fmt.Errorf("config error: auth_mode 'api-key' requires 'api_key'")
	}
	if c.Source == "sheets" && c.AuthMode == "credentials-file" && c.CredentialsFile == "" {
		return fmt.Errorf("config error: auth_mode 'credentials-file' requires 'credentials_file'")
	}
	if c.Source == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: source 'postgres' requires 'database_url'")
	}

	// Validate file paths exist (if specified)
	if c.CredentialsFile != "" {
		if _, err := os.Stat(c.CredentialsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: credentials file not found: %s", c.CredentialsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Source == "" {
		result.Source = defaults.Source
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.AuthMode == "" {
		result.AuthMode = defaults.AuthMode
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.CredentialsFile == "" {
		result.CredentialsFile = defaults.CredentialsFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Layout == nil {
		result.Layout = defaults.Layout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
