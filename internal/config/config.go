// Package config loads condo-registry configuration from a yaml file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server and CLI need to reach the external
// providers. S3 settings are optional: without a bucket, photo upload is
// disabled and records carry the no-image placeholder.
type Config struct {
	SpreadsheetID     string `yaml:"spreadsheet_id"`
	SheetName         string `yaml:"sheet_name"`
	GoogleCredentials string `yaml:"google_credentials"`
	MapsAPIKey        string `yaml:"maps_api_key"`

	AWSRegion          string `yaml:"aws_region"`
	AWSAccessKeyID     string `yaml:"aws_access_key_id"`
	AWSSecretAccessKey string `yaml:"aws_secret_access_key"`
	S3Bucket           string `yaml:"s3_bucket"`

	Port int  `yaml:"port"`
	Dev  bool `yaml:"dev"`
}

// DefaultPath returns the default config file path: ~/.config/cr/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cr", "config.yaml"), nil
}

// Load reads the config file at path (missing file is not an error), applies
// environment overrides, and fills defaults.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.SheetName == "" {
		cfg.SheetName = "Condos"
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	return cfg, nil
}

// applyEnv overrides file values with environment variables. AWS variables
// keep their conventional names; everything else uses the CR_ prefix.
func applyEnv(cfg *Config) {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&cfg.SpreadsheetID, "CR_SPREADSHEET_ID")
	setString(&cfg.SheetName, "CR_SHEET_NAME")
	setString(&cfg.GoogleCredentials, "CR_GOOGLE_CREDENTIALS")
	setString(&cfg.MapsAPIKey, "CR_MAPS_API_KEY")
	setString(&cfg.AWSRegion, "AWS_REGION")
	setString(&cfg.AWSAccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&cfg.AWSSecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&cfg.S3Bucket, "CR_S3_BUCKET")

	if v := os.Getenv("CR_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("CR_DEV"); v != "" {
		cfg.Dev = v == "1" || v == "true"
	}
}

// ValidateStore checks the settings needed to reach the record store.
func (c Config) ValidateStore() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet_id is required (set CR_SPREADSHEET_ID or the config file)")
	}
	return nil
}

// UploadEnabled reports whether photo uploads are configured.
func (c Config) UploadEnabled() bool {
	return c.S3Bucket != "" && c.AWSRegion != ""
}
