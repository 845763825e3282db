package config

import (
	"os"
	"strconv"

	"bikerental/internal/errors"
)

// Source selects which record source backs the dashboard.
type Source string

const (
	SourceCSV      Source = "csv"
	SourcePostgres Source = "postgres"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
	Ops      OpsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds dataset loading settings
type DataConfig struct {
	// Source is "csv" or "postgres".
	Source Source
	// File is the CSV/XLSX path used when Source is "csv".
	File string
	// MergeMonthsAcrossYears controls whether the monthly view sums
	// same-numbered months from different years together, as the original
	// dashboard did.
	MergeMonthsAcrossYears bool
	// Demo substitutes generated data when no backing file exists.
	Demo bool
}

// OpsConfig holds the health/pprof sidecar settings
type OpsConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			Source:                 Source(getEnvOrDefault("DATA_SOURCE", string(SourceCSV))),
			File:                   getEnvOrDefault("DATA_FILE", "./data/SeoulBikeData_cleaned_cols.csv"),
			MergeMonthsAcrossYears: getEnvBoolOrDefault("MERGE_MONTHS_ACROSS_YEARS", true),
			Demo:                   getEnvBoolOrDefault("DEMO_MODE", false),
		},
		Ops: OpsConfig{
			Port:    getEnvOrDefault("OPS_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	switch config.Data.Source {
	case SourceCSV:
		if config.Data.File == "" && !config.Data.Demo {
			return errors.ConfigInvalid("DATA_FILE is required for the csv source")
		}
	case SourcePostgres:
		if config.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required for the postgres source")
		}
	default:
		return errors.ConfigInvalid("DATA_SOURCE must be csv or postgres")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
