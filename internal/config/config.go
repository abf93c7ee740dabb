// Package config loads engine configuration. Settings are merged in
// order: built-in defaults, then a YAML file when one is given, then
// OPTION_QUOTE_* environment variables. The merged result is validated
// before anything consumes it.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// ServerConfig holds the REST listener settings.
type ServerConfig struct {
	Listen          string `yaml:"listen" validate:"required"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec" validate:"min=1"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec" validate:"min=1"`
}

// LogConfig holds verbosity and optional rotating-file settings.
type LogConfig struct {
	Verbosity  int    `yaml:"verbosity" validate:"min=0,max=3"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"min=0"`
	Compress   bool   `yaml:"compress"`
}

// DatasetConfig bounds the in-memory dataset store. Zero means unbounded.
type DatasetConfig struct {
	MaxRows     int `yaml:"max_rows" validate:"min=0"`
	MaxDatasets int `yaml:"max_datasets" validate:"min=0"`
}

// ReportConfig controls where file exports land.
type ReportConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Dataset DatasetConfig `yaml:"dataset"`
	Report  ReportConfig  `yaml:"report"`
}

// Default returns the configuration used when no file or overrides are set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:          ":8080",
			ReadTimeoutSec:  15,
			WriteTimeoutSec: 15,
		},
		Log: LogConfig{
			Verbosity:  1,
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
		Dataset: DatasetConfig{
			MaxRows:     100000,
			MaxDatasets: 16,
		},
		Report: ReportConfig{
			Dir: "./out",
		},
	}
}

// Load builds the effective configuration. A .env file in the working
// directory is merged into the environment first; a missing .env is fine.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.Server.Listen = getEnv("OPTION_QUOTE_LISTEN", cfg.Server.Listen)
	cfg.Log.Verbosity = getEnvInt("OPTION_QUOTE_VERBOSITY", cfg.Log.Verbosity)
	cfg.Log.File = getEnv("OPTION_QUOTE_LOG_FILE", cfg.Log.File)
	cfg.Report.Dir = getEnv("OPTION_QUOTE_REPORT_DIR", cfg.Report.Dir)
	cfg.Dataset.MaxRows = getEnvInt("OPTION_QUOTE_DATASET_MAX_ROWS", cfg.Dataset.MaxRows)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
