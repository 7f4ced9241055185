// Package config loads application configuration: built-in defaults, an
// optional YAML file, then environment variables (prefix DISTREP) on top.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Upload  UploadConfig  `yaml:"upload" envconfig:"UPLOAD"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps" envconfig:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst  int           `yaml:"rate_limit_burst" envconfig:"RATE_LIMIT_BURST" validate:"min=1"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// UploadConfig bounds the file-upload surface.
type UploadConfig struct {
	MaxFiles    int    `yaml:"max_files" envconfig:"MAX_FILES" validate:"min=1,max=20"`
	MaxFileSize int64  `yaml:"max_file_size" envconfig:"MAX_FILE_SIZE" validate:"min=1"`
	TempDir     string `yaml:"temp_dir" envconfig:"TEMP_DIR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			RateLimitRPS:    10,
			RateLimitBurst:  20,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/distrep.log",
		},
		Upload: UploadConfig{
			MaxFiles:    5,
			MaxFileSize: 10 << 20,
			TempDir:     os.TempDir(),
		},
	}
}

// Load builds the configuration: defaults, then the optional YAML file named
// by DISTREP_CONFIG_FILE (or config.yaml when present), then environment
// variables on top. The result is validated before being returned.
func Load() (*Config, error) {
	cfg := Default()

	if path := configFilePath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Environment only overrides fields whose variables are actually set.
	if err := envconfig.Process("DISTREP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func configFilePath() string {
	if path := os.Getenv("DISTREP_CONFIG_FILE"); path != "" {
		return path
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}
