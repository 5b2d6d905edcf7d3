package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	MongoDB struct {
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Database       string `yaml:"database" env:"MONGODB_DATABASE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`
	} `yaml:"mongodb"`

	Linker struct {
		Workers           int    `yaml:"workers" env:"LINKER_WORKERS"`
		QueueSize         int    `yaml:"queue_size" env:"LINKER_QUEUE_SIZE"`
		MaxAttempts       int    `yaml:"max_attempts" env:"LINKER_MAX_ATTEMPTS"`
		RetryBackoff      string `yaml:"retry_backoff" env:"LINKER_RETRY_BACKOFF"`
		OpTimeout         string `yaml:"op_timeout" env:"LINKER_OP_TIMEOUT"`
		ReconcileInterval string `yaml:"reconcile_interval" env:"LINKER_RECONCILE_INTERVAL"`
	} `yaml:"linker"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// MongoDB defaults
	config.MongoDB.URI = "mongodb://localhost:27017"
	config.MongoDB.Database = "smart_classroom"
	config.MongoDB.ConnectTimeout = "10s"

	// Linker defaults
	config.Linker.Workers = 4
	config.Linker.QueueSize = 256
	config.Linker.MaxAttempts = 3
	config.Linker.RetryBackoff = "100ms"
	config.Linker.OpTimeout = "10s"
	config.Linker.ReconcileInterval = "30s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.MongoDB.URI == "" {
		return fmt.Errorf("mongodb uri is required")
	}
	if config.MongoDB.Database == "" {
		return fmt.Errorf("mongodb database name is required")
	}

	// Validate duration formats
	for name, value := range map[string]string{
		"mongodb connect timeout":   config.MongoDB.ConnectTimeout,
		"linker retry backoff":      config.Linker.RetryBackoff,
		"linker op timeout":         config.Linker.OpTimeout,
		"linker reconcile interval": config.Linker.ReconcileInterval,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Linker.Workers <= 0 {
		return fmt.Errorf("linker workers must be positive")
	}
	if config.Linker.MaxAttempts <= 0 {
		return fmt.Errorf("linker max attempts must be positive")
	}

	return nil
}
