package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds product catalog configuration
type CatalogConfig struct {
	Path string `mapstructure:"path"` // JSON seed file; empty means start with an empty catalog
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerClient float64 `mapstructure:"per_client"` // requests per second per client IP
	Burst     int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/platecost/")

	// Environment variable settings
	v.SetEnvPrefix("PLATECOST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Catalog defaults
	v.SetDefault("catalog.path", "catalog.json")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_client", 50.0)
	v.SetDefault("ratelimit.burst", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required (set PLATECOST_SERVER_PORT)")
	}

	if config.RateLimit.PerClient <= 0 {
		return fmt.Errorf("rate limit per_client must be > 0, got: %v", config.RateLimit.PerClient)
	}

	if config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be > 0, got: %d", config.RateLimit.Burst)
	}

	return nil
}
