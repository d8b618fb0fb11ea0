package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Matching  MatchingConfig  `mapstructure:"matching"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Generator GeneratorConfig `mapstructure:"generator"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// MatchingConfig holds ingredient matcher settings
type MatchingConfig struct {
	MaxResults         int    `mapstructure:"max_results"`
	Workers            int    `mapstructure:"workers"` // 0 means one per CPU
	EnableDebugLogging bool   `mapstructure:"enable_debug_logging"`
	RulesFile          string `mapstructure:"rules_file"`
}

// CatalogConfig holds product catalog settings
type CatalogConfig struct {
	Path     string        `mapstructure:"path"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// GeneratorConfig holds text generation API configuration
type GeneratorConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Model             string        `mapstructure:"model"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds inbound rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/freshcart/")

	// Environment variable settings: server.port -> FRESHCART_SERVER_PORT
	v.SetEnvPrefix("FRESHCART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. Every key needs a default
// so that AutomaticEnv overrides are picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Matching defaults
	v.SetDefault("matching.max_results", 10)
	v.SetDefault("matching.workers", 0)
	v.SetDefault("matching.enable_debug_logging", false)
	v.SetDefault("matching.rules_file", "")

	// Catalog defaults
	v.SetDefault("catalog.path", "data/catalog.json")
	v.SetDefault("catalog.cache_ttl", "5m")

	// Generator defaults
	v.SetDefault("generator.api_key", "")
	v.SetDefault("generator.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("generator.model", "gemini-3-flash-preview")
	v.SetDefault("generator.requests_per_minute", 60)
	v.SetDefault("generator.timeout", "30s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Generator.APIKey == "" {
		return fmt.Errorf("generator API key is required (set FRESHCART_GENERATOR_API_KEY)")
	}

	if config.Matching.MaxResults <= 0 {
		return fmt.Errorf("matching max_results must be positive, got: %d", config.Matching.MaxResults)
	}

	if config.Matching.Workers < 0 {
		return fmt.Errorf("matching workers must not be negative, got: %d", config.Matching.Workers)
	}

	if strings.TrimSpace(config.Catalog.Path) == "" {
		return fmt.Errorf("catalog path is required")
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
