package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	API         APIConfig
	CORS        CORSConfig
	Log         LogConfig
	Client      ClientConfig
}

// APIConfig describes the service identity reported by the health route
type APIConfig struct {
	Name       string `validate:"required"`
	Version    string `validate:"required"`
	HealthPath string `validate:"required,startswith=/"`
}

// CORSConfig holds the header values attached to every response
type CORSConfig struct {
	AllowOrigin  string `validate:"required"`
	AllowMethods string `validate:"required"`
	AllowHeaders string `validate:"required"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"required,oneof=json text"`
}

// ClientConfig holds settings for the API client used by cmd/apitester
type ClientConfig struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := fromViper(v)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		API: APIConfig{
			Name:       v.GetString("API_NAME"),
			Version:    v.GetString("API_VERSION"),
			HealthPath: v.GetString("HEALTH_PATH"),
		},
		CORS: CORSConfig{
			AllowOrigin:  v.GetString("CORS_ALLOW_ORIGIN"),
			AllowMethods: v.GetString("CORS_ALLOW_METHODS"),
			AllowHeaders: v.GetString("CORS_ALLOW_HEADERS"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Client: ClientConfig{
			BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			Timeout: v.GetDuration("CLIENT_TIMEOUT"),
		},
	}
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8081")
	v.SetDefault("API_NAME", "real-api")
	v.SetDefault("API_VERSION", "1.0.0")
	v.SetDefault("HEALTH_PATH", "/health")
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("CORS_ALLOW_METHODS", "GET, POST, OPTIONS")
	v.SetDefault("CORS_ALLOW_HEADERS", "Content-Type")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("API_BASE_URL", "http://localhost:8081")
	v.SetDefault("CLIENT_TIMEOUT", 10*time.Second)
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
