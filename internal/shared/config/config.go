package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// CORS
	AllowedOrigins []string

	// Logging
	LogLevel string

	// Completion provider
	OpenAI OpenAIConfig
}

// OpenAIConfig holds the completion provider configuration
type OpenAIConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	ProxyURL  string
	MaxTokens int
	Timeout   time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 45*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		AllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{}),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		OpenAI: OpenAIConfig{
			APIKey:    strings.TrimSpace(getEnv("OPENAI_API_KEY", "")),
			Model:     getEnv("OPENAI_MODEL", "gpt-3.5-turbo-instruct"),
			BaseURL:   getEnv("OPENAI_BASE_URL", ""),
			ProxyURL:  getEnv("OPENAI_PROXY_URL", ""),
			MaxTokens: getIntEnv("OPENAI_MAX_TOKENS", 120),
			Timeout:   getDurationEnv("OPENAI_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate reports configuration that would make the server unusable
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.OpenAI.ProxyURL != "" {
		if _, err := url.Parse(c.OpenAI.ProxyURL); err != nil {
			return fmt.Errorf("OPENAI_PROXY_URL is invalid: %w", err)
		}
	}
	if c.OpenAI.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive")
	}
	return nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix
}
