package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	Admin    AdminConfig
	Catalog  CatalogConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig points at the product database. An empty URI selects the
// in-memory store, which is only suitable for local development.
type MongoConfig struct {
	URI      string
	Database string
}

// AdminConfig carries the admin credentials and the shared secret that
// authorizes catalog writes. The secret is injected here rather than
// compared against a hardcoded value so the trust boundary stays testable.
type AdminConfig struct {
	Token             string
	Username          string
	Password          string
	SessionSecret     string
	SessionTTLMinutes int
}

// CatalogConfig holds storefront presentation settings: the WhatsApp
// number order links point at and the hosts product images may come from.
type CatalogConfig struct {
	WhatsAppNumber    string
	AllowedImageHosts []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DATABASE", "esha_beddings"),
		},
		Admin: AdminConfig{
			Token:             getEnv("ADMIN_TOKEN", ""),
			Username:          getEnv("ADMIN_USERNAME", "admin"),
			Password:          getEnv("ADMIN_PASSWORD", ""),
			SessionSecret:     getEnv("SESSION_SECRET", ""),
			SessionTTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 120),
		},
		Catalog: CatalogConfig{
			WhatsAppNumber:    getEnv("WHATSAPP_NUMBER", "2349017912829"),
			AllowedImageHosts: getEnvAsSlice("ALLOWED_IMAGE_HOSTS", []string{"res.cloudinary.com"}),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Admin.Token == "" {
		return fmt.Errorf("ADMIN_TOKEN is required")
	}

	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	if c.Admin.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}

	if c.Admin.SessionTTLMinutes <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
