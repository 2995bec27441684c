package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	CMSBaseURL     string
	CMSAPIToken    string
	AllowedOrigins []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env usually doesn't exist and we rely on system
	// environment variables, so a missing file is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		CMSBaseURL:  os.Getenv("CMS_BASE_URL"),
		CMSAPIToken: os.Getenv("CMS_API_TOKEN"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.CMSBaseURL == "" {
		cfg.CMSBaseURL = "http://localhost:1337"
	}

	return cfg, nil
}
