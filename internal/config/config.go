// Package config loads application settings from the environment.
package config

import (
	"os"
	"time"
)

// Config is read once at startup and treated as immutable.
type Config struct {
	Port          string
	DBPath        string
	TemplateDir   string
	SessionTTL    time.Duration
	SecureCookies bool
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "blog.db"),
		TemplateDir:   getEnv("TEMPLATE_DIR", "web/templates"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
