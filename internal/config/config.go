package config

import (
	"fmt"
	"os"
	"time"
)

const (
	DefaultVerifyURL    = "https://www.google.com/recaptcha/api/siteverify"
	DefaultListenAddr   = ":3000"
	DefaultAllowOrigins = "http://localhost:3000"
)

// Config - service configuration, built once at startup and passed down
type Config struct {
	ListenAddr   string
	AllowOrigins string

	Recaptcha RecaptchaConfig
}

// RecaptchaConfig - settings for the siteverify call
type RecaptchaConfig struct {
	SecretKey string
	VerifyURL string
	// Timeout of 0 leaves the http.Client default in place
	Timeout time.Duration
}

// Load reads configuration from environment variables.
// A missing secret is not an error here: requests fail with 500 until it is set.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:   getEnvOrDefault("LISTEN_ADDR", DefaultListenAddr),
		AllowOrigins: getEnvOrDefault("CORS_ALLOW_ORIGINS", DefaultAllowOrigins),
		Recaptcha: RecaptchaConfig{
			SecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
			VerifyURL: getEnvOrDefault("RECAPTCHA_VERIFY_URL", DefaultVerifyURL),
		},
	}

	if raw := os.Getenv("RECAPTCHA_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RECAPTCHA_TIMEOUT %q: %w", raw, err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("RECAPTCHA_TIMEOUT must not be negative, got %s", timeout)
		}
		cfg.Recaptcha.Timeout = timeout
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
