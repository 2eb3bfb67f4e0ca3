package infrastructure

import (
	"fmt"
	"os"
	"time"
)

// Config holds process-wide settings. It is built once at startup and never
// mutated; handlers receive values from it through their constructors.
type Config struct {
	TelegramToken  string
	GeminiAPIKey   string
	GeminiModel    string
	Port           string
	RequestTimeout time.Duration
}

// LoadConfig reads configuration from the environment. Both secrets are
// required; startup must fail immediately without them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    "gemini-1.5-flash",
		Port:           "8080",
		RequestTimeout: 60 * time.Second,
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if timeout := os.Getenv("REQUEST_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", timeout, err)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}
