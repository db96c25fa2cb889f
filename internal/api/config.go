package api

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds platform API configuration.
type Config struct {
	// BaseURL is the platform API root, e.g. "https://api.quizflow.app".
	BaseURL string

	// Token is the bearer token for authenticated calls. Empty means
	// the session is anonymous: answers are evaluated locally but never
	// transmitted.
	Token string

	// Timeout bounds each resolution fetch. A request that exceeds it
	// is treated as failed, not retried. Default: 15s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://api.quizflow.app",
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("QUIZFLOW_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("QUIZFLOW_TOKEN"); t != "" {
		cfg.Token = t
	}
	if d := os.Getenv("QUIZFLOW_API_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed > 0 {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("QUIZFLOW_API_URL is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("API URL must be http(s): %q", c.BaseURL)
	}
	return nil
}
