package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Fantasim/xmrvault/internal/mnemonic"
	"github.com/Fantasim/xmrvault/internal/wordlist"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	LogLevel string `envconfig:"XMRVAULT_LOG_LEVEL" default:"info"`
	LogDir   string `envconfig:"XMRVAULT_LOG_DIR" default:"./logs"`

	// Defaults for wallet creation; individual commands may override by flag.
	Language   string `envconfig:"XMRVAULT_LANGUAGE" default:"english"`
	WordsCount int    `envconfig:"XMRVAULT_WORDS" default:"25"`
}

// Load reads configuration from .env file (if present) then from environment
// variables. Environment variables override .env values.
func Load() (*Config, error) {
	// godotenv does NOT override already-set env vars, so real environment
	// variables take precedence over .env values.
	envFiles := []string{".env"}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				slog.Warn("failed to load .env file", "file", f, "error", err)
			} else {
				slog.Info("loaded .env file", "file", f)
			}
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if !wordlist.Valid(wordlist.Language(c.Language)) {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidConfig, c.Language)
	}
	if !mnemonic.WordsCount(c.WordsCount).Valid() {
		return fmt.Errorf("%w: words count must be one of 12, 13, 24, 25, got %d", ErrInvalidConfig, c.WordsCount)
	}
	return nil
}
