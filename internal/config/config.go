// Package config loads CLI configuration from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration.
// Environment variables use the AIEXAM_ prefix, e.g. AIEXAM_API_URL.
type Config struct {
	APIURL      string        `envconfig:"API_URL" default:"http://localhost:3001/api"`
	TokenDB     string        `envconfig:"TOKEN_DB"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT"`
	Debug       bool          `envconfig:"DEBUG"`

	// LogLevel comes from the unprefixed LOG_LEVEL variable.
	LogLevel zerolog.Level `ignored:"true"`
}

// Load reads envFiles (".env" when none are given; missing files are
// skipped) without overriding variables already set, then parses the
// environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("AIEXAM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.TokenDB == "" {
		cfg.TokenDB = defaultTokenDB()
	}
	cfg.LogLevel = getLogLevel()
	return &cfg, nil
}

// Init initializes logging to w from the configuration. Debug forces the
// debug level regardless of LOG_LEVEL.
func (c *Config) Init(w io.Writer) {
	InitLogger(w)
	level := c.LogLevel
	if c.Debug {
		level = zerolog.DebugLevel
	}
	SetLogLevel(level)

	log.Debug().
		Str("api_url", c.APIURL).
		Str("token_db", c.TokenDB).
		Dur("http_timeout", c.HTTPTimeout).
		Str("log_level", c.LogLevel.String()).
		Msg("configuration loaded")
}

func defaultTokenDB() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".aiexam", "local.db")
	}
	return filepath.Join(home, ".aiexam", "local.db")
}

// getLogLevel parses log level from environment or returns default.
func getLogLevel() zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
