// internal/config/config.go
//
// Variables (defaults in the Config tags):
//   - LOG_LEVEL, HANGMAN_STORE (file|sqlite), HANGMAN_SAVE_DIR, HANGMAN_DB_PATH
//   - HANGMAN_WORDS_FILE (empty means the embedded list)
//   - HANGMAN_COUNTDOWN_STEP, HANGMAN_HTTP_ADDR

// Package config loads process settings from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Save backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

type Config struct {
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	Store         string        `env:"HANGMAN_STORE" envDefault:"file"`
	SaveDir       string        `env:"HANGMAN_SAVE_DIR" envDefault:"saved_games"`
	DBPath        string        `env:"HANGMAN_DB_PATH" envDefault:"data/hangman.db"`
	WordsFile     string        `env:"HANGMAN_WORDS_FILE"`
	CountdownStep time.Duration `env:"HANGMAN_COUNTDOWN_STEP" envDefault:"1s"`
	HTTPAddr      string        `env:"HANGMAN_HTTP_ADDR" envDefault:":5175"`
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("HANGMAN_STORE must be %q or %q, got %q", StoreFile, StoreSQLite, c.Store)
	}
	if c.CountdownStep < 0 {
		return fmt.Errorf("HANGMAN_COUNTDOWN_STEP must not be negative")
	}
	return nil
}
