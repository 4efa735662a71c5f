package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvDBPath      = "FLAPPY_DB"
	EnvLogLevel    = "FLAPPY_LOG_LEVEL"
	EnvTickRate    = "FLAPPY_TICK_RATE"
	EnvSSHAddress  = "FLAPPY_SSH_ADDRESS"
	EnvHTTPAddress = "FLAPPY_HTTP_ADDRESS"
)

// LoadDotEnv loads variables from the given .env files (default ./.env)
// without overriding ones already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any FLAPPY_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTickRate, err)
		}
		cfg.TickRate = rate
	}
	if v := os.Getenv(EnvSSHAddress); v != "" {
		cfg.SSH.Address = v
	}
	if v := os.Getenv(EnvHTTPAddress); v != "" {
		cfg.HTTP.Address = v
	}
	return nil
}
