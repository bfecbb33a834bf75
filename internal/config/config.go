// Package config loads application configuration from the environment.
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Backend names accepted by TWOTA_STORAGE_BACKEND.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the runtime settings of the state store and its CLI.
type Config struct {
	AppEnv   string `env:"TWOTA_APP_ENV" envDefault:"local"`
	LogLevel string `env:"TWOTA_LOG_LEVEL" envDefault:"info"`

	StorageBackend string `env:"TWOTA_STORAGE_BACKEND" envDefault:"file"`
	StoragePath    string `env:"TWOTA_STORAGE_PATH" envDefault:"2ta-auth-store.json"`

	ToastDuration time.Duration `env:"TWOTA_TOAST_DURATION" envDefault:"3200ms"`
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load for program entry points.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
