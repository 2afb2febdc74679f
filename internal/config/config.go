package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment names the build flavour.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config contains process-level runtime settings.
type Config struct {
	Environment  Environment
	ConfigDir    string
	LogLevel     zerolog.Level
	TickInterval time.Duration
}

// Load reads an optional .env file and the ZONECLOCK_* environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	config := Config{
		Environment:  EnvProduction,
		ConfigDir:    getEnv("ZONECLOCK_CONFIG_DIR", ""),
		LogLevel:     zerolog.InfoLevel,
		TickInterval: time.Duration(getEnvAsInt("ZONECLOCK_TICK_MS", 1000)) * time.Millisecond,
	}

	switch env := strings.ToLower(getEnv("ZONECLOCK_ENV", string(EnvProduction))); env {
	case string(EnvDevelopment), "dev":
		config.Environment = EnvDevelopment
	case string(EnvProduction), "prod":
		config.Environment = EnvProduction
	default:
		return config, fmt.Errorf("unknown ZONECLOCK_ENV %q", env)
	}

	level, err := zerolog.ParseLevel(getEnv("ZONECLOCK_LOG_LEVEL", "info"))
	if err != nil {
		return config, fmt.Errorf("parse ZONECLOCK_LOG_LEVEL: %w", err)
	}
	config.LogLevel = level

	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	return config, nil
}

// IsDevelopment reports whether ads and other production-only behaviour are off.
func (config Config) IsDevelopment() bool {
	return config.Environment == EnvDevelopment
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
