package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// WorkerCount bounds the number of file pairs compared concurrently.
	WorkerCount int
	// DatabaseURL enables the run-history store when non-empty.
	DatabaseURL string
	// LogLevel is a zerolog level name.
	LogLevel string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		WorkerCount: getEnvInt("L10NLINT_WORKERS", 8),
		DatabaseURL: getEnv("L10NLINT_DATABASE_URL", ""),
		LogLevel:    getEnv("L10NLINT_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
