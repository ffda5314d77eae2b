// ABOUTME: Configuration loader for the sizing analyzer service
// ABOUTME: Loads settings and heap flag overrides from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/markalston/heap-sizing-analyzer/models"
)

type Config struct {
	// Server
	Port            string
	ShutdownSeconds int // graceful shutdown budget (default: 10)

	// Heap flag overrides supplied through the environment. These are
	// explicit operator choices and are applied with command-line origin.
	FlagOverrides []models.FlagUpdate
}

// envFlags maps environment variable names to the heap flags they override.
var envFlags = []struct {
	env  string
	flag string
}{
	{"HEAP_MIN_SIZE", models.FlagMinHeapSize},
	{"HEAP_INITIAL_SIZE", models.FlagInitialHeapSize},
	{"HEAP_MAX_SIZE", models.FlagMaxHeapSize},
	{"HEAP_NEW_SIZE", models.FlagNewSize},
	{"HEAP_OLD_SIZE", models.FlagOldSize},
	{"HEAP_MAX_NEW_SIZE", models.FlagMaxNewSize},
	{"HEAP_ALIGNMENT", models.FlagHeapAlignment},
	{"HEAP_MIN_DELTA", models.FlagMinHeapDeltaBytes},
}

func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		ShutdownSeconds: getEnvInt("SHUTDOWN_SECONDS", 10),
	}

	for _, ef := range envFlags {
		value := os.Getenv(ef.env)
		if value == "" {
			continue
		}
		bytes, err := flags.ParseSize(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ef.env, err)
		}
		cfg.FlagOverrides = append(cfg.FlagOverrides, models.FlagUpdate{Name: ef.flag, Bytes: bytes})
	}

	// NewRatio is a bare proportion, not a byte count.
	if value := os.Getenv("HEAP_NEW_RATIO"); value != "" {
		ratio, err := strconv.ParseUint(value, 10, 64)
		if err != nil || ratio < 1 {
			return nil, fmt.Errorf("HEAP_NEW_RATIO must be a positive integer, got %q", value)
		}
		cfg.FlagOverrides = append(cfg.FlagOverrides, models.FlagUpdate{Name: models.FlagNewRatio, Bytes: ratio})
	}

	if cfg.ShutdownSeconds < 1 || cfg.ShutdownSeconds > 300 {
		return nil, fmt.Errorf("SHUTDOWN_SECONDS must be between 1 and 300, got %d", cfg.ShutdownSeconds)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
