package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	APIKey      string // optional; empty disables API key auth

	SavePath      string // SQLite save database path
	SaveSlot      string // save slot name, one engine per slot
	TickInterval  time.Duration
	AutosaveEvery time.Duration

	DeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		SavePath:       getEnv("SAVE_PATH", "tycoon.db"),
		SaveSlot:       getEnv("SAVE_SLOT", "default"),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", "events.deadletter"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	tickSeconds, err := getEnvInt("TICK_INTERVAL_SECONDS", 1)
	if err != nil {
		return nil, err
	}
	if tickSeconds < 1 {
		return nil, fmt.Errorf("TICK_INTERVAL_SECONDS must be >= 1, got %d", tickSeconds)
	}
	cfg.TickInterval = time.Duration(tickSeconds) * time.Second

	autosaveSeconds, err := getEnvInt("AUTOSAVE_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	if autosaveSeconds < 1 {
		return nil, fmt.Errorf("AUTOSAVE_SECONDS must be >= 1, got %d", autosaveSeconds)
	}
	cfg.AutosaveEvery = time.Duration(autosaveSeconds) * time.Second

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}
