package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort           string
	DBPath            string
	LogLevel          string
	LogFormat         string
	PixabayAPIKey     string
	PexelsAPIKey      string
	UnsplashAccessKey string
	CollectionTarget  int
	CollectDelay      time.Duration
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates numeric fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
// API keys are optional: a source without a key is skipped at collection time
// rather than failing startup.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:           getEnv("API_PORT", "9000"),
		DBPath:            getEnv("DB_PATH", "./data/photolib.db"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		PixabayAPIKey:     getEnv("PIXABAY_API_KEY", ""),
		PexelsAPIKey:      getEnv("PEXELS_API_KEY", ""),
		UnsplashAccessKey: getEnv("UNSPLASH_ACCESS_KEY", ""),
	}

	targetStr := getEnv("COLLECTION_TARGET", "150000")
	target, err := strconv.Atoi(targetStr)
	if err != nil {
		return nil, fmt.Errorf("COLLECTION_TARGET must be a valid integer: %w", err)
	}
	if target <= 0 {
		return nil, fmt.Errorf("COLLECTION_TARGET must be greater than 0")
	}
	cfg.CollectionTarget = target

	delayStr := getEnv("COLLECT_DELAY", "1s")
	delay, err := time.ParseDuration(delayStr)
	if err != nil {
		return nil, fmt.Errorf("COLLECT_DELAY must be a valid duration: %w", err)
	}
	if delay < 0 {
		return nil, fmt.Errorf("COLLECT_DELAY must not be negative")
	}
	cfg.CollectDelay = delay

	// Create the data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
