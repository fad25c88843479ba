package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	DiscordToken string

	// Riot API
	RiotAPIKey string

	// Poll and snapshot cadences
	PollInterval   time.Duration
	SaveInterval   time.Duration
	BackupInterval time.Duration

	// Snapshot destinations
	DatabasePath string
	BackupPath   string

	// When true, a roster snapshot that fails to load aborts startup instead
	// of starting with an empty roster.
	StrictLoad bool

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_BOT_TOKEN"),
		RiotAPIKey:   os.Getenv("RIOT_API_KEY"),
		DatabasePath: getEnvOrDefault("DATABASE_PATH", "./data/database.json"),
		BackupPath:   getEnvOrDefault("BACKUP_PATH", "./data/backup-database.json"),
		StrictLoad:   getEnvOrDefault("ROSTER_STRICT_LOAD", "false") == "true",
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.PollInterval, err = secondsEnv("POLL_INTERVAL_SECONDS", 15); err != nil {
		return nil, err
	}
	if cfg.SaveInterval, err = secondsEnv("SAVE_INTERVAL_SECONDS", 300); err != nil {
		return nil, err
	}
	if cfg.BackupInterval, err = secondsEnv("BACKUP_INTERVAL_SECONDS", 86400); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}
	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	return cfg, nil
}

func secondsEnv(key string, defaultSeconds int) (time.Duration, error) {
	raw := getEnvOrDefault(key, strconv.Itoa(defaultSeconds))
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return time.Duration(seconds) * time.Second, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
