package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Database
	DBPath string

	// Snapshot slot
	SnapshotKey string

	// Save reminder
	ReminderDelay time.Duration

	// View defaults
	RecentLimit int
	ExportDir   string

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		DBPath:        getEnv("BUDGETBOK_DB_PATH", "./data/budgetbok.db"),
		SnapshotKey:   getEnv("BUDGETBOK_SNAPSHOT_KEY", "budgetbok.ledger"),
		ReminderDelay: getEnvDuration("BUDGETBOK_REMINDER_DELAY", 2*time.Minute),
		RecentLimit:   getEnvInt("BUDGETBOK_RECENT_LIMIT", 5),
		ExportDir:     getEnv("BUDGETBOK_EXPORT_DIR", "."),
		LogLevel:      getEnv("BUDGETBOK_LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if strings.TrimSpace(c.SnapshotKey) == "" {
		errors = append(errors, "snapshot key cannot be empty")
	}

	if c.ReminderDelay < 5*time.Second {
		errors = append(errors, fmt.Sprintf("invalid reminder delay %v: must be at least 5 seconds", c.ReminderDelay))
	} else if c.ReminderDelay > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid reminder delay %v: must be at most 24 hours", c.ReminderDelay))
	}

	if c.RecentLimit < 1 {
		errors = append(errors, fmt.Sprintf("invalid recent limit %d: must be at least 1", c.RecentLimit))
	} else if c.RecentLimit > 100 {
		errors = append(errors, fmt.Sprintf("invalid recent limit %d: must be at most 100", c.RecentLimit))
	}

	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if c.LogLevel == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
