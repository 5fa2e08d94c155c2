// Package cli is the thin terminal view layer: startup wiring, input
// parsing and the single-threaded event loop that drives the ledger.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"budgetbok/internal/config"
	"budgetbok/internal/log"
	"budgetbok/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level
// and installs it as the process default.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.ParseLevel(level))
	log.SetDefault(logger)
	return logger
}

// ValidateConfig validates the already-loaded configuration and exits
// the process on failure. Loading happens before logger setup because
// the log level itself comes from the config.
func ValidateConfig(logger *log.Logger, cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
}

// InitStore opens the snapshot store at the given path.
// Returns the store or exits the process on failure.
func InitStore(logger *log.Logger, dbPath string) *storage.SnapshotStore {
	store, err := storage.NewSnapshotStore(dbPath)
	if err != nil {
		logger.Error("Failed to initialize snapshot store", log.FieldError, err, log.FieldPath, dbPath)
		os.Exit(1)
	}
	return store
}
