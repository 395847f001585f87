// Package config loads the ambient process configuration from environment
// variables, generalizing the teacher's LoadConfig idiom (internal/game's
// YAML-backed boot config) to the env-var surface this service needs.
package config

import "os"

// Config is the process-wide ambient configuration, loaded once at boot.
type Config struct {
	// WSHost/WSPort bind the WebSocket listener.
	WSHost string
	WSPort string

	// StoreProjectPath names the SQLite file the concrete StateStore opens.
	StoreProjectPath string
	// StoreDatabaseID selects the store adapter; "debug" (case-insensitive)
	// selects the null adapter, matching original_source's firestore.rs.
	StoreDatabaseID string

	// CatalogSeedFile optionally points at a YAML file extending the
	// embedded trade catalog at boot.
	CatalogSeedFile string

	// LogLevel is passed straight to internal/logging.New.
	LogLevel string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the ambient configuration from the environment, applying the
// same defaults a fresh checkout boots with.
func Load() Config {
	return Config{
		WSHost:           getenv("WS_HOST", "0.0.0.0"),
		WSPort:           getenv("WS_PORT", "8081"),
		StoreProjectPath: getenv("STORE_PROJECT", "tradehub.db"),
		StoreDatabaseID:  getenv("STORE_DATABASE_ID", ""),
		CatalogSeedFile:  getenv("CATALOG_SEED_FILE", ""),
		LogLevel:         getenv("LOG_LEVEL", "info"),
	}
}
