package config

import (
	"os"
)

const (
	defaultDatabasePath = "data/shopping.db"
	defaultExportDir    = "exports"
	defaultUserID       = "default_user"
)

// Config holds the configuration for the CLI collaborator. The core pipeline
// never reads the environment; everything here belongs to the boundary.
type Config struct {
	DatabasePath string
	ExportDir    string
	UserID       string
}

// NewFromEnv creates a Config from environment variables, applying defaults
// for anything unset.
func NewFromEnv() *Config {
	cfg := &Config{
		DatabasePath: defaultDatabasePath,
		ExportDir:    defaultExportDir,
		UserID:       defaultUserID,
	}

	if v := os.Getenv("SHOPPING_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SHOPPING_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("SHOPPING_USER_ID"); v != "" {
		cfg.UserID = v
	}

	return cfg
}
