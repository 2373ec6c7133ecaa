package config

import (
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("SHOPPING_DB_PATH", "")
		t.Setenv("SHOPPING_EXPORT_DIR", "")
		t.Setenv("SHOPPING_USER_ID", "")

		cfg := NewFromEnv()
		if cfg.DatabasePath != "data/shopping.db" {
			t.Errorf("Expected default database path, got %s", cfg.DatabasePath)
		}
		if cfg.ExportDir != "exports" {
			t.Errorf("Expected default export dir, got %s", cfg.ExportDir)
		}
		if cfg.UserID != "default_user" {
			t.Errorf("Expected default user ID, got %s", cfg.UserID)
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("SHOPPING_DB_PATH", "/tmp/custom.db")
		t.Setenv("SHOPPING_EXPORT_DIR", "/tmp/out")
		t.Setenv("SHOPPING_USER_ID", "alice")

		cfg := NewFromEnv()
		if cfg.DatabasePath != "/tmp/custom.db" {
			t.Errorf("Expected overridden database path, got %s", cfg.DatabasePath)
		}
		if cfg.ExportDir != "/tmp/out" {
			t.Errorf("Expected overridden export dir, got %s", cfg.ExportDir)
		}
		if cfg.UserID != "alice" {
			t.Errorf("Expected overridden user ID, got %s", cfg.UserID)
		}
	})
}
