package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cajafuerte/arqueo/internal/config"
	"github.com/cajafuerte/arqueo/internal/models"
)

var DB *gorm.DB

// Initialize opens the per-user store and runs migrations.
func Initialize() error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("failed to resolve arqueo directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create arqueo directory: %w", err)
	}
	return Open(filepath.Join(dir, "arqueo.db"))
}

// Open connects to the store at the given path (":memory:" in tests) and
// runs migrations.
func Open(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// runMigrations creates/updates the local schema. The store only holds
// client-owned state: staged movements and the last-known session snapshot.
func runMigrations() error {
	return DB.AutoMigrate(
		&models.PendingMovement{},
		&models.ArcoSnapshot{},
	)
}

// Close closes the store connection.
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
