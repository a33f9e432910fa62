package db

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "hckonnect/hubgate/internal/models/gorm"
)

var HubDB *gorm.DB

// InitSQLite opens the embedded database that holds gateway-local state
// (feed preferences). Path comes from HUBGATE_DB_PATH, defaulting to a file
// next to the binary.
func InitSQLite() (*gorm.DB, error) {
	path := os.Getenv("HUBGATE_DB_PATH")
	if path == "" {
		path = "hubgate.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.FeedPreference{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	HubDB = db
	return db, nil
}
