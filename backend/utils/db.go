package utils

import (
	"ramadantracker/backend/config"
	"ramadantracker/backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the local sqlite database and migrates the snapshot table.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.TrackerSnapshot{}); err != nil {
		return nil, err
	}

	return db, nil
}
