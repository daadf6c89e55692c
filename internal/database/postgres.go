package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arkadyvolkov/nutrition-helper/internal/config"
	"github.com/arkadyvolkov/nutrition-helper/internal/logger"
)

// ProfileRecord stores one user's profile as a JSON document.
type ProfileRecord struct {
	gorm.Model
	UserID string `gorm:"uniqueIndex;not null"`
	Data   string `gorm:"type:jsonb;not null"`
}

// DailyLogRecord stores one user's food log for one calendar date as a
// JSON document. Absence of a record is an empty log.
type DailyLogRecord struct {
	gorm.Model
	UserID  string `gorm:"not null;uniqueIndex:idx_user_date"`
	DateKey string `gorm:"not null;uniqueIndex:idx_user_date"` // YYYY-MM-DD
	Entries string `gorm:"type:jsonb;not null"`
}

// NewPostgresDB opens the connection and migrates the document tables.
func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&ProfileRecord{}, &DailyLogRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	logger.Info("database connection established and migrations completed")
	return db, nil
}
