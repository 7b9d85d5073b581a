package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobtrack/internal/config"
	"jobtrack/internal/model"
)

// InitDatabase opens the PostgreSQL connection from configuration and
// returns the GORM instance. TranslateError is enabled so driver-level
// uniqueness violations surface as gorm.ErrDuplicatedKey.
func InitDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap db: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Migrate applies the schema before the server starts taking traffic.
// Callers fail fast when it errors.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.JobApply{},
		&model.MyProfile{},
		&model.MyJobPreference{},
		&model.Document{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
