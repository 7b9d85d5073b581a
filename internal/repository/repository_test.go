package repository

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobtrack/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "jobtrack.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.JobApply{},
		&model.MyProfile{},
		&model.MyJobPreference{},
		&model.Document{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func fixedClock(t time.Time) model.Clock {
	return model.FixedClock(t)
}
