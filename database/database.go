package database

import (
	"fmt"

	"notes-app/internal/domain/notes"
	"notes-app/internal/domain/tenants"
	"notes-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the shared database handle and runs migrations. The returned
// *gorm.DB is safe for concurrent use and is held for the process lifetime;
// a failure here means the process must not start.
func Init(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for all domain models. Exported so
// tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tenants.Tenant{},
		&users.User{},
		&notes.Note{},
	)
}
