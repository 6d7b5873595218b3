package database

import (
	"errors"
	"fmt"

	"ZencrowWebsite/database/migrations"
	"github.com/golang-migrate/migrate/v4"
	migrateDB "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

func newMigrator(db *sqlx.DB) (*migrate.Migrate, error) {
	var (
		driver migrateDB.Driver
		err    error
	)

	name := db.DriverName()
	switch name {
	case DriverPostgres:
		driver, err = postgres.WithInstance(db.DB, &postgres.Config{})
	case DriverSQLite:
		driver, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	default:
		return nil, fmt.Errorf("no migrations for driver %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := iofs.New(migrations.FS, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, name, driver)
}

// MigrateUp applies every pending migration. It reports applied=false when
// the schema was already current.
func MigrateUp(db *sqlx.DB) (applied bool, err error) {
	m, err := newMigrator(db)
	if err != nil {
		return false, err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("failed to migrate: %w", err)
	}
	return true, nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(db *sqlx.DB, steps int) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back: %w", err)
	}
	return nil
}
