package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFS embed.FS

// Migrate applies every pending schema migration for the dialect behind
// gdb. Already-applied versions are skipped, so the server can run this
// unconditionally on start.
func Migrate(gdb *gorm.DB) error {
	return run(gdb, false)
}

// Rollback reverts all applied migrations.
func Rollback(gdb *gorm.DB) error {
	return run(gdb, true)
}

func run(gdb *gorm.DB, down bool) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}

	var (
		dialect = gdb.Dialector.Name()
		drv     database.Driver
		dir     string
	)
	switch dialect {
	case "sqlite", "sqlite3":
		drv, err = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
		dir = "migrations/sqlite"
	case "postgres":
		drv, err = migratepg.WithInstance(sqlDB, &migratepg.Config{})
		dir = "migrations/postgres"
	default:
		return fmt.Errorf("no migrations for dialect %q", dialect)
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrationFS, dir)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, drv)
	if err != nil {
		return err
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
