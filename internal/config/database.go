package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB opens the database selected by the configuration. The returned
// handle is the only store connection in the process; main hands it to the
// router and the bootstrap step instead of parking it in a package global.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "", "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})

	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimeZone,
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}
