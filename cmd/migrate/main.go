package main

import (
	"os"

	logrus "github.com/sirupsen/logrus"

	"car_tracker/internal/config"
	"car_tracker/internal/db"
)

// Entry point for schema migration. Running with a "down" argument
// reverts every applied migration.
func main() {
	cfg := config.LoadConfig()

	gdb, err := config.OpenDB(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "down" {
		if err := db.Rollback(gdb); err != nil {
			logrus.Fatalf("rollback failed: %v", err)
		}
		logrus.Info("Rollback completed.")
		return
	}

	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
