package main

import (
	"log"
	"net/http"

	"car_tracker/internal/config"
	"car_tracker/internal/db"
	"car_tracker/internal/logger"
	"car_tracker/internal/middleware"
	"car_tracker/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.LoadConfig()

	// Connect to the database
	gdb, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Schema first, then the admin guarantee
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := db.EnsureAdmin(gdb, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter(gdb, cfg)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :" + cfg.AppPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.AppPort, handler))
}
