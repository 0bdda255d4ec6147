package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car_tracker/internal/config"
)

// SetupRouter wires every route group onto a fresh engine. The database
// handle is threaded through to each handler factory; nothing here keeps
// state of its own.
func SetupRouter(gdb *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// Recovery + request logging middleware
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Car Insurance Tracker API running"})
	})

	AuthRoutes(r, gdb, cfg.JWTSecret)
	CarRoutes(r, gdb)
	EmployeeRoutes(r, gdb)
	InsuranceRoutes(r, gdb)

	return r
}
