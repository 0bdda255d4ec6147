package routes

import (
	"car_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRoutes(r *gin.Engine, gdb *gorm.DB, jwtSecret string) {
	r.POST("/users", controllers.RegisterUser(gdb))
	r.POST("/login", controllers.LoginUser(gdb, jwtSecret))
}
