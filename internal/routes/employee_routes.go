package routes

import (
	"car_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func EmployeeRoutes(r *gin.Engine, gdb *gorm.DB) {
	employees := r.Group("/employees")
	{
		employees.GET("", controllers.ListEmployees(gdb))
		employees.POST("", controllers.CreateEmployee(gdb))
	}
}
