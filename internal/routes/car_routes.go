package routes

import (
	"car_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CarRoutes(r *gin.Engine, gdb *gorm.DB) {
	cars := r.Group("/cars")
	{
		cars.GET("", controllers.ListCars(gdb))
		cars.POST("", controllers.CreateCar(gdb))
		cars.PUT("/:id", controllers.UpdateCar(gdb))
		cars.DELETE("/:id", controllers.DeleteCar(gdb))
	}
}
