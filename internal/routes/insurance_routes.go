package routes

import (
	"car_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InsuranceRoutes(r *gin.Engine, gdb *gorm.DB) {
	insurances := r.Group("/insurances")
	{
		insurances.GET("", controllers.ListInsurances(gdb))
		insurances.POST("", controllers.CreateInsurance(gdb))
	}
}
