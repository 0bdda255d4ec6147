package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car_tracker/internal/models"
)

type employeeInput struct {
	Name  string  `json:"name" binding:"required"`
	Role  string  `json:"role" binding:"required"`
	Phone *string `json:"phone"`
}

func ListEmployees(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		employees := make([]models.Employee, 0)
		if err := gdb.Order("id").Find(&employees).Error; err != nil {
			logrus.WithError(err).Error("Error listing employees from database")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing employees: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, employees)
	}
}

// CreateEmployee stores a new employee. There is no uniqueness constraint
// on employees.
func CreateEmployee(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input employeeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee input: " + err.Error()})
			return
		}

		employee := models.Employee{
			Name:  input.Name,
			Role:  input.Role,
			Phone: input.Phone,
		}

		if err := gdb.Create(&employee).Error; err != nil {
			logrus.WithError(err).Error("Error creating employee")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, employee)
	}
}
