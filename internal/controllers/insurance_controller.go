package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car_tracker/internal/models"
)

// insuranceInput requires car_id and company. The referenced car is not
// checked for existence; the column is nullable and detaches on car
// deletion.
type insuranceInput struct {
	CarID     uint         `json:"car_id" binding:"required"`
	Company   string       `json:"company" binding:"required"`
	StartDate *models.Date `json:"start_date"`
	EndDate   *models.Date `json:"end_date"`
	Premium   *int         `json:"premium"`
	Status    *string      `json:"status"`
}

func ListInsurances(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		insurances := make([]models.Insurance, 0)
		if err := gdb.Order("id").Find(&insurances).Error; err != nil {
			logrus.WithError(err).Error("Error listing insurances from database")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing insurances: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, insurances)
	}
}

func CreateInsurance(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input insuranceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid insurance input: " + err.Error()})
			return
		}

		insurance := models.Insurance{
			CarID:     &input.CarID,
			Company:   input.Company,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Premium:   input.Premium,
			Status:    input.Status,
		}

		if err := gdb.Create(&insurance).Error; err != nil {
			logrus.WithError(err).Error("Error creating insurance")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create insurance: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, insurance)
	}
}
