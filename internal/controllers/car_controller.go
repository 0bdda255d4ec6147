package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car_tracker/internal/db"
	"car_tracker/internal/models"
)

// --- Helper Structs for Request Bodies ---

// carInput is the accepted shape for creating a car. Unknown fields in the
// body are ignored.
type carInput struct {
	PlateNumber  string       `json:"plate_number" binding:"required"`
	Model        string       `json:"model" binding:"required"`
	AssignedID   *uint        `json:"assigned_id"`
	InsuranceDue *models.Date `json:"insurance_due"`
	Notes        *string      `json:"notes"`
	OwnerName    *string      `json:"owner_name"`
	UserID       *uint        `json:"user_id"`
}

// carUpdateInput carries a partial update. Every field tracks whether it
// appeared in the body: an omitted field keeps the stored value, an
// explicit null clears a nullable column.
type carUpdateInput struct {
	PlateNumber  models.Field[string]      `json:"plate_number"`
	Model        models.Field[string]      `json:"model"`
	AssignedID   models.Field[uint]        `json:"assigned_id"`
	InsuranceDue models.Field[models.Date] `json:"insurance_due"`
	Notes        models.Field[string]      `json:"notes"`
	OwnerName    models.Field[string]      `json:"owner_name"`
	UserID       models.Field[uint]        `json:"user_id"`
}

// apply merges the supplied fields onto car, field by field. plate_number
// and model are NOT NULL columns, so a null there is treated as omitted.
func (in carUpdateInput) apply(car *models.Car) {
	if in.PlateNumber.Valid {
		car.PlateNumber = in.PlateNumber.Value
	}
	if in.Model.Valid {
		car.Model = in.Model.Value
	}
	if in.AssignedID.Set {
		car.AssignedID = in.AssignedID.Ptr()
	}
	if in.InsuranceDue.Set {
		car.InsuranceDue = in.InsuranceDue.Ptr()
	}
	if in.Notes.Set {
		car.Notes = in.Notes.Ptr()
	}
	if in.OwnerName.Set {
		car.OwnerName = in.OwnerName.Ptr()
	}
	if in.UserID.Set {
		car.UserID = in.UserID.Ptr()
	}
}

// --- Car Controller Functions ---

// ListCars returns every car, ordered by id so the sequence is stable for
// a given store state.
func ListCars(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cars := make([]models.Car, 0)
		if err := gdb.Order("id").Find(&cars).Error; err != nil {
			logrus.WithError(err).Error("Error listing cars from database")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing cars: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, cars)
	}
}

// CreateCar stores a new car. A duplicate plate number is a conflict, not
// a server error.
func CreateCar(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input carInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car input: " + err.Error()})
			return
		}

		car := models.Car{
			PlateNumber:  input.PlateNumber,
			Model:        input.Model,
			AssignedID:   input.AssignedID,
			InsuranceDue: input.InsuranceDue,
			Notes:        input.Notes,
			OwnerName:    input.OwnerName,
			UserID:       input.UserID,
		}

		if err := gdb.Create(&car).Error; err != nil {
			if db.IsUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "plate_number already exists"})
				return
			}
			logrus.WithError(err).Error("Error creating car")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, car)
	}
}

// UpdateCar applies a partial update to the car with the given id.
func UpdateCar(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var car models.Car
		if err := gdb.First(&car, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
			}
			return
		}

		var input carUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
			return
		}

		input.apply(&car)

		// Save writes the full row, including cleared nullable columns
		if err := gdb.Save(&car).Error; err != nil {
			if db.IsUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "plate_number already exists"})
				return
			}
			logrus.WithError(err).Error("Error updating car")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, car)
	}
}

// DeleteCar removes the car with the given id. Deletion is physical;
// insurance rows that still reference the car are detached in the same
// transaction so no request sees a policy pointing at a missing car.
func DeleteCar(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var car models.Car
		if err := gdb.First(&car, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
			}
			return
		}

		err := gdb.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Insurance{}).Where("car_id = ?", car.ID).Update("car_id", nil).Error; err != nil {
				return err
			}
			return tx.Delete(&car).Error
		})
		if err != nil {
			logrus.WithError(err).Error("Error deleting car")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car: " + err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
