package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car_tracker/internal/db"
	"car_tracker/internal/models"
	"car_tracker/internal/utils"
)

type credentialsInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates a login. The store's unique constraint decides the
// winner when two registrations race on the same username.
func RegisterUser(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input credentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := models.User{
			Username: input.Username,
			Password: input.Password,
		}

		if err := gdb.Create(&user).Error; err != nil {
			if db.IsUniqueViolation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			logrus.WithError(err).Error("Error creating user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// LoginUser matches the credentials against the users table and returns
// the record with a session token. An unknown username and a wrong
// password produce the same response so neither case leaks.
func LoginUser(gdb *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body credentialsInput
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := gdb.Where("username = ?", body.Username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
			}
			return
		}

		if user.Password != body.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user,
		})
	}
}
