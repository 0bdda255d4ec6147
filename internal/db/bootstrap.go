package db

import (
	"errors"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car_tracker/internal/models"
)

// EnsureAdmin guarantees the administrator login exists with the
// configured password. It runs on every start: a missing account is
// created, a drifted password is rewritten. Safe to call repeatedly.
func EnsureAdmin(gdb *gorm.DB, username, password string) error {
	var admin models.User
	err := gdb.Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.User{Username: username, Password: password}
		if err := gdb.Create(&admin).Error; err != nil {
			return err
		}
		logrus.WithField("username", username).Info("created admin user")
		return nil
	}
	if err != nil {
		return err
	}

	if admin.Password != password {
		if err := gdb.Model(&admin).Update("password", password).Error; err != nil {
			return err
		}
		logrus.WithField("username", username).Warn("admin password drifted, reset to configured value")
	}
	return nil
}
