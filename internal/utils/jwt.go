package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT mints the token returned by the login endpoint. No route
// requires it; clients may carry it as an opaque session handle.
func GenerateJWT(userID uint, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
