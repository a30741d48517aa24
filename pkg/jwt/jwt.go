package jwt

import (
	"gameshelf/backend/internal/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAdminToken creates a new JWT carrying the admin role.
func GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
