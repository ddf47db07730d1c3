package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"sosmedku_backend/internals/configs"
)

const tokenTTL = 24 * time.Hour

// GenerateToken membuat access token HS256 dengan klaim user_id
func GenerateToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
