package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sosmedku_backend/internals/configs"
)

func TestGenerateTokenCarriesUserID(t *testing.T) {
	configs.JWTSecret = "test-secret"

	tokenString, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	uid, ok := claims["user_id"].(float64)
	require.True(t, ok)
	assert.Equal(t, int64(42), int64(uid))
	assert.Contains(t, claims, "exp")
}
