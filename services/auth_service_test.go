package services

import (
	"gin-foody/models"
	"gin-foody/repositories"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T) IAuthService {
	t.Helper()
	os.Setenv("SECRET_KEY", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BlacklistedToken{}))

	return NewAuthService(repositories.NewTokenRepository(db))
}

func TestCreateTokenAndVerify(t *testing.T) {
	service := newTestAuthService(t)

	token, err := service.CreateToken(map[string]interface{}{"email": "user@example.com"})
	require.NoError(t, err)
	require.NotNil(t, token)

	claims, err := service.VerifyToken(*token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", ClaimsEmail(claims))

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), int64(exp), 5)
}

func TestVerifyTamperedToken(t *testing.T) {
	service := newTestAuthService(t)

	token, err := service.CreateToken(map[string]interface{}{"email": "user@example.com"})
	require.NoError(t, err)

	tampered := (*token)[:len(*token)-2] + "xx"
	_, err = service.VerifyToken(tampered)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	service := newTestAuthService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(os.Getenv("SECRET_KEY")))
	require.NoError(t, err)

	_, err = service.VerifyToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	service := newTestAuthService(t)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := foreign.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = service.VerifyToken(tokenString)
	assert.Error(t, err)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	service := newTestAuthService(t)

	token, err := service.CreateToken(map[string]interface{}{"email": "user@example.com"})
	require.NoError(t, err)

	_, err = service.VerifyToken(*token)
	require.NoError(t, err)

	require.NoError(t, service.Logout(*token))

	_, err = service.VerifyToken(*token)
	assert.EqualError(t, err, "token is blacklisted")
}

func TestClaimsEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", ClaimsEmail(jwt.MapClaims{"email": "a@b.com"}))
	assert.Equal(t, "", ClaimsEmail(jwt.MapClaims{}))
	assert.Equal(t, "", ClaimsEmail(jwt.MapClaims{"email": 42}))
}
