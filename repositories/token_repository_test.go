package repositories

import (
	"gin-foody/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestTokenRepository(t *testing.T) ITokenRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BlacklistedToken{}))
	return NewTokenRepository(db)
}

func TestBlacklistAndCheck(t *testing.T) {
	repo := newTestTokenRepository(t)

	blacklisted, err := repo.IsBlacklisted("some-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, repo.Blacklist("some-token", time.Now().Add(time.Hour).Unix()))

	blacklisted, err = repo.IsBlacklisted("some-token")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestDeleteExpiredKeepsLiveTokens(t *testing.T) {
	repo := newTestTokenRepository(t)

	require.NoError(t, repo.Blacklist("stale", time.Now().Add(-time.Hour).Unix()))
	require.NoError(t, repo.Blacklist("fresh", time.Now().Add(time.Hour).Unix()))

	require.NoError(t, repo.DeleteExpired())

	stale, err := repo.IsBlacklisted("stale")
	require.NoError(t, err)
	assert.False(t, stale)

	fresh, err := repo.IsBlacklisted("fresh")
	require.NoError(t, err)
	assert.True(t, fresh)
}
