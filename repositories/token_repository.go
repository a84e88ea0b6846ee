package repositories

import (
	"gin-foody/models"
	"time"

	"gorm.io/gorm"
)

type ITokenRepository interface {
	Blacklist(token string, expiresAt int64) error
	IsBlacklisted(token string) (bool, error)
	DeleteExpired() error
}

// TokenRepository stores revoked tokens in the side database so a
// logged-out token stops verifying before its expiry.
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Blacklist(token string, expiresAt int64) error {
	entry := models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return r.db.Create(&entry).Error
}

func (r *TokenRepository) IsBlacklisted(token string) (bool, error) {
	var entry models.BlacklistedToken
	result := r.db.Where("token = ?", token).First(&entry)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// DeleteExpired drops blacklist rows whose token has expired anyway.
func (r *TokenRepository) DeleteExpired() error {
	now := time.Now().Unix()
	return r.db.Where("expires_at < ?", now).Delete(&models.BlacklistedToken{}).Error
}
