package repository

import (
	"errors"
	"time"

	authdomain "imf-gadget-backend/internal/auth/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements TokenRepository
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of tokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

func (r *tokenRepository) Blacklist(token string) error {
	entry := &authdomain.BlacklistedToken{
		Token:         token,
		BlacklistedAt: time.Now(),
	}
	// Upsert-or-ignore so blacklisting the same token twice is a no-op.
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error
}

func (r *tokenRepository) IsBlacklisted(token string) (bool, error) {
	var entry authdomain.BlacklistedToken
	err := r.db.Where("token = ?", token).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *tokenRepository) DeleteBlacklistedBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("blacklisted_at < ?", cutoff).Delete(&authdomain.BlacklistedToken{})
	return result.RowsAffected, result.Error
}
