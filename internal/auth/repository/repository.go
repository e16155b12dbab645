package repository

import (
	"time"

	authdomain "imf-gadget-backend/internal/auth/domain"
)

// UserRepository persists user accounts. Lookups that miss return (nil, nil).
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	// Update applies only the supplied columns and refreshes updated_at,
	// returning the post-write record or (nil, nil) if the id is unknown.
	Update(userID string, fields map[string]interface{}) (*authdomain.User, error)
	// Delete removes the account and, via the FK cascade, its gadgets.
	Delete(userID string) (*authdomain.User, error)
}

// TokenRepository is the append-only blacklist keyed by raw token value.
type TokenRepository interface {
	// Blacklist is idempotent; inserting the same token twice is not an error.
	Blacklist(token string) error
	IsBlacklisted(token string) (bool, error)
	// DeleteBlacklistedBefore prunes rows older than the cutoff and reports
	// how many were removed.
	DeleteBlacklistedBefore(cutoff time.Time) (int64, error)
}
