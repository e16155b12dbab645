package domain

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Never return password in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// BlacklistedToken invalidates a session token before its natural expiry.
// Rows are created on sign-out and never updated; the sweeper prunes
// entries older than the token lifetime.
type BlacklistedToken struct {
	Token         string    `gorm:"primaryKey;type:text" json:"token"`
	BlacklistedAt time.Time `gorm:"not null" json:"blacklisted_at"`
}

func (BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}
