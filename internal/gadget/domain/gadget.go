package domain

import (
	"strings"
	"time"

	authdomain "imf-gadget-backend/internal/auth/domain"
)

// Status is the gadget lifecycle state. Destroyed and Decommissioned are
// absorbing: nothing transitions back out of them.
type Status string

const (
	StatusAvailable      Status = "Available"
	StatusDeployed       Status = "Deployed"
	StatusDestroyed      Status = "Destroyed"
	StatusDecommissioned Status = "Decommissioned"
)

// ParseStatus normalizes case ("deployed" -> Deployed) and reports whether
// the value is a known status.
func ParseStatus(s string) (Status, bool) {
	switch normalize(s) {
	case string(StatusAvailable):
		return StatusAvailable, true
	case string(StatusDeployed):
		return StatusDeployed, true
	case string(StatusDestroyed):
		return StatusDestroyed, true
	case string(StatusDecommissioned):
		return StatusDecommissioned, true
	}
	return "", false
}

// Absorbing reports whether the status permits no further transitions.
func (s Status) Absorbing() bool {
	return s == StatusDestroyed || s == StatusDecommissioned
}

const (
	ActionDeploy   = "Deploy"
	ActionWithdraw = "Withdraw"
)

// ParseAction maps an update action to its target status. Only Deploy and
// Withdraw are accepted on the generic update path.
func ParseAction(action string) (Status, bool) {
	switch normalize(action) {
	case ActionDeploy:
		return StatusDeployed, true
	case ActionWithdraw:
		return StatusAvailable, true
	}
	return "", false
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

type Gadget struct {
	ID             string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name           string     `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Codename       string     `gorm:"size:50;not null" json:"codename"`
	Status         Status     `gorm:"size:20;not null;default:'Available'" json:"status"`
	CreatedBy      string     `gorm:"type:uuid;not null" json:"created_by"`
	DecommissionAt *time.Time `json:"decommission_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// FK with cascade: deleting the owner deletes the gadget.
	Owner authdomain.User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
}

func (Gadget) TableName() string {
	return "gadgets"
}
