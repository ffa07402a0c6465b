package models

import "time"

// Module keys are fixed at setup time; routes reference them as
// compile-time constants.
const (
	ModuleCredit      = "CREDIT_TO_COME"
	ModuleUtilities   = "DAILY_EXPENDITURE_UTILITIES"
	ModuleExpenditure = "DAILY_EXPENDITURE_TRACKER"
	ModuleSuppliers   = "GRN_CREDIT_REMINDER"
)

// Action names the four capability columns of a permission grant.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Module is a named permission domain (one business area). Seeded at
// startup, read-only afterwards.
type Module struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Key       string `gorm:"uniqueIndex;not null" json:"key"`
	Name      string `gorm:"not null" json:"name"`
	CreatedAt time.Time
}

// Permission holds one user's capabilities on one module. A missing
// row means all four capabilities are false; a fully revoked row is
// kept rather than deleted so upserts stay update-in-place.
type Permission struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_module"`
	ModuleID  uint `gorm:"not null;uniqueIndex:idx_user_module"`
	CanView   bool `gorm:"not null;default:false"`
	CanCreate bool `gorm:"not null;default:false"`
	CanUpdate bool `gorm:"not null;default:false"`
	CanDelete bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Allows reports whether the grant carries the capability mapped to
// the given action. The gate validates the action before calling this.
func (p *Permission) Allows(action Action) bool {
	switch action {
	case ActionView:
		return p.CanView
	case ActionCreate:
		return p.CanCreate
	case ActionUpdate:
		return p.CanUpdate
	case ActionDelete:
		return p.CanDelete
	}
	return false
}
