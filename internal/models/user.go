package models

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User is a login principal. Accounts are created by an administrator;
// there is no self-registration. Name and email are immutable through
// the API surface, only the active flag, role and password change.
type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	FullName  string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null" json:"-"`
	Role      string `gorm:"not null;default:'STAFF'"`
	Active    bool   `gorm:"not null;default:true"`
	Version   int    `gorm:"default:1"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
