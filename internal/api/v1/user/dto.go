package user

import "time"

// UserResponse defines the response structure for user information.
type UserResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	// Per-module capabilities the front end uses to hide screens.
	// Admins get every capability on every module.
	Grants interface{} `json:"grants,omitempty"`
}
