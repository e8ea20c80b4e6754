package models

import "time"

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User is stored in the users blob. Password is kept alongside the record
// the way the reference storage does; it is stripped from every response DTO.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Avatar   *string  `json:"avatar,omitempty"`
	Password string   `json:"password,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user may see every task and manage accounts.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Sanitized returns a copy safe to hand to callers: same identity, no secret.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Password = ""
	return &c
}
