package domain

import "time"

// Role is the closed set of authorization roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is a known member of the set.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is the domain model for managed accounts.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
