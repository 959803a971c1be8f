package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleClient  = "client"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserBanned = errors.New("user is banned")
var ErrForbidden = errors.New("access forbidden")

// User models an account in the system. PasswordHash and the reset/activation
// token pairs are internal state and are never serialized into responses.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
	Role         string `json:"role"`

	PasswordResetToken   string    `json:"-"`
	PasswordResetExpires time.Time `json:"-"`
	ActivationToken      string    `json:"-"`
	ActivationExpires    time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsManager reports whether the user carries the manager role.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// Banned reports whether the account is currently banned (IsActive == false).
func (u *User) Banned() bool {
	return !u.IsActive
}

// ValidRole reports whether role is one of the known role tags.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleClient:
		return true
	}
	return false
}
