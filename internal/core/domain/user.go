package domain

import "errors"

// Role is the closed set of account categories used to gate operations.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// Authentication and authorization failures, matched with errors.Is.
// ErrInvalidCredentials deliberately covers both "unknown email" and "wrong
// password" so callers cannot probe for account existence.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token is expired")
	ErrMissingToken       = errors.New("authorization token missing")
	ErrRoleNotPermitted   = errors.New("role not permitted")
)

// User models an account in the credential store.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`
}
