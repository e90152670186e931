// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
type User struct {
	ID           uuid.UUID // The global unique identifier for the user.
	Email        string    // The user's primary contact email, used as the login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // Bcrypt hash of the user's password. Never exposed outward.
	Role         Role      // The single role this account holds.
	Approved     bool      // Whether the account passed admin review. Creators start false.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// NewUser builds a user with the role's default approval state.
func NewUser(email, name, passwordHash string, role Role) *User {
	now := time.Now()

	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		Approved:     role.DefaultApproved(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsCreator reports whether the account holds the creator role.
func (u *User) IsCreator() bool {
	return u.Role == RoleCreator
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
