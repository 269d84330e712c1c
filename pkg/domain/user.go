package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// UserRole describes a user's role within their team.
type UserRole string

const (
	// RoleOwner can manage billing and team members.
	RoleOwner UserRole = "owner"
	// RoleMember can manage businesses but not billing.
	RoleMember UserRole = "member"
)

// User represents an account belonging to a team.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// TeamID is the team this user belongs to.
	TeamID TeamID `json:"teamId"`

	// Email is the user's login email.
	Email string `json:"email"`
	// Name is the user's display name.
	Name string `json:"name,omitempty"`
	// Role is the user's role within the team.
	Role UserRole `json:"role"`

	// CreatedAt is the time when the user was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the user was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
