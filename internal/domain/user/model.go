package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is an ordered permission tier. The database row is the single source
// of truth for a user's role; a role carried inside a session token is never
// trusted for authorization decisions.
type Role string

const (
	RoleReader Role = "reader"
	RoleAuthor Role = "author"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

var roleRank = map[Role]int{
	RoleReader: 0,
	RoleAuthor: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the permissions of other.
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

// ParseRole converts a string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleChange is the audit record written for every successful role mutation.
type RoleChange struct {
	ID            uuid.UUID
	ActingAdminID uuid.UUID
	TargetID      uuid.UUID
	OldRole       Role
	NewRole       Role
	ChangedAt     time.Time
}
