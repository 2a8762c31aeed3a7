package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) error
	// CountAdminsExcluding counts admin users whose ID differs from the
	// given one. Used by the last-admin guard.
	CountAdminsExcluding(ctx context.Context, id uuid.UUID) (int, error)
	RecordRoleChange(ctx context.Context, change *RoleChange) error
}
