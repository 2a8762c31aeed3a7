package journal

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists entries. Every read and mutation is scoped by the
// author: an entry belonging to someone else behaves exactly like a missing
// row. Ownership is enforced here by query shape, not by role checks.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, authorID, entryID uuid.UUID) (*Entry, error)
	List(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, authorID, entryID uuid.UUID) error
}
