package comment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	ListByPost(ctx context.Context, postID uuid.UUID, status Status) ([]Comment, error)
	ListByStatus(ctx context.Context, status Status, limit, offset int) ([]Comment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}
