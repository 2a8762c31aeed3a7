package post

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Post) error
	Get(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (*Post, error)
	// ListPublished applies the public filter; drafts never appear.
	ListPublished(ctx context.Context, filter Filter) ([]Post, error)
	// ListAll is the admin view: drafts included, optionally restricted
	// to one author.
	ListAll(ctx context.Context, authorID *uuid.UUID, limit, offset int) ([]Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
}
