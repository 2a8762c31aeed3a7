package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type Servicer interface {
	Create(ctx context.Context, actor user.User, draft Draft) (*Post, error)
	Update(ctx context.Context, actor user.User, id uuid.UUID, draft Draft) (*Post, error)
	Delete(ctx context.Context, actor user.User, id uuid.UUID) error
	Publish(ctx context.Context, actor user.User, id uuid.UUID) (*Post, error)
	Get(ctx context.Context, id uuid.UUID) (*Post, error)
	GetPublishedBySlug(ctx context.Context, kind Kind, slug string) (*Post, error)
	ListPublished(ctx context.Context, filter Filter) ([]Post, error)
	ListForActor(ctx context.Context, actor user.User, limit, offset int) ([]Post, error)
	Categories(ctx context.Context) ([]string, error)
}

type Draft struct {
	Kind     Kind
	Title    string
	Slug     string
	Excerpt  string
	Body     string
	Category string
	Tags     []string
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "post_service"),
	}
}

func (s *Service) Create(ctx context.Context, actor user.User, draft Draft) (*Post, error) {
	if draft.Title == "" || draft.Body == "" {
		return nil, ErrInvalidData
	}
	if draft.Kind == "" {
		draft.Kind = KindPost
	}
	if draft.Kind != KindPost && draft.Kind != KindPage {
		return nil, ErrInvalidData
	}

	slug := draft.Slug
	if slug == "" {
		slug = Slugify(draft.Title)
	}
	if slug == "" {
		return nil, ErrInvalidData
	}

	p := &Post{
		ID:        uuid.New(),
		AuthorID:  actor.ID,
		Kind:      draft.Kind,
		Title:     draft.Title,
		Slug:      slug,
		Excerpt:   draft.Excerpt,
		Body:      draft.Body,
		Category:  draft.Category,
		Tags:      draft.Tags,
		Status:    StatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return nil, ErrSlugTaken
		}
		s.log.Error("failed to create post", "author_id", actor.ID, "error", err)
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.Info("post created", "post_id", p.ID, "kind", p.Kind, "slug", p.Slug)
	return p, nil
}

func (s *Service) Update(ctx context.Context, actor user.User, id uuid.UUID, draft Draft) (*Post, error) {
	if draft.Title == "" || draft.Body == "" {
		return nil, ErrInvalidData
	}

	p, err := s.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	p.Title = draft.Title
	if draft.Slug != "" {
		p.Slug = draft.Slug
	}
	p.Excerpt = draft.Excerpt
	p.Body = draft.Body
	p.Category = draft.Category
	p.Tags = draft.Tags
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return nil, ErrSlugTaken
		}
		s.log.Error("failed to update post", "post_id", id, "error", err)
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, actor user.User, id uuid.UUID) error {
	if _, err := s.editable(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete post", "post_id", id, "error", err)
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *Service) Publish(ctx context.Context, actor user.User, id uuid.UUID) (*Post, error) {
	p, err := s.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if p.Status == StatusPublished {
		return p, nil
	}

	now := time.Now()
	p.Status = StatusPublished
	p.PublishedAt = &now
	p.UpdatedAt = now

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("publish post: %w", err)
	}

	s.log.Info("post published", "post_id", p.ID, "slug", p.Slug)
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) GetPublishedBySlug(ctx context.Context, kind Kind, slug string) (*Post, error) {
	p, err := s.repo.GetBySlug(ctx, kind, slug)
	if err != nil {
		return nil, err
	}
	if p.Status != StatusPublished {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListPublished(ctx context.Context, filter Filter) ([]Post, error) {
	if filter.Limit <= 0 || filter.Limit > 50 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.ListPublished(ctx, filter)
}

// ListForActor returns the admin-panel view: editors and admins see all
// posts, authors only their own.
func (s *Service) ListForActor(ctx context.Context, actor user.User, limit, offset int) ([]Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	if actor.Role.AtLeast(user.RoleEditor) {
		return s.repo.ListAll(ctx, nil, limit, offset)
	}
	return s.repo.ListAll(ctx, &actor.ID, limit, offset)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// editable fetches the post and applies the ownership rule: authors edit
// their own posts, editor+ edit anything.
func (s *Service) editable(ctx context.Context, actor user.User, id uuid.UUID) (*Post, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	if p.AuthorID != actor.ID && !actor.Role.AtLeast(user.RoleEditor) {
		return nil, ErrNotOwner
	}
	return p, nil
}
