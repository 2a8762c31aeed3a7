package photo

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/infrastructure/objectstore"
)

var (
	ErrNotFound    = errors.New("photo not found")
	ErrInvalidData = errors.New("invalid photo data")
	ErrNotOwner    = errors.New("photo belongs to another author")
)

const (
	maxUploadSize = 20 << 20 // 20 MiB
	presignTTL    = time.Hour
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type Repository interface {
	Create(ctx context.Context, p *Photo) error
	Get(ctx context.Context, id uuid.UUID) (*Photo, error)
	ListPublished(ctx context.Context, limit, offset int) ([]Photo, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]Photo, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Upload struct {
	Title       string
	Caption     string
	Location    string
	TakenAt     *time.Time
	ContentType string
	Data        []byte
}

type Servicer interface {
	Upload(ctx context.Context, actor user.User, up Upload) (*Photo, error)
	Gallery(ctx context.Context, limit, offset int) ([]Photo, error)
	ListOwn(ctx context.Context, actor user.User, limit, offset int) ([]Photo, error)
	SetPublished(ctx context.Context, actor user.User, id uuid.UUID, published bool) error
	Delete(ctx context.Context, actor user.User, id uuid.UUID) error
}

type Service struct {
	repo  Repository
	store objectstore.Store
	log   *slog.Logger
}

func NewService(repo Repository, store objectstore.Store, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		store: store,
		log:   log.With("component", "photo_service"),
	}
}

// Upload stores the original under photos/<id> and records a sibling WebP
// key for the out-of-band transcoder.
func (s *Service) Upload(ctx context.Context, actor user.User, up Upload) (*Photo, error) {
	if up.Title == "" || len(up.Data) == 0 || len(up.Data) > maxUploadSize {
		return nil, ErrInvalidData
	}
	if !allowedContentTypes[up.ContentType] {
		return nil, ErrInvalidData
	}

	id := uuid.New()
	key := path.Join("photos", id.String())

	if err := s.store.Put(ctx, key, up.ContentType, up.Data); err != nil {
		s.log.Error("failed to store photo", "photo_id", id, "error", err)
		return nil, fmt.Errorf("store photo: %w", err)
	}

	p := &Photo{
		ID:          id,
		AuthorID:    actor.ID,
		Title:       up.Title,
		Caption:     up.Caption,
		Location:    up.Location,
		TakenAt:     up.TakenAt,
		ObjectKey:   key,
		WebPKey:     key + ".webp",
		ContentType: up.ContentType,
		Size:        int64(len(up.Data)),
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// Don't orphan the object when the row fails.
		if derr := s.store.Delete(ctx, key); derr != nil {
			s.log.Error("failed to clean up orphaned object", "key", key, "error", derr)
		}
		return nil, fmt.Errorf("create photo: %w", err)
	}

	s.log.Info("photo uploaded", "photo_id", id, "author_id", actor.ID, "size", p.Size)
	return p, nil
}

func (s *Service) Gallery(ctx context.Context, limit, offset int) ([]Photo, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}

	photos, err := s.repo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}

	for i := range photos {
		url, err := s.store.PresignGet(ctx, photos[i].ObjectKey, presignTTL)
		if err != nil {
			s.log.Error("failed to presign photo", "photo_id", photos[i].ID, "error", err)
			continue
		}
		photos[i].URL = url
	}
	return photos, nil
}

func (s *Service) ListOwn(ctx context.Context, actor user.User, limit, offset int) ([]Photo, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByAuthor(ctx, actor.ID, limit, offset)
}

func (s *Service) SetPublished(ctx context.Context, actor user.User, id uuid.UUID, published bool) error {
	if _, err := s.editable(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.SetPublished(ctx, id, published)
}

func (s *Service) Delete(ctx context.Context, actor user.User, id uuid.UUID) error {
	p, err := s.editable(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if err := s.store.Delete(ctx, p.ObjectKey); err != nil {
		s.log.Error("failed to delete photo object", "key", p.ObjectKey, "error", err)
	}
	return nil
}

func (s *Service) editable(ctx context.Context, actor user.User, id uuid.UUID) (*Photo, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get photo: %w", err)
	}
	if p.AuthorID != actor.ID && !actor.Role.AtLeast(user.RoleEditor) {
		return nil, ErrNotOwner
	}
	return p, nil
}
