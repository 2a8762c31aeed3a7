package comment

import (
	"context"
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const maxBodyLen = 4000

type Servicer interface {
	// Submit files a visitor comment; it always lands in the pending
	// queue regardless of who submits it.
	Submit(ctx context.Context, postID uuid.UUID, name, email, body string) (*Comment, error)
	ListApproved(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	Queue(ctx context.Context, limit, offset int) ([]Comment, error)
	Moderate(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "comment_service"),
	}
}

func (s *Service) Submit(ctx context.Context, postID uuid.UUID, name, email, body string) (*Comment, error) {
	if name == "" || body == "" || utf8.RuneCountInString(body) > maxBodyLen {
		return nil, ErrInvalidData
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidData
	}

	c := &Comment{
		ID:          uuid.New(),
		PostID:      postID,
		AuthorName:  name,
		AuthorEmail: email,
		Body:        body,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Error("failed to create comment", "post_id", postID, "error", err)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return c, nil
}

func (s *Service) ListApproved(ctx context.Context, postID uuid.UUID) ([]Comment, error) {
	return s.repo.ListByPost(ctx, postID, StatusApproved)
}

func (s *Service) Queue(ctx context.Context, limit, offset int) ([]Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByStatus(ctx, StatusPending, limit, offset)
}

func (s *Service) Moderate(ctx context.Context, id uuid.UUID, status Status) error {
	if status != StatusApproved && status != StatusSpam && status != StatusPending {
		return ErrInvalidData
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("moderate comment: %w", err)
	}
	s.log.Info("comment moderated", "comment_id", id, "status", status)
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
