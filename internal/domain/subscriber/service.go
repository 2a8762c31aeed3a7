package subscriber

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var (
	ErrNotFound     = errors.New("subscriber not found")
	ErrInvalidEmail = errors.New("invalid email address")
)

type Repository interface {
	Create(ctx context.Context, s *Subscriber) error
	FindByEmail(ctx context.Context, email string) (Subscriber, error)
	FindByToken(ctx context.Context, token string) (Subscriber, error)
	MarkUnsubscribed(ctx context.Context, id uuid.UUID, at time.Time) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, limit, offset int) ([]Subscriber, error)
}

type Servicer interface {
	Subscribe(ctx context.Context, email string) (Subscriber, error)
	Unsubscribe(ctx context.Context, token string) error
	ListActive(ctx context.Context, limit, offset int) ([]Subscriber, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "subscriber_service"),
	}
}

// Subscribe is idempotent on email: re-subscribing an active address is a
// no-op, re-subscribing an unsubscribed one reactivates it.
func (s *Service) Subscribe(ctx context.Context, email string) (Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return Subscriber{}, ErrInvalidEmail
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		if !existing.Active() {
			if err := s.repo.Reactivate(ctx, existing.ID); err != nil {
				return Subscriber{}, fmt.Errorf("reactivate subscriber: %w", err)
			}
			existing.UnsubscribedAt = nil
		}
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Subscriber{}, fmt.Errorf("find subscriber: %w", err)
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return Subscriber{}, fmt.Errorf("generate token: %w", err)
	}

	sub := Subscriber{
		ID:        uuid.New(),
		Email:     email,
		Token:     base64.URLEncoding.EncodeToString(tokenBytes),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, &sub); err != nil {
		return Subscriber{}, fmt.Errorf("create subscriber: %w", err)
	}

	s.log.Info("new subscriber", "subscriber_id", sub.ID)
	return sub, nil
}

func (s *Service) Unsubscribe(ctx context.Context, token string) error {
	sub, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return ErrNotFound
	}
	if !sub.Active() {
		return nil
	}
	if err := s.repo.MarkUnsubscribed(ctx, sub.ID, time.Now()); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	s.log.Info("subscriber left", "subscriber_id", sub.ID)
	return nil
}

func (s *Service) ListActive(ctx context.Context, limit, offset int) ([]Subscriber, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListActive(ctx, limit, offset)
}
