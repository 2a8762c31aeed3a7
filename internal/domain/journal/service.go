package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, authorID uuid.UUID, draft Draft) (*Entry, error)
	Get(ctx context.Context, authorID, entryID uuid.UUID) (*Entry, error)
	List(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]Entry, error)
	Update(ctx context.Context, authorID, entryID uuid.UUID, draft Draft) (*Entry, error)
	Delete(ctx context.Context, authorID, entryID uuid.UUID) error
}

// Draft carries the writable fields of an entry.
type Draft struct {
	Title    string
	Content  string
	Mood     string
	Weather  string
	Location string
	Tags     []string
}

type Service struct {
	repo  Repository
	codec *Codec
	log   *slog.Logger
}

func NewService(repo Repository, codec *Codec, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		codec: codec,
		log:   log.With("component", "journal_service"),
	}
}

// Create seals the body and persists the entry. The plaintext never reaches
// the repository: Content is cleared once the envelope exists.
func (s *Service) Create(ctx context.Context, authorID uuid.UUID, draft Draft) (*Entry, error) {
	if draft.Title == "" || draft.Content == "" {
		return nil, ErrInvalidData
	}

	env, err := s.codec.Seal(draft.Content)
	if err != nil {
		return nil, fmt.Errorf("seal entry: %w", err)
	}

	entry := &Entry{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Title:       draft.Title,
		Content:     "",
		Encrypted:   &env,
		IsEncrypted: true,
		Mood:        draft.Mood,
		Weather:     draft.Weather,
		Location:    draft.Location,
		Tags:        draft.Tags,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error("failed to create entry", "author_id", authorID, "error", err)
		return nil, fmt.Errorf("create entry: %w", err)
	}

	// Return the plaintext the caller just gave us; the stored row keeps
	// only the envelope.
	out := *entry
	out.Content = draft.Content
	out.Encrypted = nil
	return &out, nil
}

// Get fetches and decrypts a single entry. A decryption failure is reported
// by substituting a placeholder body, never by inventing plaintext.
func (s *Service) Get(ctx context.Context, authorID, entryID uuid.UUID) (*Entry, error) {
	entry, err := s.repo.Get(ctx, authorID, entryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get entry", "entry_id", entryID, "author_id", authorID, "error", err)
		return nil, fmt.Errorf("get entry: %w", err)
	}

	s.decryptInto(entry)
	return entry, nil
}

func (s *Service) List(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.repo.List(ctx, authorID, limit, offset)
	if err != nil {
		s.log.Error("failed to list entries", "author_id", authorID, "error", err)
		return nil, fmt.Errorf("list entries: %w", err)
	}

	for i := range entries {
		s.decryptInto(&entries[i])
	}
	return entries, nil
}

func (s *Service) Update(ctx context.Context, authorID, entryID uuid.UUID, draft Draft) (*Entry, error) {
	if draft.Title == "" || draft.Content == "" {
		return nil, ErrInvalidData
	}

	current, err := s.repo.Get(ctx, authorID, entryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get entry for update: %w", err)
	}

	env, err := s.codec.Seal(draft.Content)
	if err != nil {
		return nil, fmt.Errorf("seal entry: %w", err)
	}

	current.Title = draft.Title
	current.Content = ""
	current.Encrypted = &env
	current.IsEncrypted = true
	current.Mood = draft.Mood
	current.Weather = draft.Weather
	current.Location = draft.Location
	current.Tags = draft.Tags
	current.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, current); err != nil {
		s.log.Error("failed to update entry", "entry_id", entryID, "author_id", authorID, "error", err)
		return nil, fmt.Errorf("update entry: %w", err)
	}

	out := *current
	out.Content = draft.Content
	out.Encrypted = nil
	return &out, nil
}

func (s *Service) Delete(ctx context.Context, authorID, entryID uuid.UUID) error {
	if err := s.repo.Delete(ctx, authorID, entryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete entry", "entry_id", entryID, "author_id", authorID, "error", err)
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// decryptInto replaces the envelope with plaintext in place. Legacy rows
// without an envelope keep their stored plaintext as-is.
func (s *Service) decryptInto(entry *Entry) {
	if entry.Encrypted == nil {
		return
	}

	plaintext, err := s.codec.Open(*entry.Encrypted)
	if err != nil {
		s.log.Error("entry failed decryption", "entry_id", entry.ID)
		entry.Content = PlaceholderContent
	} else {
		entry.Content = plaintext
	}
	entry.Encrypted = nil
}
