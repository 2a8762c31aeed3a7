package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/journal"
)

type JournalRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewJournalRepository(pool *pgxpool.Pool, log *slog.Logger) *JournalRepository {
	return &JournalRepository{
		pool: pool,
		log:  log.With("component", "journal_repository"),
	}
}

func (r *JournalRepository) Create(ctx context.Context, entry *journal.Entry) error {
	const query = `
		INSERT INTO journal_entries
			(id, author_id, title, content, encrypted_content, iv, auth_tag,
			 is_encrypted, mood, weather, location, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var ciphertext, iv, tag string
	if entry.Encrypted != nil {
		ciphertext = entry.Encrypted.Ciphertext
		iv = entry.Encrypted.IV
		tag = entry.Encrypted.Tag
	}

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.AuthorID, entry.Title, entry.Content,
		ciphertext, iv, tag, entry.IsEncrypted,
		entry.Mood, entry.Weather, entry.Location, entry.Tags,
		entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create journal entry", "author_id", entry.AuthorID, "error", err)
		return fmt.Errorf("create journal entry: %w", err)
	}
	return nil
}

// Get only matches rows owned by authorID; everyone else's entries are
// indistinguishable from missing ones.
func (r *JournalRepository) Get(ctx context.Context, authorID, entryID uuid.UUID) (*journal.Entry, error) {
	const query = `
		SELECT id, author_id, title, content, encrypted_content, iv, auth_tag,
		       is_encrypted, mood, weather, location, tags, created_at, updated_at
		FROM journal_entries
		WHERE id = $1 AND author_id = $2`

	entry, err := r.scanEntry(r.pool.QueryRow(ctx, query, entryID, authorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, journal.ErrNotFound
		}
		r.log.Error("failed to get journal entry",
			"entry_id", entryID, "author_id", authorID, "error", err)
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	return entry, nil
}

func (r *JournalRepository) List(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]journal.Entry, error) {
	const query = `
		SELECT id, author_id, title, content, encrypted_content, iv, auth_tag,
		       is_encrypted, mood, weather, location, tags, created_at, updated_at
		FROM journal_entries
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		r.log.Error("failed to list journal entries", "author_id", authorID, "error", err)
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []journal.Entry
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *JournalRepository) Update(ctx context.Context, entry *journal.Entry) error {
	const query = `
		UPDATE journal_entries
		SET title = $1, content = $2, encrypted_content = $3, iv = $4,
		    auth_tag = $5, is_encrypted = $6, mood = $7, weather = $8,
		    location = $9, tags = $10, updated_at = NOW()
		WHERE id = $11 AND author_id = $12`

	var ciphertext, iv, tag string
	if entry.Encrypted != nil {
		ciphertext = entry.Encrypted.Ciphertext
		iv = entry.Encrypted.IV
		tag = entry.Encrypted.Tag
	}

	result, err := r.pool.Exec(ctx, query,
		entry.Title, entry.Content, ciphertext, iv, tag, entry.IsEncrypted,
		entry.Mood, entry.Weather, entry.Location, entry.Tags,
		entry.ID, entry.AuthorID)
	if err != nil {
		r.log.Error("failed to update journal entry", "entry_id", entry.ID, "error", err)
		return fmt.Errorf("update journal entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return journal.ErrNotFound
	}
	return nil
}

func (r *JournalRepository) Delete(ctx context.Context, authorID, entryID uuid.UUID) error {
	const query = `DELETE FROM journal_entries WHERE id = $1 AND author_id = $2`

	result, err := r.pool.Exec(ctx, query, entryID, authorID)
	if err != nil {
		r.log.Error("failed to delete journal entry",
			"entry_id", entryID, "author_id", authorID, "error", err)
		return fmt.Errorf("delete journal entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return journal.ErrNotFound
	}
	return nil
}

func (r *JournalRepository) scanEntry(row pgx.Row) (*journal.Entry, error) {
	var (
		entry               journal.Entry
		ciphertext, iv, tag string
	)

	err := row.Scan(
		&entry.ID, &entry.AuthorID, &entry.Title, &entry.Content,
		&ciphertext, &iv, &tag, &entry.IsEncrypted,
		&entry.Mood, &entry.Weather, &entry.Location, &entry.Tags,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if entry.IsEncrypted {
		entry.Encrypted = &journal.Envelope{
			Ciphertext: ciphertext,
			IV:         iv,
			Tag:        tag,
		}
	}
	return &entry, nil
}
