package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/photo"
)

type PhotoRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPhotoRepository(pool *pgxpool.Pool, log *slog.Logger) *PhotoRepository {
	return &PhotoRepository{
		pool: pool,
		log:  log.With("component", "photo_repository"),
	}
}

const photoColumns = `id, author_id, title, caption, location, taken_at,
	object_key, webp_key, content_type, size, published, created_at`

func (r *PhotoRepository) Create(ctx context.Context, p *photo.Photo) error {
	const query = `
		INSERT INTO photos
			(id, author_id, title, caption, location, taken_at, object_key,
			 webp_key, content_type, size, published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.AuthorID, p.Title, p.Caption, p.Location, p.TakenAt,
		p.ObjectKey, p.WebPKey, p.ContentType, p.Size, p.Published, p.CreatedAt)
	if err != nil {
		r.log.Error("failed to create photo", "photo_id", p.ID, "error", err)
		return fmt.Errorf("create photo: %w", err)
	}
	return nil
}

func (r *PhotoRepository) Get(ctx context.Context, id uuid.UUID) (*photo.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`

	p, err := scanPhoto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, photo.ErrNotFound
		}
		return nil, fmt.Errorf("get photo: %w", err)
	}
	return p, nil
}

func (r *PhotoRepository) ListPublished(ctx context.Context, limit, offset int) ([]photo.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos
		WHERE published ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list published photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

func (r *PhotoRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]photo.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos
		WHERE author_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list photos by author: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

func (r *PhotoRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	const query = `UPDATE photos SET published = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, published, id)
	if err != nil {
		return fmt.Errorf("set photo published: %w", err)
	}
	if result.RowsAffected() == 0 {
		return photo.ErrNotFound
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM photos WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return photo.ErrNotFound
	}
	return nil
}

func scanPhotos(rows pgx.Rows) ([]photo.Photo, error) {
	var photos []photo.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

func scanPhoto(row pgx.Row) (*photo.Photo, error) {
	var p photo.Photo
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Caption, &p.Location, &p.TakenAt,
		&p.ObjectKey, &p.WebPKey, &p.ContentType, &p.Size, &p.Published, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
