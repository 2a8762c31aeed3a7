package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/post"
)

type PostRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPostRepository(pool *pgxpool.Pool, log *slog.Logger) *PostRepository {
	return &PostRepository{
		pool: pool,
		log:  log.With("component", "post_repository"),
	}
}

const postColumns = `id, author_id, kind, title, slug, excerpt, body, category,
	tags, status, published_at, created_at, updated_at`

func (r *PostRepository) Create(ctx context.Context, p *post.Post) error {
	const query = `
		INSERT INTO posts
			(id, author_id, kind, title, slug, excerpt, body, category, tags,
			 status, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.AuthorID, p.Kind, p.Title, p.Slug, p.Excerpt, p.Body,
		p.Category, p.Tags, p.Status, p.PublishedAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return post.ErrSlugTaken
		}
		r.log.Error("failed to create post", "slug", p.Slug, "error", err)
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *PostRepository) Get(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := r.scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (r *PostRepository) GetBySlug(ctx context.Context, kind post.Kind, slug string) (*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE kind = $1 AND slug = $2`

	p, err := r.scanPost(r.pool.QueryRow(ctx, query, kind, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrNotFound
		}
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return p, nil
}

func (r *PostRepository) ListPublished(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE status = 'published'`
	args := []interface{}{}
	argIndex := 1

	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argIndex)
		args = append(args, filter.Kind)
		argIndex++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, filter.Category)
		argIndex++
	}
	if filter.Tag != "" {
		query += fmt.Sprintf(" AND $%d = ANY(tags)", argIndex)
		args = append(args, filter.Tag)
		argIndex++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR body ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query += " ORDER BY published_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list published posts", "error", err)
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()

	return r.scanPosts(rows)
}

func (r *PostRepository) ListAll(ctx context.Context, authorID *uuid.UUID, limit, offset int) ([]post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	args := []interface{}{}
	argIndex := 1

	if authorID != nil {
		query += fmt.Sprintf(" WHERE author_id = $%d", argIndex)
		args = append(args, *authorID)
		argIndex++
	}

	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return r.scanPosts(rows)
}

func (r *PostRepository) Update(ctx context.Context, p *post.Post) error {
	const query = `
		UPDATE posts
		SET title = $1, slug = $2, excerpt = $3, body = $4, category = $5,
		    tags = $6, status = $7, published_at = $8, updated_at = $9
		WHERE id = $10`

	result, err := r.pool.Exec(ctx, query,
		p.Title, p.Slug, p.Excerpt, p.Body, p.Category, p.Tags,
		p.Status, p.PublishedAt, p.UpdatedAt, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return post.ErrSlugTaken
		}
		r.log.Error("failed to update post", "post_id", p.ID, "error", err)
		return fmt.Errorf("update post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return post.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM posts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return post.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Categories(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT category FROM posts
		WHERE status = 'published' AND category <> ''
		ORDER BY category`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostRepository) scanPosts(rows pgx.Rows) ([]post.Post, error) {
	var posts []post.Post
	for rows.Next() {
		p, err := r.scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.Kind, &p.Title, &p.Slug, &p.Excerpt, &p.Body,
		&p.Category, &p.Tags, &p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
