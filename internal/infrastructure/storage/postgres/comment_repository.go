package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/comment"
)

type CommentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCommentRepository(pool *pgxpool.Pool, log *slog.Logger) *CommentRepository {
	return &CommentRepository{
		pool: pool,
		log:  log.With("component", "comment_repository"),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	const query = `
		INSERT INTO comments (id, post_id, author_name, author_email, body, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.PostID, c.AuthorName, c.AuthorEmail, c.Body, c.Status, c.CreatedAt)
	if err != nil {
		r.log.Error("failed to create comment", "post_id", c.PostID, "error", err)
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID, status comment.Status) ([]comment.Comment, error) {
	const query = `
		SELECT id, post_id, author_name, author_email, body, status, created_at
		FROM comments
		WHERE post_id = $1 AND status = $2
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, postID, status)
	if err != nil {
		return nil, fmt.Errorf("list comments by post: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *CommentRepository) ListByStatus(ctx context.Context, status comment.Status, limit, offset int) ([]comment.Comment, error) {
	const query = `
		SELECT id, post_id, author_name, author_email, body, status, created_at
		FROM comments
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments by status: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *CommentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status comment.Status) error {
	const query = `UPDATE comments SET status = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update comment status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return comment.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM comments WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return comment.ErrNotFound
	}
	return nil
}

func scanComments(rows pgx.Rows) ([]comment.Comment, error) {
	var comments []comment.Comment
	for rows.Next() {
		var c comment.Comment
		err := rows.Scan(&c.ID, &c.PostID, &c.AuthorName, &c.AuthorEmail, &c.Body, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
