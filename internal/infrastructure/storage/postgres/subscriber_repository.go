package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/subscriber"
)

type SubscriberRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSubscriberRepository(pool *pgxpool.Pool, log *slog.Logger) *SubscriberRepository {
	return &SubscriberRepository{
		pool: pool,
		log:  log.With("component", "subscriber_repository"),
	}
}

func (r *SubscriberRepository) Create(ctx context.Context, s *subscriber.Subscriber) error {
	const query = `
		INSERT INTO subscribers (id, email, token, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, s.ID, s.Email, s.Token, s.CreatedAt)
	if err != nil {
		r.log.Error("failed to create subscriber", "error", err)
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (subscriber.Subscriber, error) {
	const query = `
		SELECT id, email, token, created_at, unsubscribed_at
		FROM subscribers
		WHERE email = $1`

	return r.scanSubscriber(r.pool.QueryRow(ctx, query, email))
}

func (r *SubscriberRepository) FindByToken(ctx context.Context, token string) (subscriber.Subscriber, error) {
	const query = `
		SELECT id, email, token, created_at, unsubscribed_at
		FROM subscribers
		WHERE token = $1`

	return r.scanSubscriber(r.pool.QueryRow(ctx, query, token))
}

func (r *SubscriberRepository) MarkUnsubscribed(ctx context.Context, id uuid.UUID, at time.Time) error {
	const query = `UPDATE subscribers SET unsubscribed_at = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("mark unsubscribed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return subscriber.ErrNotFound
	}
	return nil
}

func (r *SubscriberRepository) Reactivate(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE subscribers SET unsubscribed_at = NULL WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("reactivate subscriber: %w", err)
	}
	if result.RowsAffected() == 0 {
		return subscriber.ErrNotFound
	}
	return nil
}

func (r *SubscriberRepository) ListActive(ctx context.Context, limit, offset int) ([]subscriber.Subscriber, error) {
	const query = `
		SELECT id, email, token, created_at, unsubscribed_at
		FROM subscribers
		WHERE unsubscribed_at IS NULL
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list active subscribers: %w", err)
	}
	defer rows.Close()

	var subs []subscriber.Subscriber
	for rows.Next() {
		s, err := r.scanSubscriber(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *SubscriberRepository) scanSubscriber(row pgx.Row) (subscriber.Subscriber, error) {
	var s subscriber.Subscriber
	err := row.Scan(&s.ID, &s.Email, &s.Token, &s.CreatedAt, &s.UnsubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscriber.Subscriber{}, subscriber.ErrNotFound
		}
		return subscriber.Subscriber{}, fmt.Errorf("scan subscriber: %w", err)
	}
	return s, nil
}
