package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	// Find returns the user ID for a session that exists, has not expired
	// and has not been revoked.
	Find(ctx context.Context, tokenHash string) (uuid.UUID, error)
	Revoke(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
