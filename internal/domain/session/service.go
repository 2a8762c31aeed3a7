package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

// TokenValidity is how long an issued session stays usable without a new
// login.
const TokenValidity = 30 * 24 * time.Hour

// ErrUnauthenticated covers every way a request can fail to resolve to a
// principal: missing, malformed, expired or revoked token, or a deleted
// account. Callers map it to 401.
var ErrUnauthenticated = errors.New("unauthenticated")

type claims struct {
	jwt.RegisteredClaims
}

type Servicer interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	// Resolve verifies the token and returns the principal with their
	// role read fresh from the user store. The token never contributes
	// role data.
	Resolve(ctx context.Context, token string) (user.User, error)
	Invalidate(ctx context.Context, token string) error
}

type Service struct {
	repo   Repository
	users  user.Repository
	secret []byte
	log    *slog.Logger
}

func NewService(repo Repository, users user.Repository, secret []byte, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		secret: secret,
		log:    log.With("component", "session_service"),
	}
}

// Create issues a signed token whose jti is bound to a revocable session row.
func (s *Service) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	jti := uuid.NewString()
	expiresAt := time.Now().Add(TokenValidity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.repo.Create(ctx, userID, hashID(jti), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return signed, nil
}

func (s *Service) Resolve(ctx context.Context, token string) (user.User, error) {
	jti, subject, err := s.verify(token)
	if err != nil {
		return user.User{}, ErrUnauthenticated
	}

	sessionUserID, err := s.repo.Find(ctx, hashID(jti))
	if err != nil {
		return user.User{}, ErrUnauthenticated
	}

	userID, err := uuid.Parse(subject)
	if err != nil || userID != sessionUserID {
		return user.User{}, ErrUnauthenticated
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		// Account deleted since the session was issued.
		return user.User{}, ErrUnauthenticated
	}

	return u, nil
}

func (s *Service) Invalidate(ctx context.Context, token string) error {
	jti, _, err := s.verify(token)
	if err != nil {
		return ErrUnauthenticated
	}
	return s.repo.Revoke(ctx, hashID(jti))
}

func (s *Service) verify(token string) (jti, subject string, err error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !parsed.Valid || c.ID == "" || c.Subject == "" {
		return "", "", ErrUnauthenticated
	}
	return c.ID, c.Subject, nil
}

func hashID(jti string) string {
	sum := sha256.Sum256([]byte(jti))
	return hex.EncodeToString(sum[:])
}
