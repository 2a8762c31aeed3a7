package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, email, name, password string, role Role) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context) ([]User, error)
	ChangeRole(ctx context.Context, actor User, targetID uuid.UUID, newRole Role) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, email, name, password string, role Role) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.validator.ValidateRegister(email, name, password); err != nil {
		s.log.Debug("registration validation failed", "email", email, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !role.Valid() {
		return User{}, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Same failure for unknown email and bad password.
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// ChangeRole mutates the target's role subject to three guards: only admins
// may change roles, an admin may not demote themselves, and the last
// remaining admin may not be demoted by anyone. Every successful change
// writes an audit record. Failures are business rejections and must not be
// retried.
func (s *Service) ChangeRole(ctx context.Context, actor User, targetID uuid.UUID, newRole Role) (User, error) {
	if !newRole.Valid() {
		return User{}, ErrInvalidRole
	}
	if actor.Role != RoleAdmin {
		return User{}, ErrForbidden
	}
	if actor.ID == targetID && newRole != RoleAdmin {
		return User{}, ErrSelfDemotion
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find target: %w", err)
	}

	if target.Role == RoleAdmin && newRole != RoleAdmin {
		remaining, err := s.repo.CountAdminsExcluding(ctx, targetID)
		if err != nil {
			return User{}, fmt.Errorf("count admins: %w", err)
		}
		if remaining == 0 {
			return User{}, ErrLastAdmin
		}
	}

	if err := s.repo.UpdateRole(ctx, targetID, newRole); err != nil {
		return User{}, fmt.Errorf("update role: %w", err)
	}

	change := &RoleChange{
		ID:            uuid.New(),
		ActingAdminID: actor.ID,
		TargetID:      targetID,
		OldRole:       target.Role,
		NewRole:       newRole,
		ChangedAt:     time.Now(),
	}
	if err := s.repo.RecordRoleChange(ctx, change); err != nil {
		// The role is already changed; losing the audit row is worth a
		// loud log but not a rollback.
		s.log.Error("failed to record role change",
			"acting_admin", actor.ID, "target", targetID, "error", err)
	}

	s.log.Info("role changed",
		"acting_admin", actor.ID, "target", targetID,
		"old_role", target.Role, "new_role", newRole)

	target.Role = newRole
	return target, nil
}
