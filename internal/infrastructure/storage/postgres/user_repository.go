package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Role,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		r.log.Error("failed to create user", "email", u.Email, "error", err)
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	const query = `
		SELECT id, email, name, password_hash, role, created_at, updated_at
		FROM users WHERE id = $1`

	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	const query = `
		SELECT id, email, name, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1`

	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	const query = `
		SELECT id, email, name, password_hash, role, created_at, updated_at
		FROM users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	const query = `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, role, id)
	if err != nil {
		r.log.Error("failed to update role", "user_id", id, "error", err)
		return fmt.Errorf("update role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) CountAdminsExcluding(ctx context.Context, id uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM users WHERE role = 'admin' AND id <> $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

func (r *UserRepository) RecordRoleChange(ctx context.Context, change *user.RoleChange) error {
	const query = `
		INSERT INTO role_changes (id, acting_admin_id, target_id, old_role, new_role, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		change.ID, change.ActingAdminID, change.TargetID,
		change.OldRole, change.NewRole, change.ChangedAt)
	if err != nil {
		return fmt.Errorf("record role change: %w", err)
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, user.ErrNotFound
		}
		return u, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}
