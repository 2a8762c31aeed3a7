package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockSessionRepo) Find(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSessionRepo) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepo) CountAdminsExcluding(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepo) RecordRoleChange(ctx context.Context, change *user.RoleChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

var testSecret = []byte("unit-test-secret")

func newTestService(sessions *MockSessionRepo, users *MockUserRepo) *Service {
	return NewService(sessions, users, testSecret, slog.Default())
}

func TestService_CreateAndResolve(t *testing.T) {
	sessions := new(MockSessionRepo)
	users := new(MockUserRepo)
	service := newTestService(sessions, users)

	userID := uuid.New()
	var storedHash string

	sessions.On("Create", mock.Anything, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).Return(nil)

	token, err := service.Create(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, storedHash)

	stored := user.User{ID: userID, Email: "tom@example.com", Role: user.RoleAuthor}
	sessions.On("Find", mock.Anything, storedHash).Return(userID, nil)
	users.On("FindByID", mock.Anything, userID).Return(stored, nil)

	resolved, err := service.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved.ID)
	assert.Equal(t, user.RoleAuthor, resolved.Role)

	sessions.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestService_Resolve_RoleIsReadFresh(t *testing.T) {
	sessions := new(MockSessionRepo)
	users := new(MockUserRepo)
	service := newTestService(sessions, users)

	userID := uuid.New()
	var storedHash string
	sessions.On("Create", mock.Anything, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).Return(nil)

	token, err := service.Create(context.Background(), userID)
	require.NoError(t, err)

	sessions.On("Find", mock.Anything, mock.AnythingOfType("string")).Return(userID, nil)

	// First resolve sees an admin.
	users.On("FindByID", mock.Anything, userID).Return(user.User{ID: userID, Role: user.RoleAdmin}, nil).Once()
	resolved, err := service.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, resolved.Role)

	// Demoted in the store; the very next resolve of the same token sees
	// reader without any re-login.
	users.On("FindByID", mock.Anything, userID).Return(user.User{ID: userID, Role: user.RoleReader}, nil).Once()
	resolved, err = service.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.RoleReader, resolved.Role)

	_ = storedHash
}

func TestService_Resolve_Failures(t *testing.T) {
	sessions := new(MockSessionRepo)
	users := new(MockUserRepo)
	service := newTestService(sessions, users)

	userID := uuid.New()

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.Resolve(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenStr, err := forged.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		_, err = service.Resolve(context.Background(), tokenStr)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		tokenStr, err := expired.SignedString(testSecret)
		require.NoError(t, err)

		_, err = service.Resolve(context.Background(), tokenStr)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("revoked session", func(t *testing.T) {
		var storedHash string
		sessions.On("Create", mock.Anything, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) { storedHash = args.String(2) }).Return(nil).Once()

		token, err := service.Create(context.Background(), userID)
		require.NoError(t, err)

		sessions.On("Find", mock.Anything, storedHash).Return(uuid.Nil, ErrUnauthenticated).Once()
		_, err = service.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("deleted account", func(t *testing.T) {
		var storedHash string
		sessions.On("Create", mock.Anything, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) { storedHash = args.String(2) }).Return(nil).Once()

		token, err := service.Create(context.Background(), userID)
		require.NoError(t, err)

		sessions.On("Find", mock.Anything, storedHash).Return(userID, nil).Once()
		users.On("FindByID", mock.Anything, userID).Return(user.User{}, user.ErrNotFound).Once()

		_, err = service.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestService_Invalidate(t *testing.T) {
	sessions := new(MockSessionRepo)
	users := new(MockUserRepo)
	service := newTestService(sessions, users)

	userID := uuid.New()
	var storedHash string
	sessions.On("Create", mock.Anything, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).Return(nil)

	token, err := service.Create(context.Background(), userID)
	require.NoError(t, err)

	sessions.On("Revoke", mock.Anything, storedHash).Return(nil)
	require.NoError(t, service.Invalidate(context.Background(), token))

	err = service.Invalidate(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	sessions.AssertExpectations(t)
}
