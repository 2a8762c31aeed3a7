package subscriber

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, s *Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (Subscriber, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(Subscriber), args.Error(1)
}

func (m *MockRepository) FindByToken(ctx context.Context, token string) (Subscriber, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(Subscriber), args.Error(1)
}

func (m *MockRepository) MarkUnsubscribed(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockRepository) Reactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListActive(ctx context.Context, limit, offset int) ([]Subscriber, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]Subscriber), args.Error(1)
}

func TestService_Subscribe_New(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "deb@example.com").Return(Subscriber{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *Subscriber) bool {
		return s.Email == "deb@example.com" && s.Token != ""
	})).Return(nil)

	sub, err := service.Subscribe(context.Background(), "  Deb@Example.com ")
	require.NoError(t, err)
	assert.True(t, sub.Active())
}

func TestService_Subscribe_IdempotentOnActive(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := Subscriber{ID: uuid.New(), Email: "deb@example.com", Token: "tok"}
	mockRepo.On("FindByEmail", mock.Anything, "deb@example.com").Return(existing, nil)

	sub, err := service.Subscribe(context.Background(), "deb@example.com")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, sub.ID)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Subscribe_ReactivatesUnsubscribed(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	left := time.Now().Add(-24 * time.Hour)
	existing := Subscriber{ID: uuid.New(), Email: "deb@example.com", UnsubscribedAt: &left}
	mockRepo.On("FindByEmail", mock.Anything, "deb@example.com").Return(existing, nil)
	mockRepo.On("Reactivate", mock.Anything, existing.ID).Return(nil)

	sub, err := service.Subscribe(context.Background(), "deb@example.com")
	require.NoError(t, err)
	assert.True(t, sub.Active())
	mockRepo.AssertExpectations(t)
}

func TestService_Subscribe_InvalidEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Subscribe(context.Background(), "not an email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestService_Unsubscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	active := Subscriber{ID: uuid.New(), Email: "deb@example.com"}
	mockRepo.On("FindByToken", mock.Anything, "good-token").Return(active, nil)
	mockRepo.On("MarkUnsubscribed", mock.Anything, active.ID, mock.AnythingOfType("time.Time")).Return(nil)

	require.NoError(t, service.Unsubscribe(context.Background(), "good-token"))

	mockRepo.On("FindByToken", mock.Anything, "bad-token").Return(Subscriber{}, ErrNotFound)
	assert.ErrorIs(t, service.Unsubscribe(context.Background(), "bad-token"), ErrNotFound)
}
