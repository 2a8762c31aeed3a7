package user

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	authMW "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware/auth"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, name, password string, role user.Role) (user.User, error) {
	args := m.Called(ctx, email, name, password, role)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) FindByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserService) ChangeRole(ctx context.Context, actor user.User, targetID uuid.UUID, newRole user.Role) (user.User, error) {
	args := m.Called(ctx, actor, targetID, newRole)
	return args.Get(0).(user.User), args.Error(1)
}

func adminContext(admin user.User) context.Context {
	return authMW.WithPrincipal(context.Background(), admin)
}

func TestHandler_changeRole(t *testing.T) {
	admin := user.User{ID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin}
	targetID := uuid.New()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "forbidden for non-admins", serviceErr: user.ErrForbidden, wantStatus: 403},
		{name: "self demotion rejected", serviceErr: user.ErrSelfDemotion, wantStatus: 400},
		{name: "last admin protected", serviceErr: user.ErrLastAdmin, wantStatus: 400},
		{name: "unknown target", serviceErr: user.ErrNotFound, wantStatus: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockUserService)
			service.On("ChangeRole", mock.Anything, admin, targetID, user.RoleEditor).
				Return(user.User{}, tt.serviceErr)

			handler := NewHandler(service, slog.Default(), huma.Middlewares{})

			_, err := handler.changeRole(adminContext(admin), &changeRoleInput{
				ID:   targetID,
				Body: changeRoleRequest{Role: "editor"},
			})

			assert.Error(t, err)
			var statusErr huma.StatusError
			assert.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.wantStatus, statusErr.GetStatus())
		})
	}
}

func TestHandler_changeRole_Success(t *testing.T) {
	admin := user.User{ID: uuid.New(), Role: user.RoleAdmin}
	targetID := uuid.New()
	updated := user.User{ID: targetID, Email: "author@example.com", Role: user.RoleEditor}

	service := new(MockUserService)
	service.On("ChangeRole", mock.Anything, admin, targetID, user.RoleEditor).
		Return(updated, nil)

	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	output, err := handler.changeRole(adminContext(admin), &changeRoleInput{
		ID:   targetID,
		Body: changeRoleRequest{Role: "editor"},
	})

	assert.NoError(t, err)
	assert.Equal(t, user.RoleEditor, output.Body.Role)
	assert.Equal(t, targetID, output.Body.ID)
	service.AssertExpectations(t)
}

func TestHandler_changeRole_InvalidRole(t *testing.T) {
	admin := user.User{ID: uuid.New(), Role: user.RoleAdmin}

	handler := NewHandler(new(MockUserService), slog.Default(), huma.Middlewares{})

	_, err := handler.changeRole(adminContext(admin), &changeRoleInput{
		ID:   uuid.New(),
		Body: changeRoleRequest{Role: "superuser"},
	})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 422, statusErr.GetStatus())
}

func TestHandler_create_EmailTaken(t *testing.T) {
	service := new(MockUserService)
	service.On("Register", mock.Anything, "dup@example.com", "Dup", "Password1", user.RoleAuthor).
		Return(user.User{}, user.ErrEmailTaken)

	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	_, err := handler.create(context.Background(), &createInput{
		Body: createRequest{Email: "dup@example.com", Name: "Dup", Password: "Password1", Role: "author"},
	})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.GetStatus())
}
