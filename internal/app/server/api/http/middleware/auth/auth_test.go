package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/session"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Resolve(ctx context.Context, token string) (user.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockSessionService) Invalidate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi", wantOK: true},
		{name: "lowercase scheme", header: "bearer abc", want: "abc", wantOK: true},
		{name: "missing header", header: "", wantOK: false},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantOK: false},
		{name: "scheme only", header: "Bearer ", wantOK: false},
		{name: "no space", header: "Bearerabc", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := bearerToken(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestAuth_Middleware_Credentials(t *testing.T) {
	u := user.User{ID: uuid.New(), Email: "tom@example.com", Role: user.RoleAuthor}

	tests := []struct {
		name     string
		decorate func(r *http.Request)
		wantNext bool
	}{
		{
			name:     "bearer header",
			decorate: func(r *http.Request) { r.Header.Set("Authorization", "Bearer good-token") },
			wantNext: true,
		},
		{
			name:     "session cookie only",
			decorate: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good-token"}) },
			wantNext: true,
		},
		{
			name:     "no credentials",
			decorate: func(r *http.Request) {},
			wantNext: false,
		},
		{
			name:     "empty cookie value",
			decorate: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: ""}) },
			wantNext: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(MockSessionService)
			sessions.On("Resolve", mock.Anything, "good-token").Return(u, nil)

			mw := New(sessions, slog.Default()).Middleware()

			r := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
			tt.decorate(r)
			w := httptest.NewRecorder()
			ctx := humatest.NewContext(&huma.Operation{}, r, w)

			nextCalled := false
			mw(ctx, func(inner huma.Context) {
				nextCalled = true
				principal, ok := GetPrincipal(inner.Context())
				assert.True(t, ok)
				assert.Equal(t, u, principal)

				token, ok := GetToken(inner.Context())
				assert.True(t, ok)
				assert.Equal(t, "good-token", token)
			})

			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestAuth_Middleware_ResolveFails(t *testing.T) {
	sessions := new(MockSessionService)
	sessions.On("Resolve", mock.Anything, "revoked-token").
		Return(user.User{}, session.ErrUnauthenticated)

	mw := New(sessions, slog.Default()).Middleware()

	r := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
	r.Header.Set("Authorization", "Bearer revoked-token")
	w := httptest.NewRecorder()

	nextCalled := false
	mw(humatest.NewContext(&huma.Operation{}, r, w), func(huma.Context) { nextCalled = true })

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_Require(t *testing.T) {
	tests := []struct {
		name     string
		role     user.Role
		required user.Role
		wantNext bool
		wantCode int
	}{
		{name: "reader blocked from author surface", role: user.RoleReader, required: user.RoleAuthor, wantCode: http.StatusForbidden},
		{name: "reader blocked from admin surface", role: user.RoleReader, required: user.RoleAdmin, wantCode: http.StatusForbidden},
		{name: "author allowed at author level", role: user.RoleAuthor, required: user.RoleAuthor, wantNext: true},
		{name: "author blocked from editor surface", role: user.RoleAuthor, required: user.RoleEditor, wantCode: http.StatusForbidden},
		{name: "editor allowed at author level", role: user.RoleEditor, required: user.RoleAuthor, wantNext: true},
		{name: "editor blocked from admin surface", role: user.RoleEditor, required: user.RoleAdmin, wantCode: http.StatusForbidden},
		{name: "admin allowed everywhere", role: user.RoleAdmin, required: user.RoleAdmin, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := New(new(MockSessionService), slog.Default()).Require(tt.required)

			r := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
			r = r.WithContext(WithPrincipal(r.Context(), user.User{ID: uuid.New(), Role: tt.role}))
			w := httptest.NewRecorder()

			nextCalled := false
			gate(humatest.NewContext(&huma.Operation{}, r, w), func(huma.Context) { nextCalled = true })

			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.Equal(t, tt.wantCode, w.Code)
			}
		})
	}
}

func TestAuth_Require_MissingPrincipal(t *testing.T) {
	gate := New(new(MockSessionService), slog.Default()).Require(user.RoleAuthor)

	r := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	w := httptest.NewRecorder()

	nextCalled := false
	gate(humatest.NewContext(&huma.Operation{}, r, w), func(huma.Context) { nextCalled = true })

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPrincipalContext(t *testing.T) {
	u := user.User{ID: uuid.New(), Email: "deb@example.com", Role: user.RoleEditor}

	ctx := WithPrincipal(context.Background(), u)

	got, ok := GetPrincipal(ctx)
	assert.True(t, ok)
	assert.Equal(t, u, got)

	_, ok = GetPrincipal(context.Background())
	assert.False(t, ok)
}
