package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/session"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const principalKey contextKey = "principal"

// SessionCookie carries the session token for browser clients that do not
// set an Authorization header.
const SessionCookie = "session"

// Middleware resolves the session token to a principal. The token comes
// from the Authorization bearer header, falling back to the session cookie.
// The role on the principal is read from the user store on every request,
// so a role change or account deletion takes effect immediately even for
// live tokens.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token, ok := sessionToken(ctx)
		if !ok {
			writeError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		principal, err := a.session.Resolve(ctx.Context(), token)
		if err != nil {
			a.log.Debug("token resolution failed", "error", err)
			writeError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		newCtx := context.WithValue(ctx.Context(), principalKey, principal)
		newCtx = context.WithValue(newCtx, rawTokenKey, token)
		next(huma.WithContext(ctx, newCtx))
	}
}

// Require gates a handler group behind a minimum role. It must run after
// Middleware so the principal is already in the context.
func (a *Auth) Require(min user.Role) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		principal, ok := GetPrincipal(ctx.Context())
		if !ok {
			writeError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !principal.Role.AtLeast(min) {
			a.log.Debug("insufficient role",
				"user_id", principal.ID, "role", principal.Role, "required", min)
			writeError(ctx, http.StatusForbidden, "Forbidden")
			return
		}
		next(ctx)
	}
}

// GetPrincipal returns the authenticated user stored by Middleware.
func GetPrincipal(ctx context.Context) (user.User, bool) {
	principal, ok := ctx.Value(principalKey).(user.User)
	return principal, ok
}

// WithPrincipal is used by handler tests to simulate an authenticated
// request without running the middleware chain.
func WithPrincipal(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, principalKey, u)
}

// WithToken is the test counterpart of the token stashing Middleware does.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, rawTokenKey, token)
}

type tokenKey string

const rawTokenKey tokenKey = "rawToken"

// GetToken returns the raw bearer token of the current request. Handlers
// that act on the session itself, like logout, need it.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(rawTokenKey).(string)
	return token, ok
}

func sessionToken(ctx huma.Context) (string, bool) {
	if token, ok := bearerToken(ctx.Header("Authorization")); ok {
		return token, true
	}
	if c, err := huma.ReadCookie(ctx, SessionCookie); err == nil && c != nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

func writeError(ctx huma.Context, status int, message string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": message,
	})
}
