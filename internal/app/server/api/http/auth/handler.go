package auth

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware/auth"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/session"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type Handler struct {
	users      user.Servicer
	sessions   session.Servicer
	log        *slog.Logger
	public     huma.Middlewares
	authorized huma.Middlewares
}

func NewHandler(users user.Servicer, sessions session.Servicer, log *slog.Logger, public, authorized huma.Middlewares) *Handler {
	return &Handler{
		users:      users,
		sessions:   sessions,
		log:        log,
		public:     public,
		authorized: authorized,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.users.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	token, err := h.sessions.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to create session", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &loginOutput{
		Body: loginResponse{
			Token: token,
			User:  toAccountView(u),
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	token, ok := authMW.GetToken(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.sessions.Invalidate(ctx, token); err != nil {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	return &logoutOutput{
		Body: statusResponse{Status: "Ok"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	principal, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	return &meOutput{
		Body: toAccountView(principal),
	}, nil
}
