package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware/auth"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.changeRoleOp(), h.changeRole)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	role, err := user.ParseRole(input.Body.Role)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid role")
	}

	u, err := h.service.Register(ctx, input.Body.Email, input.Body.Name, input.Body.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error409Conflict("Email already registered")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to create user", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &createOutput{Body: toAccountView(u)}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	users, err := h.service.List(ctx)
	if err != nil {
		h.log.Error("failed to list users", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	views := make([]accountView, 0, len(users))
	for _, u := range users {
		views = append(views, toAccountView(u))
	}
	return &listOutput{Body: listResponse{Users: views}}, nil
}

func (h *Handler) changeRole(ctx context.Context, input *changeRoleInput) (*changeRoleOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	role, err := user.ParseRole(input.Body.Role)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid role")
	}

	updated, err := h.service.ChangeRole(ctx, actor, input.ID, role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrForbidden):
			return nil, huma.Error403Forbidden("Only admins may change roles")
		case errors.Is(err, user.ErrSelfDemotion):
			return nil, huma.Error400BadRequest("Admins cannot change their own role")
		case errors.Is(err, user.ErrLastAdmin):
			return nil, huma.Error400BadRequest("Cannot demote the last remaining admin")
		case errors.Is(err, user.ErrNotFound):
			return nil, huma.Error404NotFound("User not found")
		}
		h.log.Error("failed to change role", "target_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &changeRoleOutput{Body: toAccountView(updated)}, nil
}
