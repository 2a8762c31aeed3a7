package journal

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware/auth"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/journal"
)

type Handler struct {
	service    journal.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service journal.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*entryOutput, error) {
	principal, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	entry, err := h.service.Create(ctx, principal.ID, draftFrom(input.Body))
	if err != nil {
		if errors.Is(err, journal.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to create journal entry", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &entryOutput{Body: *entry}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	principal, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	entries, err := h.service.List(ctx, principal.ID, input.Limit, input.Offset)
	if err != nil {
		h.log.Error("failed to list journal entries", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &listOutput{Body: listResponse{Entries: entries}}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*entryOutput, error) {
	principal, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	entry, err := h.service.Get(ctx, principal.ID, input.ID)
	if err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			return nil, huma.Error404NotFound("Entry not found")
		}
		h.log.Error("failed to get journal entry", "entry_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &entryOutput{Body: *entry}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*entryOutput, error) {
	principal, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	entry, err := h.service.Update(ctx, principal.ID, input.ID, draftFrom(input.Body))
	if err != nil {
		switch {
		case errors.Is(err, journal.ErrNotFound):
			return nil, huma.Error404NotFound("Entry not found")
		case errors.Is(err, journal.ErrInvalidData):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to update journal entry", "entry_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &entryOutput{Body: *entry}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*statusOutput, error) {
	principal, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, principal.ID, input.ID); err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			return nil, huma.Error404NotFound("Entry not found")
		}
		h.log.Error("failed to delete journal entry", "entry_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func draftFrom(req entryRequest) journal.Draft {
	return journal.Draft{
		Title:    req.Title,
		Content:  req.Content,
		Mood:     req.Mood,
		Weather:  req.Weather,
		Location: req.Location,
		Tags:     req.Tags,
	}
}
