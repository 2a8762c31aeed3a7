package gallery

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware/auth"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/photo"
)

type Handler struct {
	service photo.Servicer
	log     *slog.Logger
	public  huma.Middlewares
	gated   huma.Middlewares
}

func NewHandler(service photo.Servicer, log *slog.Logger, public, gated huma.Middlewares) *Handler {
	return &Handler{
		service: service,
		log:     log,
		public:  public,
		gated:   gated,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.galleryOp(), h.gallery)

	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.listOwnOp(), h.listOwn)
	huma.Register(api, h.publishOp(), h.publish)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) gallery(ctx context.Context, input *listInput) (*listOutput, error) {
	photos, err := h.service.Gallery(ctx, input.Limit, input.Offset)
	if err != nil {
		h.log.Error("failed to list gallery", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &listOutput{Body: listResponse{Photos: photos}}, nil
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*photoOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	data, err := base64.StdEncoding.DecodeString(input.Body.Data)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid base64 data")
	}

	p, err := h.service.Upload(ctx, actor, photo.Upload{
		Title:       input.Body.Title,
		Caption:     input.Body.Caption,
		Location:    input.Body.Location,
		TakenAt:     input.Body.TakenAt,
		ContentType: input.Body.ContentType,
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, photo.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to upload photo", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &photoOutput{Body: *p}, nil
}

func (h *Handler) listOwn(ctx context.Context, input *listInput) (*listOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	photos, err := h.service.ListOwn(ctx, actor, input.Limit, input.Offset)
	if err != nil {
		h.log.Error("failed to list own photos", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &listOutput{Body: listResponse{Photos: photos}}, nil
}

func (h *Handler) publish(ctx context.Context, input *publishInput) (*statusOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.SetPublished(ctx, actor, input.ID, input.Body.Published)
	if err != nil {
		return nil, h.mapError(err, "publish photo")
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*statusOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, actor, input.ID); err != nil {
		return nil, h.mapError(err, "delete photo")
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) mapError(err error, action string) error {
	switch {
	case errors.Is(err, photo.ErrNotFound):
		return huma.Error404NotFound("Photo not found")
	case errors.Is(err, photo.ErrNotOwner):
		return huma.Error403Forbidden("You do not own this photo")
	}
	h.log.Error("failed to "+action, "error", err)
	return huma.Error500InternalServerError("Internal error")
}
