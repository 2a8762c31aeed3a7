package comment

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/comment"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/post"
)

type Handler struct {
	service comment.Servicer
	posts   post.Servicer
	log     *slog.Logger
	public  huma.Middlewares
	gated   huma.Middlewares
}

func NewHandler(service comment.Servicer, posts post.Servicer, log *slog.Logger, public, gated huma.Middlewares) *Handler {
	return &Handler{
		service: service,
		posts:   posts,
		log:     log,
		public:  public,
		gated:   gated,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.submitOp(), h.submit)
	huma.Register(api, h.listOp(), h.list)

	huma.Register(api, h.queueOp(), h.queue)
	huma.Register(api, h.moderateOp(), h.moderate)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) submit(ctx context.Context, input *submitInput) (*submitOutput, error) {
	p, err := h.posts.GetPublishedBySlug(ctx, post.KindPost, input.Slug)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return nil, huma.Error404NotFound("Post not found")
		}
		h.log.Error("failed to resolve post for comment", "slug", input.Slug, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	c, err := h.service.Submit(ctx, p.ID, input.Body.Name, input.Body.Email, input.Body.Body)
	if err != nil {
		if errors.Is(err, comment.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to submit comment", "post_id", p.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &submitOutput{Body: *c}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	p, err := h.posts.GetPublishedBySlug(ctx, post.KindPost, input.Slug)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return nil, huma.Error404NotFound("Post not found")
		}
		h.log.Error("failed to resolve post for comments", "slug", input.Slug, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	comments, err := h.service.ListApproved(ctx, p.ID)
	if err != nil {
		h.log.Error("failed to list comments", "post_id", p.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &listOutput{Body: listResponse{Comments: comments}}, nil
}

func (h *Handler) queue(ctx context.Context, input *queueInput) (*listOutput, error) {
	comments, err := h.service.Queue(ctx, input.Limit, input.Offset)
	if err != nil {
		h.log.Error("failed to list moderation queue", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &listOutput{Body: listResponse{Comments: comments}}, nil
}

func (h *Handler) moderate(ctx context.Context, input *moderateInput) (*statusOutput, error) {
	err := h.service.Moderate(ctx, input.ID, comment.Status(input.Body.Status))
	if err != nil {
		switch {
		case errors.Is(err, comment.ErrNotFound):
			return nil, huma.Error404NotFound("Comment not found")
		case errors.Is(err, comment.ErrInvalidData):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("failed to moderate comment", "comment_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*statusOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, comment.ErrNotFound) {
			return nil, huma.Error404NotFound("Comment not found")
		}
		h.log.Error("failed to delete comment", "comment_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}
