package post

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/api/http/middleware/auth"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/post"
)

type Handler struct {
	service post.Servicer
	log     *slog.Logger
	public  huma.Middlewares
	gated   huma.Middlewares
}

func NewHandler(service post.Servicer, log *slog.Logger, public, gated huma.Middlewares) *Handler {
	return &Handler{
		service: service,
		log:     log,
		public:  public,
		gated:   gated,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	// Public reads
	huma.Register(api, h.listPublishedOp(), h.listPublished)
	huma.Register(api, h.findPostOp(), h.findPost)
	huma.Register(api, h.findPageOp(), h.findPage)
	huma.Register(api, h.categoriesOp(), h.categories)

	// Authoring
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listMineOp(), h.listMine)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.publishOp(), h.publish)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) listPublished(ctx context.Context, input *listPublishedInput) (*listOutput, error) {
	posts, err := h.service.ListPublished(ctx, post.Filter{
		Kind:     post.KindPost,
		Category: input.Category,
		Tag:      input.Tag,
		Search:   input.Search,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		h.log.Error("failed to list published posts", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &listOutput{Body: listResponse{Posts: posts}}, nil
}

func (h *Handler) findPost(ctx context.Context, input *slugInput) (*postOutput, error) {
	return h.findBySlug(ctx, post.KindPost, input.Slug)
}

func (h *Handler) findPage(ctx context.Context, input *slugInput) (*postOutput, error) {
	return h.findBySlug(ctx, post.KindPage, input.Slug)
}

func (h *Handler) findBySlug(ctx context.Context, kind post.Kind, slug string) (*postOutput, error) {
	p, err := h.service.GetPublishedBySlug(ctx, kind, slug)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return nil, huma.Error404NotFound("Not found")
		}
		h.log.Error("failed to get post by slug", "slug", slug, "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &postOutput{Body: *p}, nil
}

func (h *Handler) categories(ctx context.Context, _ *struct{}) (*categoriesOutput, error) {
	categories, err := h.service.Categories(ctx)
	if err != nil {
		h.log.Error("failed to list categories", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &categoriesOutput{Body: categoriesResponse{Categories: categories}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*postOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Create(ctx, actor, draftFrom(input.Body))
	if err != nil {
		return nil, h.mapError(err, "create post")
	}

	return &postOutput{Body: *p}, nil
}

func (h *Handler) listMine(ctx context.Context, input *listAdminInput) (*listOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	posts, err := h.service.ListForActor(ctx, actor, input.Limit, input.Offset)
	if err != nil {
		h.log.Error("failed to list posts", "error", err)
		return nil, huma.Error500InternalServerError("Internal error")
	}

	return &listOutput{Body: listResponse{Posts: posts}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*postOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Update(ctx, actor, input.ID, draftFrom(input.Body))
	if err != nil {
		return nil, h.mapError(err, "update post")
	}

	return &postOutput{Body: *p}, nil
}

func (h *Handler) publish(ctx context.Context, input *idInput) (*postOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Publish(ctx, actor, input.ID)
	if err != nil {
		return nil, h.mapError(err, "publish post")
	}

	return &postOutput{Body: *p}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*statusOutput, error) {
	actor, ok := authMW.GetPrincipal(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, actor, input.ID); err != nil {
		return nil, h.mapError(err, "delete post")
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) mapError(err error, action string) error {
	switch {
	case errors.Is(err, post.ErrNotFound):
		return huma.Error404NotFound("Post not found")
	case errors.Is(err, post.ErrNotOwner):
		return huma.Error403Forbidden("You do not own this post")
	case errors.Is(err, post.ErrSlugTaken):
		return huma.Error409Conflict("Slug already in use")
	case errors.Is(err, post.ErrInvalidData):
		return huma.Error422UnprocessableEntity(err.Error())
	}
	h.log.Error("failed to "+action, "error", err)
	return huma.Error500InternalServerError("Internal error")
}

func draftFrom(req draftRequest) post.Draft {
	return post.Draft{
		Kind:     post.Kind(req.Kind),
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Body:     req.Body,
		Category: req.Category,
		Tags:     req.Tags,
	}
}
