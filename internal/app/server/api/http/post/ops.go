package post

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listPublishedOp() huma.Operation {
	return huma.Operation{
		OperationID: "posts-list",
		Method:      http.MethodGet,
		Path:        "/api/posts",
		Summary:     "List published posts",
		Tags:        []string{"posts"},
		Middlewares: h.public,
	}
}

func (h *Handler) findPostOp() huma.Operation {
	return huma.Operation{
		OperationID: "posts-find",
		Method:      http.MethodGet,
		Path:        "/api/posts/{slug}",
		Summary:     "Get a published post by slug",
		Tags:        []string{"posts"},
		Middlewares: h.public,
	}
}

func (h *Handler) findPageOp() huma.Operation {
	return huma.Operation{
		OperationID: "pages-find",
		Method:      http.MethodGet,
		Path:        "/api/pages/{slug}",
		Summary:     "Get a published page by slug",
		Tags:        []string{"pages"},
		Middlewares: h.public,
	}
}

func (h *Handler) categoriesOp() huma.Operation {
	return huma.Operation{
		OperationID: "posts-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List categories with published posts",
		Tags:        []string{"posts"},
		Middlewares: h.public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-posts-create",
		Method:      http.MethodPost,
		Path:        "/api/admin/posts",
		Summary:     "Create a draft post or page",
		Tags:        []string{"admin", "posts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) listMineOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-posts-list",
		Method:      http.MethodGet,
		Path:        "/api/admin/posts",
		Summary:     "List posts visible to the actor, drafts included",
		Tags:        []string{"admin", "posts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-posts-update",
		Method:      http.MethodPut,
		Path:        "/api/admin/posts/{id}",
		Summary:     "Update a post",
		Tags:        []string{"admin", "posts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) publishOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-posts-publish",
		Method:      http.MethodPost,
		Path:        "/api/admin/posts/{id}/publish",
		Summary:     "Publish a draft",
		Tags:        []string{"admin", "posts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-posts-delete",
		Method:      http.MethodDelete,
		Path:        "/api/admin/posts/{id}",
		Summary:     "Delete a post",
		Tags:        []string{"admin", "posts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}
