package comment

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) submitOp() huma.Operation {
	return huma.Operation{
		OperationID: "comments-submit",
		Method:      http.MethodPost,
		Path:        "/api/posts/{slug}/comments",
		Summary:     "Submit a comment for moderation",
		Tags:        []string{"comments"},
		Middlewares: h.public,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "comments-list",
		Method:      http.MethodGet,
		Path:        "/api/posts/{slug}/comments",
		Summary:     "List approved comments on a post",
		Tags:        []string{"comments"},
		Middlewares: h.public,
	}
}

func (h *Handler) queueOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-comments-queue",
		Method:      http.MethodGet,
		Path:        "/api/admin/comments",
		Summary:     "List comments awaiting moderation",
		Tags:        []string{"admin", "comments"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) moderateOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-comments-moderate",
		Method:      http.MethodPut,
		Path:        "/api/admin/comments/{id}",
		Summary:     "Approve or flag a comment",
		Tags:        []string{"admin", "comments"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-comments-delete",
		Method:      http.MethodDelete,
		Path:        "/api/admin/comments/{id}",
		Summary:     "Delete a comment",
		Tags:        []string{"admin", "comments"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}
