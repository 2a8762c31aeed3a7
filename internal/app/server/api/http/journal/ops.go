package journal

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-create",
		Method:      http.MethodPost,
		Path:        "/api/journal",
		Summary:     "Create a private journal entry",
		Tags:        []string{"journal"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-list",
		Method:      http.MethodGet,
		Path:        "/api/journal",
		Summary:     "List own journal entries",
		Tags:        []string{"journal"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-find",
		Method:      http.MethodGet,
		Path:        "/api/journal/{id}",
		Summary:     "Get one of your journal entries",
		Tags:        []string{"journal"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-update",
		Method:      http.MethodPut,
		Path:        "/api/journal/{id}",
		Summary:     "Update a journal entry",
		Tags:        []string{"journal"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-delete",
		Method:      http.MethodDelete,
		Path:        "/api/journal/{id}",
		Summary:     "Delete a journal entry",
		Tags:        []string{"journal"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
