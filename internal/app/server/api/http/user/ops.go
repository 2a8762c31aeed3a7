package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-users-create",
		Method:      http.MethodPost,
		Path:        "/api/admin/users",
		Summary:     "Provision an account with an initial role",
		Tags:        []string{"admin", "users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-users-list",
		Method:      http.MethodGet,
		Path:        "/api/admin/users",
		Summary:     "List all accounts",
		Tags:        []string{"admin", "users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) changeRoleOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-users-change-role",
		Method:      http.MethodPut,
		Path:        "/api/admin/users/{id}/role",
		Summary:     "Change a user's role",
		Tags:        []string{"admin", "users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
