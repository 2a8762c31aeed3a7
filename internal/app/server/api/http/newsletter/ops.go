package newsletter

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) subscribeOp() huma.Operation {
	return huma.Operation{
		OperationID: "newsletter-subscribe",
		Method:      http.MethodPost,
		Path:        "/api/newsletter/subscribe",
		Summary:     "Subscribe an email to the newsletter",
		Tags:        []string{"newsletter"},
		Middlewares: h.public,
	}
}

func (h *Handler) unsubscribeOp() huma.Operation {
	return huma.Operation{
		OperationID: "newsletter-unsubscribe",
		Method:      http.MethodPost,
		Path:        "/api/newsletter/unsubscribe",
		Summary:     "Unsubscribe using an emailed token",
		Tags:        []string{"newsletter"},
		Middlewares: h.public,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-newsletter-list",
		Method:      http.MethodGet,
		Path:        "/api/admin/subscribers",
		Summary:     "List active subscribers",
		Tags:        []string{"admin", "newsletter"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}
