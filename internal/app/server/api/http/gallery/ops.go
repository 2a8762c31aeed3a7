package gallery

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) galleryOp() huma.Operation {
	return huma.Operation{
		OperationID: "gallery-list",
		Method:      http.MethodGet,
		Path:        "/api/gallery",
		Summary:     "Published photos with presigned URLs",
		Tags:        []string{"gallery"},
		Middlewares: h.public,
	}
}

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-photos-upload",
		Method:      http.MethodPost,
		Path:        "/api/admin/photos",
		Summary:     "Upload a photo",
		Tags:        []string{"admin", "gallery"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) listOwnOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-photos-list",
		Method:      http.MethodGet,
		Path:        "/api/admin/photos",
		Summary:     "List your photos, unpublished included",
		Tags:        []string{"admin", "gallery"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) publishOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-photos-publish",
		Method:      http.MethodPut,
		Path:        "/api/admin/photos/{id}/publish",
		Summary:     "Publish or unpublish a photo",
		Tags:        []string{"admin", "gallery"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-photos-delete",
		Method:      http.MethodDelete,
		Path:        "/api/admin/photos/{id}",
		Summary:     "Delete a photo and its stored object",
		Tags:        []string{"admin", "gallery"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.gated,
	}
}
