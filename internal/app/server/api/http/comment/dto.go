package comment

import (
	"github.com/google/uuid"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/comment"
)

type submitInput struct {
	Slug string `path:"slug" doc:"Post slug"`
	Body submitRequest
}

type submitRequest struct {
	Name  string `json:"name" minLength:"1" maxLength:"80" doc:"Display name"`
	Email string `json:"email" format:"email" doc:"Never published"`
	Body  string `json:"body" minLength:"1" maxLength:"4000"`
}

type submitOutput struct {
	Body comment.Comment
}

type listInput struct {
	Slug string `path:"slug" doc:"Post slug"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Comments []comment.Comment `json:"comments"`
}

type queueInput struct {
	Limit  int `query:"limit" default:"20" minimum:"1" maximum:"100"`
	Offset int `query:"offset" default:"0" minimum:"0"`
}

type moderateInput struct {
	ID   uuid.UUID `path:"id" doc:"Comment ID"`
	Body moderateRequest
}

type moderateRequest struct {
	Status string `json:"status" enum:"pending,approved,spam" doc:"New moderation status"`
}

type idInput struct {
	ID uuid.UUID `path:"id" doc:"Comment ID"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
