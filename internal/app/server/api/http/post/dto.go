package post

import (
	"github.com/google/uuid"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/post"
)

type draftRequest struct {
	Kind     string   `json:"kind,omitempty" enum:"post,page" doc:"Defaults to post"`
	Title    string   `json:"title" minLength:"1" maxLength:"200"`
	Slug     string   `json:"slug,omitempty" doc:"Derived from title when empty"`
	Excerpt  string   `json:"excerpt,omitempty"`
	Body     string   `json:"body"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type createInput struct {
	Body draftRequest
}

type postOutput struct {
	Body post.Post
}

type idInput struct {
	ID uuid.UUID `path:"id" doc:"Post ID"`
}

type updateInput struct {
	ID   uuid.UUID `path:"id" doc:"Post ID"`
	Body draftRequest
}

type slugInput struct {
	Slug string `path:"slug" doc:"Post slug"`
}

type listPublishedInput struct {
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Search   string `query:"q"`
	Limit    int    `query:"limit" default:"20" minimum:"1" maximum:"100"`
	Offset   int    `query:"offset" default:"0" minimum:"0"`
}

type listAdminInput struct {
	Limit  int `query:"limit" default:"20" minimum:"1" maximum:"100"`
	Offset int `query:"offset" default:"0" minimum:"0"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Posts []post.Post `json:"posts"`
}

type categoriesOutput struct {
	Body categoriesResponse
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
