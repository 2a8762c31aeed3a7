package gallery

import (
	"time"

	"github.com/google/uuid"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/photo"
)

type uploadInput struct {
	Body uploadRequest
}

type uploadRequest struct {
	Title       string     `json:"title,omitempty" maxLength:"200"`
	Caption     string     `json:"caption,omitempty" maxLength:"1000"`
	Location    string     `json:"location,omitempty"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	ContentType string     `json:"content_type" enum:"image/jpeg,image/png,image/webp"`
	Data        string     `json:"data" doc:"Base64-encoded image bytes" minLength:"1"`
}

type photoOutput struct {
	Body photo.Photo
}

type listInput struct {
	Limit  int `query:"limit" default:"20" minimum:"1" maximum:"100"`
	Offset int `query:"offset" default:"0" minimum:"0"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Photos []photo.Photo `json:"photos"`
}

type publishInput struct {
	ID   uuid.UUID `path:"id" doc:"Photo ID"`
	Body publishRequest
}

type publishRequest struct {
	Published bool `json:"published"`
}

type idInput struct {
	ID uuid.UUID `path:"id" doc:"Photo ID"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
