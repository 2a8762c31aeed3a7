package journal

import (
	"github.com/google/uuid"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/journal"
)

type entryRequest struct {
	Title    string   `json:"title" minLength:"1" maxLength:"200" doc:"Entry title"`
	Content  string   `json:"content" doc:"Entry body, stored encrypted"`
	Mood     string   `json:"mood,omitempty"`
	Weather  string   `json:"weather,omitempty"`
	Location string   `json:"location,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type createInput struct {
	Body entryRequest
}

type entryOutput struct {
	Body journal.Entry
}

type findInput struct {
	ID uuid.UUID `path:"id" doc:"Entry ID"`
}

type updateInput struct {
	ID   uuid.UUID `path:"id" doc:"Entry ID"`
	Body entryRequest
}

type listInput struct {
	Limit  int `query:"limit" default:"20" minimum:"1" maximum:"100"`
	Offset int `query:"offset" default:"0" minimum:"0"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Entries []journal.Entry `json:"entries"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
