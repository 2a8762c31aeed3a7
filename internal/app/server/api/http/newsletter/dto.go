package newsletter

import (
	"time"

	"github.com/google/uuid"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/subscriber"
)

type subscribeInput struct {
	Body subscribeRequest
}

type subscribeRequest struct {
	Email string `json:"email" format:"email"`
}

type subscribeOutput struct {
	Body statusResponse
}

type unsubscribeInput struct {
	Body unsubscribeRequest
}

type unsubscribeRequest struct {
	Token string `json:"token" minLength:"1" doc:"Unsubscribe token from the newsletter email"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}

type listInput struct {
	Limit  int `query:"limit" default:"100" minimum:"1" maximum:"1000"`
	Offset int `query:"offset" default:"0" minimum:"0"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Subscribers []subscriberView `json:"subscribers"`
}

// subscriberView keeps the unsubscribe token out of API responses.
type subscriberView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toView(s subscriber.Subscriber) subscriberView {
	return subscriberView{
		ID:        s.ID,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
