package subscriber

import (
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	// Token is the opaque unsubscribe secret mailed out with every
	// newsletter; possession of it is the only proof required.
	Token          string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

func (s Subscriber) Active() bool {
	return s.UnsubscribedAt == nil
}
