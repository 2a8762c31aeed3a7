package comment

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusSpam     Status = "spam"
)

type Comment struct {
	ID          uuid.UUID `json:"id"`
	PostID      uuid.UUID `json:"post_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"-"`
	Body        string    `json:"body"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
