package photo

import (
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	Title       string     `json:"title"`
	Caption     string     `json:"caption,omitempty"`
	Location    string     `json:"location,omitempty"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	ObjectKey   string     `json:"-"`
	// WebPKey is filled by the transcoding pipeline once a WebP variant
	// exists alongside the original.
	WebPKey     string     `json:"-"`
	ContentType string     `json:"content_type"`
	Size        int64      `json:"size"`
	Published   bool       `json:"published"`
	CreatedAt   time.Time  `json:"created_at"`

	// URL is a presigned download link, populated on the way out and
	// never stored.
	URL string `json:"url,omitempty"`
}
