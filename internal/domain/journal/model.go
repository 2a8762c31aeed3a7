package journal

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderContent replaces the body when an envelope fails to open.
const PlaceholderContent = "[content unavailable]"

// Entry is a private journal note. The body is stored encrypted; Content is
// only populated transiently between decryption and the response, or for
// legacy rows written before encryption was introduced. Invariant: Content
// is empty whenever Encrypted is set.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    uuid.UUID `json:"author_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Encrypted   *Envelope `json:"-"`
	IsEncrypted bool      `json:"is_encrypted"`
	Mood        string    `json:"mood,omitempty"`
	Weather     string    `json:"weather,omitempty"`
	Location    string    `json:"location,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
