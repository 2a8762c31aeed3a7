package post

import "errors"

var (
	ErrNotFound    = errors.New("post not found")
	ErrInvalidData = errors.New("invalid post data")
	ErrSlugTaken   = errors.New("slug already in use")

	// ErrNotOwner: authors may only modify their own posts; editor and
	// admin may modify any.
	ErrNotOwner = errors.New("post belongs to another author")
)
