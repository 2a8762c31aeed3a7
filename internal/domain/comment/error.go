package comment

import "errors"

var (
	ErrNotFound    = errors.New("comment not found")
	ErrInvalidData = errors.New("invalid comment data")
)
