package journal

import "errors"

var (
	ErrNotFound    = errors.New("journal entry not found")
	ErrInvalidData = errors.New("invalid journal entry data")

	// ErrDecrypt: the envelope failed authentication. Corrupted row, a
	// rotated/wrong master key, or tampering. Never retried; callers show
	// a placeholder instead of guessing at plaintext.
	ErrDecrypt = errors.New("journal entry could not be decrypted")

	// ErrInvalidKey: the master key handed to the codec is not a valid
	// AES-256 key.
	ErrInvalidKey = errors.New("journal master key must be 32 bytes")
)
