package journal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	// ivSize matches the stored format: every envelope carries a
	// 16-byte IV, so GCM is constructed with an extended nonce size.
	ivSize  = 16
	tagSize = 16
)

// Envelope is the unit of ciphertext persisted for an encrypted entry body.
// All three fields are produced together by Seal and are only meaningful as
// a bundle; mixing fields across envelopes fails authentication.
type Envelope struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	Tag        string `json:"tag"`
}

// Codec seals and opens journal entry bodies with AES-256-GCM under a single
// deployment-wide master key. It is stateless and safe for concurrent use.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec builds a codec from a 32-byte master key. The key comes from
// deployment configuration; there is deliberately no fallback key here —
// config refuses to load without one.
func NewCodec(masterKey []byte) (*Codec, error) {
	if len(masterKey) != 32 {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return &Codec{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh random IV. A new IV is generated on
// every call, so sealing the same plaintext twice yields different
// envelopes.
func (c *Codec) Seal(plaintext string) (Envelope, error) {
	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	// Seal appends the authentication tag to the ciphertext; store the
	// two separately.
	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return Envelope{
		Ciphertext: hex.EncodeToString(ciphertext),
		IV:         hex.EncodeToString(iv),
		Tag:        hex.EncodeToString(tag),
	}, nil
}

// Open decrypts an envelope, verifying its authentication tag. Any bit flip
// in ciphertext, IV or tag yields ErrDecrypt rather than wrong plaintext.
func (c *Codec) Open(env Envelope) (string, error) {
	ciphertext, err := hex.DecodeString(env.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: bad ciphertext encoding", ErrDecrypt)
	}
	iv, err := hex.DecodeString(env.IV)
	if err != nil || len(iv) != ivSize {
		return "", fmt.Errorf("%w: bad iv", ErrDecrypt)
	}
	tag, err := hex.DecodeString(env.Tag)
	if err != nil || len(tag) != tagSize {
		return "", fmt.Errorf("%w: bad tag", ErrDecrypt)
	}

	plaintext, err := c.aead.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", ErrDecrypt
	}

	return string(plaintext), nil
}
