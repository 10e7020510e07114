// Package codec encrypts ledger partitions at rest. Values are serialized
// to JSON, sealed with AES-256-GCM under a single application-wide secret,
// and stored as a base64 string.
//
// The key is a static application secret, not user-derived material. That
// protects stored data against casual inspection of the disk, not against
// anyone holding the application configuration. Kept for compatibility with
// existing ciphertexts; see DESIGN.md.
package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// Codec seals and opens JSON values with a fixed symmetric key.
type Codec struct {
	aead cipher.AEAD
}

// New builds a Codec from the configured secret string. The secret is
// hashed to a 32-byte AES key, so any non-empty string works.
func New(secret string) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("codec: secret must not be empty")
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("codec: init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("codec: init GCM: %w", err)
	}

	return &Codec{aead: aead}, nil
}

// Encrypt serializes v to JSON and seals it. The result is an opaque
// base64 string; nonce is prepended so each call produces distinct output.
func (c *Codec) Encrypt(v any) (string, error) {
	plain, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("codec: marshal: %w", err)
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("codec: nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, plain, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens an Encrypt output and unmarshals the JSON into out.
// Corruption, a wrong key, or invalid JSON all surface as *DecodeError.
func (c *Codec) Decrypt(s string, out any) error {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return &DecodeError{Code: ErrBadCiphertext, Cause: err}
	}
	if len(raw) < c.aead.NonceSize() {
		return &DecodeError{Code: ErrBadCiphertext, Cause: fmt.Errorf("ciphertext shorter than nonce")}
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		// GCM cannot distinguish a wrong key from tampering; both fail
		// authentication.
		return &DecodeError{Code: ErrWrongKey, Cause: err}
	}

	if err := json.Unmarshal(plain, out); err != nil {
		return &DecodeError{Code: ErrBadJSON, Cause: err}
	}
	return nil
}

// DecryptOrPlain reads a value that may predate encryption. Plaintext JSON
// is tried first: attempting to decrypt a legacy plaintext partition must
// not fail the read. Only when the value is not valid JSON is it treated
// as ciphertext.
func (c *Codec) DecryptOrPlain(s string, out any) error {
	if json.Valid([]byte(s)) {
		if err := json.Unmarshal([]byte(s), out); err != nil {
			return &DecodeError{Code: ErrBadJSON, Cause: err}
		}
		return nil
	}
	return c.Decrypt(s, out)
}
