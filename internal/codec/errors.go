package codec

import (
	"errors"
	"fmt"
)

// DecodeErrorCode identifies why a stored value could not be decoded.
type DecodeErrorCode string

const (
	ErrBadCiphertext DecodeErrorCode = "BAD_CIPHERTEXT"
	ErrWrongKey      DecodeErrorCode = "WRONG_KEY"
	ErrBadJSON       DecodeErrorCode = "BAD_JSON"
)

// DecodeError means a stored value was present but unreadable: corrupted
// ciphertext, a mismatched key, or bytes that decrypted but are not valid
// JSON. Callers treat it as "no data" and fall back to defaults; it is
// distinguishable from a plain not-found.
type DecodeError struct {
	Code  DecodeErrorCode
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] decode failed: %v", e.Code, e.Cause)
	}
	return fmt.Sprintf("[%s] decode failed", e.Code)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// IsDecodeError reports whether err is (or wraps) a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
