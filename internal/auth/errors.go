package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPrivateKey is returned when signing without client key material.
	ErrNoPrivateKey = errors.New("could not find private key")

	// ErrNoIntermediate is returned when constructing an authenticator
	// without the hub intermediate certificate.
	ErrNoIntermediate = errors.New("intermediate certificate is required")
)

// SigningError wraps any failure to produce a challenge signature.
type SigningError struct {
	Algorithm string
	Err       error
}

func (e *SigningError) Error() string {
	if e.Algorithm == "" {
		return fmt.Sprintf("failed to sign challenge: %v", e.Err)
	}
	return fmt.Sprintf("failed to sign challenge with %s: %v", e.Algorithm, e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }
