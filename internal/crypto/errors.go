package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrVerification is returned when a signature does not verify.
	ErrVerification = errors.New("signature verification failed")

	// ErrNotDigestInfo is returned when a message signed without a digest
	// is not a DER DigestInfo.
	ErrNotDigestInfo = errors.New("message is not a DigestInfo")

	// ErrKeyMismatch is returned when a key does not belong to the family
	// an algorithm signs with.
	ErrKeyMismatch = errors.New("key type does not match signature algorithm")

	// ErrNoPEMBlock is returned when the key source contains no PEM block.
	ErrNoPEMBlock = errors.New("no PEM block found")

	// ErrUnsupportedKey is returned for private keys no registered
	// algorithm can sign with.
	ErrUnsupportedKey = errors.New("unsupported key algorithm")
)

// KeyLoadError reports a private key that could not be read or decoded.
type KeyLoadError struct {
	Path string
	Err  error
}

func (e *KeyLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load private key: %v", e.Err)
	}
	return fmt.Sprintf("failed to load private key from %s: %v", e.Path, e.Err)
}

func (e *KeyLoadError) Unwrap() error { return e.Err }

// UnsupportedAlgorithmError reports an algorithm that is recognised but
// has no implementation.
type UnsupportedAlgorithmError struct {
	// Name is the name as requested by the caller.
	Name string
	// Canonical is the canonical name Name resolved to.
	Canonical AlgorithmID
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported signature algorithm: %s (%s)", e.Name, e.Canonical)
}

// UnknownAlgorithmError reports an algorithm name that is not recognised.
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown signature algorithm: %s", e.Name)
}
