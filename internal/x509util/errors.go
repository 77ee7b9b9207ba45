package x509util

import (
	"errors"
	"fmt"
)

// ErrNoCertificate is returned when a PEM source holds no CERTIFICATE block.
var ErrNoCertificate = errors.New("no CERTIFICATE block found")

// CertificateLoadError reports a certificate that could not be read or
// decoded.
type CertificateLoadError struct {
	Path string
	Err  error
}

func (e *CertificateLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load certificate: %v", e.Err)
	}
	return fmt.Sprintf("failed to load certificate from %s: %v", e.Path, e.Err)
}

func (e *CertificateLoadError) Unwrap() error { return e.Err }

// FingerprintDecodeError reports a Subject Key Identifier extension whose
// value is not the expected nested OCTET STRING.
type FingerprintDecodeError struct {
	// Layer names the encoding layer that failed to decode.
	Layer string
}

func (e *FingerprintDecodeError) Error() string {
	return fmt.Sprintf("malformed subject key identifier: invalid %s", e.Layer)
}
