// Package errors provides error handling and HTTP status code mapping.
package errors

import (
	"errors"
	"net/http"

	"github.com/mifos/vnext-auth/internal/api/dto"
	"github.com/mifos/vnext-auth/internal/auth"
	"github.com/mifos/vnext-auth/internal/crypto"
	"github.com/mifos/vnext-auth/internal/x509util"
)

// Error codes for API responses.
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeNotFound             = "NOT_FOUND"
	CodeValidation           = "VALIDATION_ERROR"
	CodeInternal             = "INTERNAL_ERROR"
	CodeUnknownAlgorithm     = "UNKNOWN_ALGORITHM"
	CodeUnsupportedAlgorithm = "UNSUPPORTED_ALGORITHM"
	CodeInvalidCertificate   = "INVALID_CERTIFICATE"
	CodeFingerprintDecode    = "FINGERPRINT_DECODE_ERROR"
	CodeKeyLoad              = "KEY_LOAD_ERROR"
	CodeNoPrivateKey         = "NO_PRIVATE_KEY"
	CodeSigning              = "SIGNING_ERROR"
	CodeMalformedSignature   = "MALFORMED_SIGNATURE"
)

// MapError maps an internal error to an HTTP status code and APIError.
func MapError(err error) (int, *dto.APIError) {
	if err == nil {
		return http.StatusOK, nil
	}

	var (
		unknownErr     *crypto.UnknownAlgorithmError
		unsupportedErr *crypto.UnsupportedAlgorithmError
		certErr        *x509util.CertificateLoadError
		fpErr          *x509util.FingerprintDecodeError
		keyErr         *crypto.KeyLoadError
		signErr        *auth.SigningError
	)

	switch {
	case errors.As(err, &unknownErr):
		return http.StatusNotFound, &dto.APIError{
			Code:    CodeUnknownAlgorithm,
			Message: err.Error(),
			Details: map[string]string{"name": unknownErr.Name},
		}
	case errors.As(err, &unsupportedErr):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeUnsupportedAlgorithm,
			Message: err.Error(),
			Details: map[string]string{
				"name":      unsupportedErr.Name,
				"canonical": string(unsupportedErr.Canonical),
			},
		}
	case errors.As(err, &certErr):
		return http.StatusBadRequest, &dto.APIError{
			Code:    CodeInvalidCertificate,
			Message: err.Error(),
		}
	case errors.As(err, &fpErr):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeFingerprintDecode,
			Message: err.Error(),
			Details: map[string]string{"layer": fpErr.Layer},
		}
	case errors.Is(err, auth.ErrMalformedSignature):
		return http.StatusBadRequest, &dto.APIError{
			Code:    CodeMalformedSignature,
			Message: err.Error(),
		}
	case errors.Is(err, auth.ErrNoPrivateKey):
		return http.StatusPreconditionFailed, &dto.APIError{
			Code:    CodeNoPrivateKey,
			Message: err.Error(),
		}
	case errors.As(err, &signErr):
		// The underlying cause may name key internals; keep it out of the body.
		return http.StatusInternalServerError, &dto.APIError{
			Code:    CodeSigning,
			Message: "failed to sign challenge",
			Details: map[string]string{"algorithm": signErr.Algorithm},
		}
	case errors.As(err, &keyErr):
		return http.StatusInternalServerError, &dto.APIError{
			Code:    CodeKeyLoad,
			Message: "failed to load private key",
		}
	}

	// Default internal error
	return http.StatusInternalServerError, &dto.APIError{
		Code:    CodeInternal,
		Message: "An internal error occurred",
	}
}

// NewBadRequest creates a bad request error.
func NewBadRequest(message string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeInvalidRequest,
		Message: message,
	}
}

// NewNotFound creates a not found error.
func NewNotFound(resource, id string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeNotFound,
		Message: resource + " not found",
		Details: map[string]string{"id": id},
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, details map[string]string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeValidation,
		Message: message,
		Details: details,
	}
}
