// Package dto provides Data Transfer Objects for the sidecar API.
//
// Every type encodes as JSON or, when negotiated, CBOR. CBOR field names
// follow the json tags.
package dto

import (
	"encoding/base64"
	"fmt"
)

// BinaryData represents binary data with encoding metadata.
type BinaryData struct {
	// Data is the encoded content (base64 or PEM).
	Data string `json:"data"`

	// Encoding specifies the encoding format: "pem" (default) or "base64".
	Encoding string `json:"encoding,omitempty"`
}

// Decode decodes the binary data based on its encoding.
func (b *BinaryData) Decode() ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("binary data is nil")
	}
	switch b.Encoding {
	case "pem", "":
		return []byte(b.Data), nil
	case "base64":
		return base64.StdEncoding.DecodeString(b.Data)
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", b.Encoding)
	}
}

// APIError represents a standardized error response.
type APIError struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional context about the error.
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Status is "ok".
	Status string `json:"status"`

	// Version is the server version.
	Version string `json:"version"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	// Ready indicates if the server is ready to accept requests.
	Ready bool `json:"ready"`

	// Checks lists individual readiness checks.
	Checks map[string]bool `json:"checks,omitempty"`
}

// AlgorithmInfo describes a signature algorithm of the registry.
type AlgorithmInfo struct {
	// ID is the canonical name, e.g. "SHA256WITHRSA".
	ID string `json:"id"`

	// Scheme is the signature scheme, e.g. "RSASSA-PKCS1-v1_5".
	Scheme string `json:"scheme"`

	// Digest is the message digest, e.g. "SHA-256".
	Digest string `json:"digest"`

	// OID is the dotted object identifier, if one is registered.
	OID string `json:"oid,omitempty"`

	// Aliases lists the accepted alternative spellings and OIDs.
	Aliases []string `json:"aliases,omitempty"`

	// Description provides additional information.
	Description string `json:"description,omitempty"`
}

// AlgorithmListResponse lists the supported algorithms.
type AlgorithmListResponse struct {
	Algorithms  []AlgorithmInfo `json:"algorithms"`
	Unsupported []string        `json:"unsupported,omitempty"`
}

// CertificateInfo summarizes a loaded certificate.
type CertificateInfo struct {
	Subject string `json:"subject"`
	Issuer  string `json:"issuer"`
	Serial  string `json:"serial"`
	IsCA    bool   `json:"is_ca"`
}
