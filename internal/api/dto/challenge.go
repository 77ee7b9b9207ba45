package dto

// SignRequest asks the sidecar to sign a hub challenge.
type SignRequest struct {
	// Challenge is the nonce issued by the hub.
	Challenge string `json:"challenge"`
}

// SignResponse carries the wire-encoded signature.
type SignResponse struct {
	Signature string `json:"signature"`
	Algorithm string `json:"algorithm"`
}

// VerifyRequest carries a hub response to check.
type VerifyRequest struct {
	// Original is the message the hub signed.
	Original string `json:"original"`

	// Nonce is the challenge nonce echoed by the hub.
	Nonce string `json:"challengeNonce,omitempty"`

	// Signature is the wire-encoded hub signature.
	Signature string `json:"signedClientId"`

	// Fingerprint is the intermediate CA fingerprint claimed by the hub.
	// It is required but may be empty: an intermediate without a Subject
	// Key Identifier has the empty fingerprint.
	Fingerprint *string `json:"pubKeyFingerprint"`
}

// VerifyResponse is the verification outcome.
type VerifyResponse struct {
	Verified bool   `json:"verified"`
	Reason   string `json:"reason,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// FingerprintRequest asks for the fingerprint of a certificate.
type FingerprintRequest struct {
	// Certificate is PEM text or base64 DER.
	Certificate BinaryData `json:"certificate"`
}

// FingerprintResponse is the Subject Key Identifier of a certificate.
type FingerprintResponse struct {
	// Fingerprint is lowercase hex, empty if the extension is absent.
	Fingerprint string `json:"fingerprint"`

	// Present reports whether the certificate has the extension.
	Present bool `json:"present"`

	Certificate CertificateInfo `json:"certificate"`
}

// StatusResponse describes the loaded authentication material.
type StatusResponse struct {
	Algorithm    string           `json:"algorithm"`
	Fingerprint  string           `json:"fingerprint"`
	Intermediate CertificateInfo  `json:"intermediate"`
	Client       *CertificateInfo `json:"client,omitempty"`
	AuditEnabled bool             `json:"audit_enabled"`
}
