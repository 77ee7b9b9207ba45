package auth

// Reason explains why a response failed verification.
type Reason string

const (
	ReasonNone                   Reason = ""
	ReasonFingerprintMismatch    Reason = "fingerprint_mismatch"
	ReasonFingerprintUnavailable Reason = "fingerprint_unavailable"
	ReasonMalformedSignature     Reason = "malformed_signature"
	ReasonSignatureInvalid       Reason = "signature_invalid"
	ReasonAuditFailed            Reason = "audit_failed"
	ReasonInternal               Reason = "internal_error"
)

// Outcome is the result of verifying a hub response. The zero value is a
// failed verification.
type Outcome struct {
	Verified bool   `json:"verified" cbor:"verified"`
	Reason   Reason `json:"reason,omitempty" cbor:"reason,omitempty"`
	Detail   string `json:"detail,omitempty" cbor:"detail,omitempty"`
}

func failed(reason Reason, detail string) Outcome {
	return Outcome{Reason: reason, Detail: detail}
}

// SignedResponse is the counter-signed payload returned by the hub.
type SignedResponse struct {
	Nonce       string `json:"challengeNonce" cbor:"challengeNonce"`
	Signature   string `json:"signedClientId" cbor:"signedClientId"`
	Fingerprint string `json:"pubKeyFingerprint" cbor:"pubKeyFingerprint"`
}
