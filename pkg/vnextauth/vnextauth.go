// Package vnextauth provides the public API of the vNext challenge
// authenticator for the connector session layer.
// It exposes the authenticator from internal/auth.
package vnextauth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mifos/vnext-auth/internal/auth"
	"github.com/mifos/vnext-auth/internal/config"
	"github.com/mifos/vnext-auth/internal/crypto"
	"github.com/mifos/vnext-auth/internal/x509util"
)

// Re-export types from internal/auth
type (
	// SignedResponse is the counter-signed payload returned by the hub.
	SignedResponse = auth.SignedResponse

	// Outcome is the result of verifying a hub response.
	Outcome = auth.Outcome

	// Reason explains why a response failed verification.
	Reason = auth.Reason

	// SigningError reports a failed challenge signature.
	SigningError = auth.SigningError
)

// Re-export error types from internal/crypto and internal/x509util
type (
	KeyLoadError              = crypto.KeyLoadError
	UnsupportedAlgorithmError = crypto.UnsupportedAlgorithmError
	UnknownAlgorithmError     = crypto.UnknownAlgorithmError
	CertificateLoadError      = x509util.CertificateLoadError
	FingerprintDecodeError    = x509util.FingerprintDecodeError
)

// Re-export verification reasons
const (
	ReasonNone                   = auth.ReasonNone
	ReasonFingerprintMismatch    = auth.ReasonFingerprintMismatch
	ReasonFingerprintUnavailable = auth.ReasonFingerprintUnavailable
	ReasonMalformedSignature     = auth.ReasonMalformedSignature
	ReasonSignatureInvalid       = auth.ReasonSignatureInvalid
	ReasonAuditFailed            = auth.ReasonAuditFailed
	ReasonInternal               = auth.ReasonInternal
)

// Re-export sentinel errors
var (
	ErrNoPrivateKey       = auth.ErrNoPrivateKey
	ErrNoIntermediate     = auth.ErrNoIntermediate
	ErrMalformedSignature = auth.ErrMalformedSignature
	ErrNoCertificate      = x509util.ErrNoCertificate
)

// DefaultAlgorithm is used when Config.Algorithm is empty.
const DefaultAlgorithm = string(crypto.DefaultAlgorithm)

// Config locates the client material and selects the algorithm.
type Config struct {
	// PrivateKey is the PKCS#8 PEM client private key.
	PrivateKey string

	// IntermediateCertificate is the hub intermediate CA (PEM or DER).
	IntermediateCertificate string

	// ClientCertificate is the client certificate signed by the hub.
	ClientCertificate string

	// Algorithm is a signature algorithm name, alias or OID.
	// Defaults to DefaultAlgorithm.
	Algorithm string

	// Logger receives technical logs. Optional.
	Logger *zap.Logger
}

// Client signs hub challenges and verifies hub responses. It is safe for
// concurrent use.
type Client struct {
	a *auth.Authenticator
}

// New loads the material named by cfg. No client is returned unless the
// key, both certificates and the algorithm are usable.
func New(cfg Config) (*Client, error) {
	a, err := auth.NewFromFiles(auth.Config{
		PrivateKey:              cfg.PrivateKey,
		IntermediateCertificate: cfg.IntermediateCertificate,
		ClientCertificate:       cfg.ClientCertificate,
	}, auth.Options{
		Algorithm: cfg.Algorithm,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Client{a: a}, nil
}

// NewFromConfigFile builds a client from a YAML configuration file with
// VNEXT_* environment overrides applied. The configuration must pass
// validation.
func NewFromConfigFile(path string, logger *zap.Logger) (*Client, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	files := cfg.AuthFiles()
	return New(Config{
		PrivateKey:              files.PrivateKey,
		IntermediateCertificate: files.IntermediateCertificate,
		ClientCertificate:       files.ClientCertificate,
		Algorithm:               cfg.Auth.Algorithm,
		Logger:                  logger,
	})
}

// Sign signs the challenge nonce issued by the hub and returns it in the
// hub transport encoding.
func (c *Client) Sign(nonce string) (string, error) {
	return c.a.Sign(nonce)
}

// SignContext is Sign with a request id taken from ctx for auditing.
func (c *Client) SignContext(ctx context.Context, nonce string) (string, error) {
	return c.a.SignContext(ctx, nonce)
}

// Verify reports whether resp is a valid hub response to original.
func (c *Client) Verify(original string, resp SignedResponse) bool {
	return c.a.Verify(original, resp).Verified
}

// VerifyOutcome is Verify with the failure reason.
func (c *Client) VerifyOutcome(ctx context.Context, original string, resp SignedResponse) Outcome {
	return c.a.VerifyContext(ctx, original, resp)
}

// Fingerprint returns the fingerprint of the hub intermediate CA.
func (c *Client) Fingerprint() (string, error) {
	return c.a.Fingerprint()
}

// Algorithm returns the canonical name of the configured algorithm.
func (c *Client) Algorithm() string {
	return string(c.a.Algorithm().ID())
}

// WithRequestID returns a context carrying a request id for the audit trail.
func WithRequestID(ctx context.Context, id string) context.Context {
	return auth.WithRequestID(ctx, id)
}

// FingerprintOf returns the lowercase hex Subject Key Identifier of a PEM
// or DER certificate, or "" if it has none.
func FingerprintOf(certPEMorDER []byte) (string, error) {
	cert, err := x509util.ParseCertificate(certPEMorDER)
	if err != nil {
		return "", err
	}
	return x509util.Fingerprint(cert)
}

// ResolveAlgorithm returns the canonical name of an algorithm name, alias
// or OID.
func ResolveAlgorithm(nameOrOID string) (string, error) {
	d, err := crypto.ResolveAlgorithm(nameOrOID)
	if err != nil {
		return "", err
	}
	return string(d.ID()), nil
}
