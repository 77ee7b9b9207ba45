// Package auth implements the challenge/response handshake with the payment
// hub: signing of server-issued challenges with the client key and
// verification of counter-signed hub responses against the intermediate CA.
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mifos/vnext-auth/internal/audit"
	"github.com/mifos/vnext-auth/internal/crypto"
	"github.com/mifos/vnext-auth/internal/x509util"
)

// Material is the key and certificate material of an authenticator.
type Material struct {
	// Key is the client private key. It may be nil for a verify-only
	// authenticator, in which case Sign fails.
	Key *crypto.KeyMaterial

	// Intermediate is the hub intermediate CA certificate. Required.
	Intermediate *x509util.Certificate

	// Client is the client certificate signed by the hub. Optional.
	Client *x509util.Certificate
}

// Config locates the material on disk.
type Config struct {
	PrivateKey              string
	IntermediateCertificate string
	ClientCertificate       string
}

// Options tunes an authenticator.
type Options struct {
	// Algorithm is a name or OID accepted by crypto.ResolveAlgorithm.
	// Defaults to SHA1WITHRSA.
	Algorithm string

	// Random is the entropy source for randomized schemes. Defaults to
	// crypto/rand.Reader.
	Random io.Reader

	// Logger receives technical logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Authenticator signs challenges and verifies hub responses. It holds only
// immutable material and is safe for concurrent use.
type Authenticator struct {
	key          *crypto.KeyMaterial
	intermediate *x509util.Certificate
	client       *x509util.Certificate
	primitive    crypto.Primitive
	random       io.Reader
	logger       *zap.Logger
}

// New builds an authenticator from already loaded material. Nothing is
// returned unless the whole configuration is usable.
func New(material Material, opts Options) (*Authenticator, error) {
	if material.Intermediate == nil {
		return nil, ErrNoIntermediate
	}

	name := opts.Algorithm
	if name == "" {
		name = string(crypto.DefaultAlgorithm)
	}
	desc, err := crypto.ResolveAlgorithm(name)
	if err != nil {
		return nil, err
	}
	primitive, err := crypto.NewPrimitive(desc)
	if err != nil {
		return nil, err
	}

	random := opts.Random
	if random == nil {
		random = rand.Reader
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Authenticator{
		key:          material.Key,
		intermediate: material.Intermediate,
		client:       material.Client,
		primitive:    primitive,
		random:       random,
		logger:       logger.With(zap.String("algorithm", string(desc.ID()))),
	}, nil
}

// NewFromFiles loads the private key and both certificates named by cfg
// and builds an authenticator. Each load is audited; the first failure
// aborts construction.
func NewFromFiles(cfg Config, opts Options) (*Authenticator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("loading private key", zap.String("path", cfg.PrivateKey))
	key, err := crypto.LoadPrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, errors.Join(err, audit.LogKeyLoaded(cfg.PrivateKey, "", false, err.Error()))
	}
	if err := audit.LogKeyLoaded(cfg.PrivateKey, key.Family().String(), true, ""); err != nil {
		return nil, err
	}

	logger.Debug("loading intermediate certificate", zap.String("path", cfg.IntermediateCertificate))
	intermediate, err := loadCertificate(cfg.IntermediateCertificate)
	if err != nil {
		return nil, err
	}

	logger.Debug("loading client certificate", zap.String("path", cfg.ClientCertificate))
	client, err := loadCertificate(cfg.ClientCertificate)
	if err != nil {
		return nil, err
	}

	opts.Logger = logger
	return New(Material{Key: key, Intermediate: intermediate, Client: client}, opts)
}

func loadCertificate(path string) (*x509util.Certificate, error) {
	cert, err := x509util.LoadCertificate(path)
	if err != nil {
		return nil, errors.Join(err, audit.LogCertLoaded(path, "", "", false, err.Error()))
	}
	if err := audit.LogCertLoaded(path, cert.Subject(), cert.SerialNumber(), true, ""); err != nil {
		return nil, err
	}
	return cert, nil
}

// Algorithm returns the configured signature algorithm.
func (a *Authenticator) Algorithm() crypto.Descriptor {
	return a.primitive.Descriptor()
}

// ClientCertificate returns the client certificate, or nil if none was
// configured.
func (a *Authenticator) ClientCertificate() *x509util.Certificate {
	return a.client
}

// IntermediateCertificate returns the hub intermediate CA certificate.
func (a *Authenticator) IntermediateCertificate() *x509util.Certificate {
	return a.intermediate
}

// Fingerprint returns the Subject Key Identifier of the intermediate CA.
// It is recomputed on every call.
func (a *Authenticator) Fingerprint() (string, error) {
	fp, err := x509util.Fingerprint(a.intermediate)
	if err != nil {
		return "", err
	}
	a.logger.Debug("computed intermediate fingerprint", zap.String("ski", fp))
	return fp, nil
}

// Sign signs challenge with the client key and returns the wire-encoded
// signature.
func (a *Authenticator) Sign(challenge string) (string, error) {
	return a.SignContext(context.Background(), challenge)
}

// SignContext is Sign with a request id taken from ctx for auditing.
func (a *Authenticator) SignContext(ctx context.Context, challenge string) (string, error) {
	alg := string(a.primitive.Descriptor().ID())
	requestID := RequestIDFromContext(ctx)

	raw, err := a.sign([]byte(challenge))
	if err != nil {
		a.logger.Warn("challenge signing failed", zap.Error(err), zap.String("request_id", requestID))
		return "", &SigningError{
			Algorithm: alg,
			Err:       errors.Join(err, audit.LogChallengeSigned(alg, requestID, false, err.Error())),
		}
	}
	if err := audit.LogChallengeSigned(alg, requestID, true, ""); err != nil {
		return "", &SigningError{Algorithm: alg, Err: err}
	}

	return EncodeSignature(raw), nil
}

func (a *Authenticator) sign(message []byte) ([]byte, error) {
	if a.key == nil {
		return nil, ErrNoPrivateKey
	}
	return a.key.Sign(a.random, a.primitive, message)
}

// Verify checks a hub response against the original message. The claimed
// fingerprint must match the intermediate CA before the signature is
// checked with the intermediate public key.
func (a *Authenticator) Verify(original string, resp SignedResponse) Outcome {
	return a.VerifyContext(context.Background(), original, resp)
}

// VerifySignature is Verify with the response fields passed separately.
func (a *Authenticator) VerifySignature(original, signature, fingerprint string) Outcome {
	return a.Verify(original, SignedResponse{Signature: signature, Fingerprint: fingerprint})
}

// VerifyContext is Verify with a request id taken from ctx for auditing.
// It never panics; any internal fault is a failed Outcome.
func (a *Authenticator) VerifyContext(ctx context.Context, original string, resp SignedResponse) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("verification aborted", zap.Any("panic", r))
			out = failed(ReasonInternal, fmt.Sprint(r))
		}
	}()

	alg := string(a.primitive.Descriptor().ID())
	requestID := RequestIDFromContext(ctx)

	out = a.verify(original, resp)

	var err error
	if out.Verified {
		err = audit.LogResponseVerified(alg, resp.Fingerprint, requestID)
	} else {
		a.logger.Info("hub response rejected",
			zap.String("reason", string(out.Reason)),
			zap.String("detail", out.Detail),
			zap.String("request_id", requestID))
		err = audit.LogAuthFailed(alg, resp.Fingerprint, string(out.Reason), requestID)
	}
	if err != nil {
		a.logger.Error("audit write failed", zap.Error(err))
		return failed(ReasonAuditFailed, err.Error())
	}
	return out
}

func (a *Authenticator) verify(original string, resp SignedResponse) Outcome {
	fp, err := a.Fingerprint()
	if err != nil {
		return failed(ReasonFingerprintUnavailable, err.Error())
	}
	if !x509util.FingerprintsEqual(fp, resp.Fingerprint) {
		return failed(ReasonFingerprintMismatch, "claimed fingerprint does not match intermediate CA")
	}

	sig, err := DecodeSignature(resp.Signature)
	if err != nil {
		return failed(ReasonMalformedSignature, err.Error())
	}

	err = a.primitive.Verify(a.intermediate.PublicKey(), []byte(original), sig)
	if err != nil {
		return failed(ReasonSignatureInvalid, err.Error())
	}
	return Outcome{Verified: true}
}
