package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mifos/vnext-auth/internal/audit"
	"github.com/mifos/vnext-auth/internal/crypto"
	"github.com/mifos/vnext-auth/internal/x509util"
)

var hubSKI = []byte{0x5f, 0xa3, 0x01, 0x9c, 0xe2, 0x44, 0x7b, 0x10, 0xd0, 0x3e, 0x81, 0x6a, 0x0b, 0xcd, 0x92, 0x27, 0x4f, 0xee, 0x58, 0xb6}

const hubFingerprint = "5fa3019ce2447b10d03e816a0bcd92274fee58b6"

// testPKI is a hub intermediate CA and a client certificate issued by it.
type testPKI struct {
	hubKey     *rsa.PrivateKey
	hubDER     []byte
	clientKey  *rsa.PrivateKey
	clientDER  []byte
	noSKIDER   []byte
	keyPEM     []byte
	hubKeyPEM  []byte
	hubCert    *x509util.Certificate
	clientCert *x509util.Certificate
}

var (
	pkiOnce sync.Once
	pki     *testPKI
	pkiErr  error
)

func newTestPKI(t *testing.T) *testPKI {
	t.Helper()
	pkiOnce.Do(func() { pki, pkiErr = buildTestPKI() })
	require.NoError(t, pkiErr)
	return pki
}

func buildTestPKI() (*testPKI, error) {
	p := &testPKI{}
	var err error
	if p.hubKey, err = rsa.GenerateKey(rand.Reader, 2048); err != nil {
		return nil, err
	}
	if p.clientKey, err = rsa.GenerateKey(rand.Reader, 2048); err != nil {
		return nil, err
	}

	hubTmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "vNext Hub Intermediate CA", Organization: []string{"Mifos"}},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		SubjectKeyId:          hubSKI,
	}
	if p.hubDER, err = x509.CreateCertificate(rand.Reader, hubTmpl, hubTmpl, &p.hubKey.PublicKey, p.hubKey); err != nil {
		return nil, err
	}

	clientTmpl := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "fsp-greenbank"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		SubjectKeyId: []byte{0x01, 0x02, 0x03, 0x04},
	}
	if p.clientDER, err = x509.CreateCertificate(rand.Reader, clientTmpl, hubTmpl, &p.clientKey.PublicKey, p.hubKey); err != nil {
		return nil, err
	}

	noSKITmpl := &x509.Certificate{
		SerialNumber: big.NewInt(3),
		Subject:      pkix.Name{CommonName: "no-ski"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
	}
	if p.noSKIDER, err = x509.CreateCertificate(rand.Reader, noSKITmpl, noSKITmpl, &p.hubKey.PublicKey, p.hubKey); err != nil {
		return nil, err
	}

	if p.keyPEM, err = pkcs8PEM(p.clientKey); err != nil {
		return nil, err
	}
	if p.hubKeyPEM, err = pkcs8PEM(p.hubKey); err != nil {
		return nil, err
	}
	if p.hubCert, err = x509util.ParseCertificate(p.hubDER); err != nil {
		return nil, err
	}
	if p.clientCert, err = x509util.ParseCertificate(p.clientDER); err != nil {
		return nil, err
	}
	return p, nil
}

// certificateWithSKIValue issues a self-signed hub certificate whose
// Subject Key Identifier extension carries value verbatim.
func (p *testPKI) certificateWithSKIValue(t *testing.T, value []byte) []byte {
	t.Helper()
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(4),
		Subject:      pkix.Name{CommonName: "raw-ski"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		ExtraExtensions: []pkix.Extension{
			{Id: x509util.OIDExtSubjectKeyId, Value: value},
		},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &p.hubKey.PublicKey, p.hubKey)
	require.NoError(t, err)
	return der
}

func pkcs8PEM(key *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// writeFiles writes the client key and both certificates to a temp dir.
func (p *testPKI) writeFiles(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		PrivateKey:              filepath.Join(dir, "client.key"),
		IntermediateCertificate: filepath.Join(dir, "hub-intermediate.pem"),
		ClientCertificate:       filepath.Join(dir, "client.crt"),
	}
	require.NoError(t, os.WriteFile(cfg.PrivateKey, p.keyPEM, 0600))
	require.NoError(t, os.WriteFile(cfg.IntermediateCertificate,
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: p.hubDER}), 0644))
	require.NoError(t, os.WriteFile(cfg.ClientCertificate, p.clientDER, 0644))
	return cfg
}

// hubAuthenticator holds the hub key, so it can produce responses that a
// client authenticator accepts.
func (p *testPKI) hubAuthenticator(t *testing.T, algorithm string) *Authenticator {
	t.Helper()
	key, err := crypto.NewKeyMaterial(p.hubKey)
	require.NoError(t, err)
	a, err := New(Material{Key: key, Intermediate: p.hubCert}, Options{Algorithm: algorithm})
	require.NoError(t, err)
	return a
}

func (p *testPKI) clientAuthenticator(t *testing.T, algorithm string) *Authenticator {
	t.Helper()
	key, err := crypto.NewKeyMaterial(p.clientKey)
	require.NoError(t, err)
	a, err := New(Material{Key: key, Intermediate: p.hubCert, Client: p.clientCert}, Options{Algorithm: algorithm})
	require.NoError(t, err)
	return a
}

// captureAudit routes audit events to memory for the duration of a test.
func captureAudit(t *testing.T) *audit.MemoryWriter {
	t.Helper()
	mem := audit.NewMemoryWriter(100)
	require.NoError(t, audit.Init(mem))
	t.Cleanup(func() { _ = audit.Init(nil) })
	return mem
}

type brokenAuditWriter struct{}

func (brokenAuditWriter) Write(*audit.Event) error { return os.ErrClosed }
func (brokenAuditWriter) Close() error             { return nil }
func (brokenAuditWriter) LastHash() string         { return audit.GenesisHash }
