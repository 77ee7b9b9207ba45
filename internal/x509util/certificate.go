package x509util

import (
	"bytes"
	"crypto"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"os"

	"golang.org/x/crypto/cryptobyte"
)

// Certificate is a parsed X.509 certificate. It is immutable: accessors
// that return byte slices return copies.
type Certificate struct {
	cert *x509.Certificate
}

// NewCertificate wraps an already parsed certificate. The certificate must
// not be modified afterwards.
func NewCertificate(cert *x509.Certificate) *Certificate {
	return &Certificate{cert: cert}
}

// LoadCertificate reads a PEM or DER certificate from path.
// All failures are reported as *CertificateLoadError.
func LoadCertificate(path string) (*Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CertificateLoadError{Path: path, Err: fmt.Errorf("failed to read certificate file: %w", err)}
	}
	cert, err := parseCertificate(data)
	if err != nil {
		return nil, &CertificateLoadError{Path: path, Err: err}
	}
	return cert, nil
}

// ParseCertificate decodes a certificate from PEM or DER bytes. PEM input is
// recognised by its armor; the first CERTIFICATE block is used.
// All failures are reported as *CertificateLoadError.
func ParseCertificate(data []byte) (*Certificate, error) {
	cert, err := parseCertificate(data)
	if err != nil {
		return nil, &CertificateLoadError{Err: err}
	}
	return cert, nil
}

func parseCertificate(data []byte) (*Certificate, error) {
	der := data
	if isPEM(data) {
		var err error
		if der, err = firstCertificateBlock(data); err != nil {
			return nil, err
		}
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return &Certificate{cert: cert}, nil
}

func isPEM(data []byte) bool {
	return bytes.Contains(data, []byte("-----BEGIN "))
}

func firstCertificateBlock(data []byte) ([]byte, error) {
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, ErrNoCertificate
		}
		if block.Type == "CERTIFICATE" {
			return block.Bytes, nil
		}
	}
}

// Raw returns a copy of the DER encoding.
func (c *Certificate) Raw() []byte {
	return bytes.Clone(c.cert.Raw)
}

// Subject returns the subject distinguished name.
func (c *Certificate) Subject() string {
	return c.cert.Subject.String()
}

// Issuer returns the issuer distinguished name.
func (c *Certificate) Issuer() string {
	return c.cert.Issuer.String()
}

// SerialNumber returns the serial number in hexadecimal.
func (c *Certificate) SerialNumber() string {
	return fmt.Sprintf("%x", c.cert.SerialNumber)
}

// PublicKey returns the subject public key.
func (c *Certificate) PublicKey() crypto.PublicKey {
	return c.cert.PublicKey
}

// IsCA reports whether the basic constraints mark the certificate as a CA.
func (c *Certificate) IsCA() bool {
	return c.cert.IsCA
}

// ExtensionValue returns the extension with the given OID as the DER
// extnValue OCTET STRING, tag and length included. ok is false if the
// extension is absent.
func (c *Certificate) ExtensionValue(oid asn1.ObjectIdentifier) (value []byte, ok bool) {
	for _, ext := range c.cert.Extensions {
		if !ext.Id.Equal(oid) {
			continue
		}
		var b cryptobyte.Builder
		b.AddASN1OctetString(ext.Value)
		out, err := b.Bytes()
		if err != nil {
			return nil, false
		}
		return out, true
	}
	return nil, false
}

// Extensions returns the OIDs of all extensions in certificate order.
func (c *Certificate) Extensions() []asn1.ObjectIdentifier {
	out := make([]asn1.ObjectIdentifier, 0, len(c.cert.Extensions))
	for _, ext := range c.cert.Extensions {
		out = append(out, append(asn1.ObjectIdentifier(nil), ext.Id...))
	}
	return out
}
