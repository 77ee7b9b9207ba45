package crypto

import (
	"crypto"
	"crypto/dsa" //nolint:staticcheck
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"os"
)

// KeyFamily categorizes private keys by the signature schemes they serve.
type KeyFamily int

const (
	KeyFamilyUnknown KeyFamily = iota
	KeyFamilyRSA
	KeyFamilyDSA
	KeyFamilyEC
)

// String returns the family name.
func (f KeyFamily) String() string {
	switch f {
	case KeyFamilyRSA:
		return "RSA"
	case KeyFamilyDSA:
		return "DSA"
	case KeyFamilyEC:
		return "EC"
	default:
		return "unknown"
	}
}

// KeyMaterial holds a parsed private key. The key itself is never exposed;
// it can only be used to sign through a Primitive.
type KeyMaterial struct {
	priv   crypto.PrivateKey
	pub    crypto.PublicKey
	family KeyFamily
}

// NewKeyMaterial wraps an RSA, DSA or ECDSA private key.
func NewKeyMaterial(priv crypto.PrivateKey) (*KeyMaterial, error) {
	switch k := priv.(type) {
	case *rsa.PrivateKey:
		return &KeyMaterial{priv: k, pub: &k.PublicKey, family: KeyFamilyRSA}, nil
	case *dsa.PrivateKey:
		return &KeyMaterial{priv: k, pub: &k.PublicKey, family: KeyFamilyDSA}, nil
	case *ecdsa.PrivateKey:
		return &KeyMaterial{priv: k, pub: &k.PublicKey, family: KeyFamilyEC}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, priv)
	}
}

// Family returns the key family.
func (k *KeyMaterial) Family() KeyFamily { return k.family }

// Public returns the public half of the key.
func (k *KeyMaterial) Public() crypto.PublicKey { return k.pub }

// Sign signs message with p.
func (k *KeyMaterial) Sign(random io.Reader, p Primitive, message []byte) ([]byte, error) {
	return p.Sign(random, k.priv, message)
}

// LoadPrivateKey reads a PEM private key from path.
// All failures are reported as *KeyLoadError.
func LoadPrivateKey(path string) (*KeyMaterial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &KeyLoadError{Path: path, Err: fmt.Errorf("failed to read key file: %w", err)}
	}
	priv, err := parsePrivateKeyPEM(data)
	if err != nil {
		return nil, &KeyLoadError{Path: path, Err: err}
	}
	return priv, nil
}

// ParsePrivateKeyPEM decodes the first PEM block of data as a private key.
//
// Supported encodings are PKCS#8 ("PRIVATE KEY", RSA, DSA and EC keys),
// PKCS#1 ("RSA PRIVATE KEY") and SEC 1 ("EC PRIVATE KEY"). Encrypted keys
// are rejected. All failures are reported as *KeyLoadError.
func ParsePrivateKeyPEM(data []byte) (*KeyMaterial, error) {
	km, err := parsePrivateKeyPEM(data)
	if err != nil {
		return nil, &KeyLoadError{Err: err}
	}
	return km, nil
}

func parsePrivateKeyPEM(data []byte) (*KeyMaterial, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNoPEMBlock
	}
	if x509.IsEncryptedPEMBlock(block) { //nolint:staticcheck
		return nil, fmt.Errorf("encrypted private keys are not supported")
	}

	var priv crypto.PrivateKey
	var err error

	switch block.Type {
	case "PRIVATE KEY":
		if isDSAPKCS8(block.Bytes) {
			priv, err = parseDSAPKCS8(block.Bytes)
		} else {
			priv, err = x509.ParsePKCS8PrivateKey(block.Bytes)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse PKCS#8 key: %w", err)
		}

	case "RSA PRIVATE KEY":
		priv, err = x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA key: %w", err)
		}

	case "EC PRIVATE KEY":
		priv, err = x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse EC key: %w", err)
		}

	case "ENCRYPTED PRIVATE KEY":
		return nil, fmt.Errorf("encrypted private keys are not supported")

	default:
		return nil, fmt.Errorf("unsupported PEM block type: %s", block.Type)
	}

	return NewKeyMaterial(priv)
}
